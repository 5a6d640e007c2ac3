package predict

import (
	"math/rand"
	"sort"
)

// forest is a bagged ensemble of regression trees. Trees are grown on
// bootstrap samples and predictions are averaged.
type forest struct {
	trees []*treeNode
}

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
	leaf      bool
}

type forestParams struct {
	trees    int
	maxDepth int
	minLeaf  int
	seed     int64
}

// trainForest grows the ensemble. Each tree gets its own deterministic RNG
// derived from the master seed, so training is reproducible regardless of
// iteration order.
func trainForest(xs [][]float64, ys []float64, params forestParams) *forest {
	f := &forest{trees: make([]*treeNode, params.trees)}
	n := len(ys)
	for t := 0; t < params.trees; t++ {
		rng := rand.New(rand.NewSource(params.seed + int64(t)))
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		f.trees[t] = growTree(xs, ys, sample, params.maxDepth, params.minLeaf)
	}
	return f
}

func (f *forest) predict(x []float64) float64 {
	var sum float64
	for _, t := range f.trees {
		sum += t.predict(x)
	}
	return sum / float64(len(f.trees))
}

func (n *treeNode) predict(x []float64) float64 {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

func growTree(xs [][]float64, ys []float64, idx []int, depth, minLeaf int) *treeNode {
	if depth == 0 || len(idx) < 2*minLeaf {
		return leafNode(ys, idx)
	}
	feature, threshold, ok := bestSplit(xs, ys, idx, minLeaf)
	if !ok {
		return leafNode(ys, idx)
	}
	var left, right []int
	for _, i := range idx {
		if xs[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(xs, ys, left, depth-1, minLeaf),
		right:     growTree(xs, ys, right, depth-1, minLeaf),
	}
}

func leafNode(ys []float64, idx []int) *treeNode {
	var sum float64
	for _, i := range idx {
		sum += ys[i]
	}
	return &treeNode{leaf: true, value: sum / float64(len(idx))}
}

// bestSplit scans every feature for the threshold that minimises the summed
// squared error of the two children, honouring the minimum leaf size.
func bestSplit(xs [][]float64, ys []float64, idx []int, minLeaf int) (int, float64, bool) {
	n := len(idx)
	nFeatures := len(xs[idx[0]])

	order := make([]int, n)
	vals := make([]float64, n)
	targets := make([]float64, n)
	prefix := make([]float64, n+1)
	prefixSq := make([]float64, n+1)

	bestErr := parentSSE(ys, idx)
	if bestErr == 0 {
		return 0, 0, false
	}
	bestFeature, bestThreshold := -1, 0.0

	for f := 0; f < nFeatures; f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool {
			return xs[order[a]][f] < xs[order[b]][f]
		})
		for i, row := range order {
			vals[i] = xs[row][f]
			targets[i] = ys[row]
		}
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + targets[i]
			prefixSq[i+1] = prefixSq[i] + targets[i]*targets[i]
		}
		total, totalSq := prefix[n], prefixSq[n]

		for i := minLeaf; i <= n-minLeaf; i++ {
			if vals[i-1] == vals[i] {
				continue
			}
			nl, nr := float64(i), float64(n-i)
			sseLeft := prefixSq[i] - prefix[i]*prefix[i]/nl
			sumRight := total - prefix[i]
			sseRight := (totalSq - prefixSq[i]) - sumRight*sumRight/nr
			if err := sseLeft + sseRight; err < bestErr {
				bestErr = err
				bestFeature = f
				bestThreshold = (vals[i-1] + vals[i]) / 2
			}
		}
	}
	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func parentSSE(ys []float64, idx []int) float64 {
	var sum, sumSq float64
	for _, i := range idx {
		sum += ys[i]
		sumSq += ys[i] * ys[i]
	}
	n := float64(len(idx))
	return sumSq - sum*sum/n
}
