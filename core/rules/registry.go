// Package rules evaluates regulatory restrictions against planned trips.
// Matching is fail-closed: any rule that applies blocks the trip outright.
package rules

import (
	"fmt"

	"github.com/urbanlogix/tripdesk/core/model"
)

// Registry is an immutable, ordered set of regulatory rules. Construct one
// per city configuration and share it freely across concurrent evaluations.
type Registry struct {
	rules []model.Rule
}

// NewRegistry copies the given rules into an immutable registry. Rule names
// must be unique and hour intervals must be non-wrapping.
func NewRegistry(rules []model.Rule) (*Registry, error) {
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rule with empty name")
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("duplicate rule name %q", r.Name)
		}
		seen[r.Name] = struct{}{}
		if r.StartHour < 0 || r.EndHour > 24 || r.StartHour >= r.EndHour {
			return nil, fmt.Errorf("rule %q: invalid hour interval [%d,%d)", r.Name, r.StartHour, r.EndHour)
		}
		for _, d := range r.Days {
			if d < 0 || d > 6 {
				return nil, fmt.Errorf("rule %q: invalid day %d", r.Name, d)
			}
		}
	}
	cp := make([]model.Rule, len(rules))
	copy(cp, rules)
	return &Registry{rules: cp}, nil
}

// Rules returns a copy of the registry contents in registry order.
func (r *Registry) Rules() []model.Rule {
	cp := make([]model.Rule, len(r.rules))
	copy(cp, r.rules)
	return cp
}

// Len returns the number of rules in the registry.
func (r *Registry) Len() int { return len(r.rules) }

// Engine evaluates trip contexts against a registry. It is a pure function
// of (context, registry) and safe for concurrent use.
type Engine struct {
	registry *Registry
}

// NewEngine returns an engine bound to the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Check returns every rule that applies to the context, in registry order.
// An empty result means the trip leg is permitted.
func (e *Engine) Check(ctx model.RouteContext) []model.Rule {
	var matched []model.Rule
	for _, r := range e.registry.rules {
		if r.Applies(ctx) {
			matched = append(matched, r)
		}
	}
	return matched
}

// CheckAll evaluates several contexts (typically both trip endpoints) and
// returns the union of matching rules, collapsed by name, in registry order.
func (e *Engine) CheckAll(ctxs ...model.RouteContext) []model.Rule {
	matched := make(map[string]struct{})
	for _, ctx := range ctxs {
		for _, r := range e.Check(ctx) {
			matched[r.Name] = struct{}{}
		}
	}
	var out []model.Rule
	for _, r := range e.registry.rules {
		if _, ok := matched[r.Name]; ok {
			out = append(out, r)
		}
	}
	return out
}
