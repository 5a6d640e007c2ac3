// Package app wires the trip decision engine from configuration.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urbanlogix/tripdesk/api/trips"
	"github.com/urbanlogix/tripdesk/config"
	"github.com/urbanlogix/tripdesk/core/feature"
	"github.com/urbanlogix/tripdesk/core/geo"
	"github.com/urbanlogix/tripdesk/core/hubs"
	coremetrics "github.com/urbanlogix/tripdesk/core/metrics"
	"github.com/urbanlogix/tripdesk/core/model"
	"github.com/urbanlogix/tripdesk/core/predict"
	"github.com/urbanlogix/tripdesk/core/rules"
	"github.com/urbanlogix/tripdesk/core/trip"
	"github.com/urbanlogix/tripdesk/infra/histdata"
	"github.com/urbanlogix/tripdesk/infra/logger"
	"github.com/urbanlogix/tripdesk/infra/metrics"
	"github.com/urbanlogix/tripdesk/infra/routing"
)

// Service holds the trained engine and its collaborators. Everything is
// read-only after New returns; one Service handles concurrent queries.
type Service struct {
	Composer  *trip.Composer
	Model     *predict.Model
	Snapshots []model.CorridorSnapshot

	cfg *config.Config
	log logger.Logger
}

// New loads the corpus, trains the predictor and wires the decision chain.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	snapshots, err := histdata.Load(cfg.Data.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	logg.Infof("loaded %d corridor snapshots from %s", len(snapshots), cfg.Data.CSVPath)

	started := time.Now()
	mdl, err := predict.Train(snapshots, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("train model: %w", err)
	}
	logg.Infof("traffic predictor ready in %s (validation MAE: %.3f)",
		time.Since(started).Round(time.Millisecond), mdl.ValidationMAE())

	registry, err := rules.NewRegistry(cfg.RuleSet())
	if err != nil {
		return nil, fmt.Errorf("rule registry: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var osrm *routing.OSRMClient
	if cfg.Routing.BaseURL != "" {
		osrm, err = routing.NewOSRMClient(cfg.Routing)
		if err != nil {
			return nil, fmt.Errorf("osrm client: %w", err)
		}
	}
	routes := routing.NewResilient(osrm, cfg.Routing.PathPoints, logg)

	composer, err := trip.NewComposer(
		rules.NewEngine(registry),
		feature.NewBuilder(snapshots),
		mdl,
		geo.NewBengaluruGeocoder(),
		routes,
		trip.NewCostEstimator(cfg.Pricing.RateTable()),
		logg,
		sink,
	)
	if err != nil {
		return nil, fmt.Errorf("composer: %w", err)
	}

	return &Service{
		Composer:  composer,
		Model:     mdl,
		Snapshots: snapshots,
		cfg:       cfg,
		log:       logg,
	}, nil
}

// Run serves the JSON API (and the Prometheus endpoint when enabled) until
// the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/trips/plan", trips.NewPlanHandler(s.Composer))
	mux.Handle("/api/hubs", trips.NewHubsHandler(hubs.BengaluruHubs(), s.Snapshots))
	mux.Handle("/api/health", trips.NewHealthHandler(s.Model.ValidationMAE()))

	srv := &http.Server{Addr: s.cfg.Server.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()

	s.log.Infof("trip API listening on %s", s.cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
