package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lifeos/governance/internal/config"
	"github.com/lifeos/governance/internal/constitution"
	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/events"
	"github.com/lifeos/governance/internal/rpc"
	"github.com/lifeos/governance/internal/state"
	"github.com/lifeos/governance/internal/telemetry"
)

// #region main
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := constitution.Validate(); err != nil {
		log.Fatalf("constitution: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTELEndpoint, cfg.ServiceName)
	if err != nil {
		log.Fatalf("setup tracing: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Printf("[GOV] tracing shutdown: %v", err)
		}
	}()

	// Evaluation history and audit log
	store, err := state.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		p, err := events.ConnectNATS(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			log.Fatalf("failed to connect to nats at %s: %v", cfg.NATSURL, err)
		}
		publisher = p
	}
	defer publisher.Close()

	metrics := telemetry.NewMetrics()
	metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux(metrics), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[GOV] metrics server: %v", err)
		}
	}()
	defer metricsSrv.Close()

	svc := rpc.NewService(engine.New(),
		rpc.WithStore(store, cfg.AuditEnabled),
		rpc.WithPublisher(publisher),
		rpc.WithMetrics(metrics),
	)
	server, err := rpc.NewServer(cfg.GRPCAddr, svc)
	if err != nil {
		log.Fatalf("failed to start server: %v", err)
	}

	log.Printf("[GOV] governd ready. constitution=%s db=%s grpc=%s metrics=%s events=%v audit=%v",
		constitution.Version, cfg.DBPath, server.Addr(), cfg.MetricsAddr, cfg.EventsEnabled(), cfg.AuditEnabled)

	if err := server.Serve(ctx); err != nil {
		log.Printf("[GOV] serve: %v", err)
	}
	log.Println("[GOV] governd stopped")
}

// #endregion main

// #region helpers
func metricsMux(m *telemetry.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// #endregion helpers
