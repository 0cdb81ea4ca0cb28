package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ProductAPI/internal/config"
	"ProductAPI/internal/products"
	"ProductAPI/pkg/kit"
)

func main() {
	service := "products"

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", service, err)
		os.Exit(1)
	}

	log := kit.NewLogger(service, cfg.Logging.Level)
	defer func() { _ = log.Sync() }()

	var seed []products.Product
	if cfg.Store.Seed {
		seed = products.SeedProducts()
	}

	s := &products.Server{
		Store:  products.NewMemStore(seed...),
		Log:    log,
		APIKey: cfg.Auth.APIKey,
	}

	deps := products.HTTPDeps{
		Log:     log,
		Service: service,
	}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Registry = reg
		deps.MetricsEnabled = true
		deps.MetricsToken = cfg.Metrics.Token
		if cfg.Metrics.Token == "" {
			log.Warn("metrics enabled without METRICS_TOKEN, /metrics will refuse every scrape")
		}
	}

	h := products.NewHandler(s, deps)

	log.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("seeded", cfg.Store.Seed),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	err = kit.RunHTTPServer(cfg.Addr(), h, log, kit.ServerOptions{
		ReadHeaderTimeout: cfg.GetReadHeaderTimeout(),
		ShutdownTimeout:   cfg.GetShutdownTimeout(),
	})
	if err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
	log.Info("server is stopped")
}
