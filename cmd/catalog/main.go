package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"LearnHub/internal/catalog"
	"LearnHub/pkg/kit"
)

type config struct {
	Port           string `env:"PORT" envDefault:"8082"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsToken   string `env:"METRICS_TOKEN"`
}

func main() {
	service := "catalog"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	s := &catalog.Server{
		Engine: catalog.NewEngine(catalog.NewMemRepo()),
		Log:    log,
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
