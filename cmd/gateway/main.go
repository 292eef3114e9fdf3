package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"LearnHub/internal/gateway"
	"LearnHub/pkg/kit"
)

type config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	JWTSecret  string `env:"JWT_SECRET,required"`
	AuthURL    string `env:"AUTH_URL" envDefault:"http://auth:8081"`
	CatalogURL string `env:"CATALOG_URL" envDefault:"http://catalog:8082"`
	LedgerURL  string `env:"LEDGER_URL" envDefault:"http://ledger:8083"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsToken   string `env:"METRICS_TOKEN"`
}

func main() {
	service := "gateway"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("JWT_SECRET must be at least 32 chars")
	}

	h, err := gateway.NewHandler(
		gateway.Deps{
			JWTSecret:  cfg.JWTSecret,
			AuthURL:    cfg.AuthURL,
			CatalogURL: cfg.CatalogURL,
			LedgerURL:  cfg.LedgerURL,
		},
		gateway.HTTPDeps{
			Log:            log,
			Service:        service,
			Registry:       prometheus.NewRegistry(),
			MetricsEnabled: cfg.MetricsEnabled,
			MetricsToken:   cfg.MetricsToken,
		},
	)
	if err != nil {
		log.Fatal("init gateway handler failed", zap.Error(err))
	}

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
