package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"LearnHub/internal/ledger"
	"LearnHub/pkg/kit"
)

type config struct {
	Port       string `env:"PORT" envDefault:"8083"`
	CatalogURL string `env:"CATALOG_URL" envDefault:"http://localhost:8082"`

	// Storage driver: memory, sqlite, or postgres.
	Storage     string `env:"STORAGE" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"learnhub.db"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	CheckoutDelay time.Duration `env:"CHECKOUT_DELAY" envDefault:"1500ms"`
}

func main() {
	service := "ledger"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatal("storage", zap.Error(err))
	}

	catalogClient := ledger.NewCatalogClient(cfg.CatalogURL)

	s := &ledger.Server{
		Ledgers: ledger.NewSet(store, log),
		Courses: catalogClient,
		Checkout: &ledger.Checkout{
			Courses: catalogClient,
			Delay:   cfg.CheckoutDelay,
			Log:     log,
		},
		Log: log,
	}

	h := ledger.NewHandler(s, ledger.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: prometheus.NewRegistry(),
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func openStorage(cfg config) (ledger.Storage, error) {
	switch cfg.Storage {
	case "postgres":
		return ledger.NewPostgresStorage(cfg.PostgresDSN)
	case "memory":
		return ledger.NewMemStorage(), nil
	default:
		return ledger.NewSQLiteStorage(cfg.SQLitePath)
	}
}
