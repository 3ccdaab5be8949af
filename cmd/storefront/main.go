package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"TechStore/internal/admin"
	"TechStore/internal/cart"
	"TechStore/internal/catalog"
	"TechStore/internal/config"
	"TechStore/internal/storefront"
	"TechStore/pkg/kit"
)

func main() {
	service := "storefront"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}

	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		log.Fatal("repository", zap.Error(err))
	}
	defer cleanup()

	store := catalog.NewStore(repo, log)
	store.Hydrate(context.Background())

	guard := admin.NewGuard(admin.NewTokenMaker(cfg.JWTSecret))

	s := storefront.NewServer(storefront.Deps{
		Catalog: store,
		Cart:    cart.New(store.Get),
		Guard:   guard,
		Repo:    repo,
		Log:     log,
	})

	h := storefront.NewHandler(s, storefront.HTTPDeps{
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

func buildRepository(cfg config.Config) (catalog.Repository, func(), error) {
	switch cfg.StoreBackend {
	case "bolt":
		r, err := catalog.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil

	case "postgres":
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewPostgresRepository(db), func() { _ = db.Close() }, nil

	case "memory":
		return catalog.NewMemRepository(nil), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
