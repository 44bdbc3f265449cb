package main

import (
	"context"
	"os"
	"time"

	"github.com/Shivarajkushals/Dashboard/infrastructure/cache/rediscache"
	"github.com/Shivarajkushals/Dashboard/internal/config"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	store := rediscache.New(rediscache.NewClient(cfg.Redis), rediscache.Options{
		BreakerFailures: cfg.Cache.BreakerFailures,
		BreakerTimeout:  cfg.Cache.BreakerTimeout,
	})
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, store); err != nil {
		log.L.WithError(err).Error("cachectl falhou")
		cancel()
		os.Exit(1)
	}
}
