package main

import (
	"context"
	"time"

	"github.com/Shivarajkushals/Dashboard/infrastructure/cache/rediscache"
	"github.com/Shivarajkushals/Dashboard/infrastructure/database/postgres"
	"github.com/Shivarajkushals/Dashboard/infrastructure/repository"
	"github.com/Shivarajkushals/Dashboard/internal/api"
	"github.com/Shivarajkushals/Dashboard/internal/config"
	"github.com/Shivarajkushals/Dashboard/internal/scheduler"
	"github.com/Shivarajkushals/Dashboard/internal/usecases/reporting"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	cacheStore := redisStore(ctx, cfg)
	defer cacheStore.Close()

	salesRepo := repository.NewSalesReportRepository(pgConn, cfg.Database.QueryTimeout)
	reportService := reporting.NewService(salesRepo, cacheStore, cfg.Cache)

	warmupService := scheduler.NewCacheWarmupService(reportService, cfg.Warmup)
	if err := warmupService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de cache")
	}

	server := api.New(cfg, reportService, warmupService)
	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisStore cria o cache. Redis fora do ar não impede a subida, os relatórios são calculados sem cache.
func redisStore(ctx context.Context, cfg *config.Config) *rediscache.Store {
	store := rediscache.New(rediscache.NewClient(cfg.Redis), rediscache.Options{
		BreakerFailures: cfg.Cache.BreakerFailures,
		BreakerTimeout:  cfg.Cache.BreakerTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := store.Ping(pingCtx); err != nil {
		log.L.WithError(err).WithField("addr", cfg.Redis.Addr).Warn("Redis indisponível, seguindo sem cache até reconectar")
		return store
	}

	log.L.WithField("addr", cfg.Redis.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return store
}
