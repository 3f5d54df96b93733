package main

import (
	"context"
	"log"

	"github.com/nexter-app/nexter-backend/config"
	assistantrepo "github.com/nexter-app/nexter-backend/internal/assistant/repository"
	"github.com/nexter-app/nexter-backend/internal/auth/token"
	"github.com/nexter-app/nexter-backend/internal/bootstrap"
	"github.com/nexter-app/nexter-backend/internal/janitor"
	"github.com/nexter-app/nexter-backend/internal/storage/postgres"
)

const serviceName = "nexter-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		// Validate() already rejects this in production.
		secret = "nexter-dev-secret"
		log.Println("JWT_SECRET not set, using development secret")
	}
	tokens := token.NewIssuer(secret, cfg.Auth.TokenTTL)

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Config:      cfg,
		Tokens:      tokens,
	}

	ctx := context.Background()

	if cfg.App.StorageMode == "external" {
		db, err := postgres.NewConnection(&cfg.Database)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()
		deps.SQLDB = db

		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
		if err != nil {
			log.Fatalf("postgres pool: %v", err)
		}
		defer pool.Close()
		deps.PgPool = pool

		redisCli, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisCli.Close()
		deps.RedisCli = redisCli
	} else {
		store := assistantrepo.NewMemoryStore(cfg.Assistant.UploadTTL)
		deps.MemAssistant = store

		sweeper := janitor.NewScheduler(store)
		sweeper.Start()
		defer sweeper.Stop()
	}

	r := bootstrap.BuildRouter(deps)

	log.Printf("%s listening on :%s (storage=%s)", serviceName, cfg.Server.Port, cfg.App.StorageMode)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
