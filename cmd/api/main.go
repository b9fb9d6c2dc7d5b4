package main

import (
	"context"
	"net/http"
	"os"

	"github.com/TuancoderLo/perfume-api/api/routes"
	"github.com/TuancoderLo/perfume-api/internal/auth"
	"github.com/TuancoderLo/perfume-api/internal/brands"
	"github.com/TuancoderLo/perfume-api/internal/members"
	"github.com/TuancoderLo/perfume-api/internal/perfumes"
	pkgAuth "github.com/TuancoderLo/perfume-api/pkg/auth"
	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/googleauth"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/TuancoderLo/perfume-api/pkg/metrics"
	"github.com/TuancoderLo/perfume-api/pkg/migrate"
	"github.com/TuancoderLo/perfume-api/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "perfume-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "perfume-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(cfg.DB)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRun(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	var rateStore routes.RateStore
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		if err := redisClient.Ping(context.Background()); err != nil {
			logg.Error(context.Background(), "redis unreachable", err)
			os.Exit(1)
		}
		rateStore = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, auth rate limiting disabled")
	}

	gdb := dbClient.DB(context.Background())
	memberRepo := members.NewRepository(gdb)
	brandRepo := brands.NewRepository(gdb)
	perfumeRepo := perfumes.NewRepository(gdb)

	minter := pkgAuth.NewMinter(cfg.JWT)

	var verifier googleauth.Verifier
	if cfg.Google.ClientID != "" {
		verifier = googleauth.New(cfg.Google.ClientID)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Repo:        memberRepo,
		Minter:      minter,
		Verifier:    verifier,
		PasswordCfg: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	memberService, err := members.NewService(members.ServiceParams{
		Repo:        memberRepo,
		PasswordCfg: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create member service", err)
		os.Exit(1)
	}

	brandService, err := brands.NewService(brands.ServiceParams{
		Repo:     brandRepo,
		Perfumes: perfumeRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create brand service", err)
		os.Exit(1)
	}

	perfumeService, err := perfumes.NewService(perfumes.ServiceParams{
		Repo:   perfumeRepo,
		Brands: brandRepo,
		Client: dbClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create perfume service", err)
		os.Exit(1)
	}

	registry := metrics.New()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Cfg:        cfg,
			Logg:       logg,
			DB:         dbClient,
			RateStore:  rateStore,
			Metrics:    registry,
			Minter:     minter,
			Members:    memberRepo,
			AuthSvc:    authService,
			MemberSvc:  memberService,
			BrandSvc:   brandService,
			PerfumeSvc: perfumeService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
