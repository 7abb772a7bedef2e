package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SimonaRa20/BudgetManagementSystem/internal/api"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/auth"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/config"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/db"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/events"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/otel"
	"github.com/SimonaRa20/BudgetManagementSystem/internal/version"
	pgdb "github.com/SimonaRa20/BudgetManagementSystem/pkg/db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	cleanup, err := otel.Init(ctx, version.Name, cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("init otel")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := cleanup(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown otel")
		}
	}()

	pool, err := pgdb.Open(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open database pool")
	}
	defer pool.Close()

	if err := pgdb.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	orm, err := db.Connect(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer func() {
		if err := db.Close(orm); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	var bus *events.Bus
	if cfg.NATSURL != "" {
		bus, err = events.Connect(cfg.NATSURL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect nats")
		}
		defer bus.Close()
	}

	hasher, err := auth.NewHasher(cfg.PasswordSalt)
	if err != nil {
		log.Fatal().Err(err).Msg("init password hasher")
	}

	issuer, err := auth.NewIssuer(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("init token issuer")
	}

	a, err := api.New(&api.Store{DB: pool, ORM: orm, Bus: bus}, issuer, hasher, api.Config{
		RefreshTokenTTL: cfg.RefreshTokenTTL,
		AllowedOrigins:  cfg.AllowedOrigins,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init api")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("version", version.Version).Msg("starting budgetd")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
}
