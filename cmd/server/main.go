package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iliyamo/venue-booking/internal/config"
	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/flash"
	"github.com/iliyamo/venue-booking/internal/handler"
	"github.com/iliyamo/venue-booking/internal/logger"
	"github.com/iliyamo/venue-booking/internal/middleware"
	"github.com/iliyamo/venue-booking/internal/queue"
	"github.com/iliyamo/venue-booking/internal/render"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/router"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	log, closer := logger.New(logger.Options{Env: cfg.Env, Level: cfg.LogLevel, File: cfg.LogFile})
	defer closer.Close()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer db.Close()

	rdb := connectRedis(log)
	if rdb != nil {
		defer rdb.Close()
	}

	renderer, err := render.New()
	if err != nil {
		log.Fatal().Err(err).Msg("parse templates")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var events queue.Publisher = queue.NopPublisher{}
	if cfg.QueueEnabled {
		events = queue.NewAMQPPublisher(cfg.AMQPURL)
		consumer := queue.NewConsumer(cfg.AMQPURL, cfg.EventLogDir, log)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("listings consumer stopped")
			}
		}()
	}

	cacheCfg := config.LoadCacheConfig()
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	site := &handler.SiteHandler{
		Venues:  repository.NewVenueRepo(db),
		Artists: repository.NewArtistRepo(db),
		Shows:   repository.NewShowRepo(db),
		Flash:   flash.NewStore(cfg.SessionSecret, cfg.Env == "prod"),
		Events:  events,
		Cache:   middleware.NewCachePurger(rdb, cacheCfg.Prefix),
		Log:     log,
	}

	opts := router.Options{
		Log:       log,
		Metrics:   middleware.NewMetrics(reg),
		Cache:     middleware.NewRedisCache(cacheCfg, rdb),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log),
		Admin:     middleware.AdminGuard(cfg.AdminUser, cfg.AdminPasswordHash),
	}
	if !cfg.AdminGuardEnabled() {
		log.Warn().Msg("ADMIN_USER/ADMIN_PASSWORD_HASH not set; create, edit and delete are open")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	router.Setup(e, opts)
	router.RegisterRoutes(e, opts)
	router.RegisterSite(e, site, opts)

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// connectRedis returns nil when Redis is unreachable; cache and rate limit
// then pass requests through.
func connectRedis(log zerolog.Logger) *redis.Client {
	rdb, err := config.NewRedisClient(config.LoadRedisConfig())
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable; page cache and rate limit disabled")
		return nil
	}
	return rdb
}
