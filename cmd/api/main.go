package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	metrics.Register()

	// ======================================================
	// 🗄️ STORAGE
	// ======================================================
	var (
		repo domain.Repository
		db   *gorm.DB
	)

	if cfg.UseMemoryStorage() {
		mem := repository.NewMemoryRepository()
		shop := repository.SeedDemo(mem)
		log.Warn().Str("slug", shop.Slug).Msg("using in-memory storage with demo data")
		repo = mem
	} else {
		var err error
		db, err = dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("database unavailable")
		}
		repo = repository.NewBookingGormRepository(db)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo = cache.NewAvailabilityCache(repo, rdb, cfg.CacheTTL, log.With().Str("component", "cache").Logger())
		log.Info().Str("addr", cfg.RedisAddr).Msg("availability cache enabled")
	}

	// ======================================================
	// 📣 EVENTS
	// ======================================================
	var sinks []events.Sink
	if db != nil {
		sinks = append(sinks, events.NewAuditSink(db))
	}

	var kafkaSink *events.KafkaSink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink = events.NewKafkaSink(events.NewKafkaWriter(cfg.KafkaBrokers), cfg.KafkaTopic)
		sinks = append(sinks, kafkaSink)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka publishing enabled")
	}

	dispatcher := events.NewDispatcher(log.With().Str("component", "events").Logger(), 256, sinks...)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		Config: cfg,
		Repo:   repo,
		Events: dispatcher,
		Clock:  timezone.SystemClock{},
		Log:    log,
		DB:     db,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdown(log, srv, dispatcher, kafkaSink, rdb)
}

func shutdown(
	log zerolog.Logger,
	srv *http.Server,
	dispatcher *events.Dispatcher,
	kafkaSink *events.KafkaSink,
	rdb *redis.Client,
) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.Error().Err(err).Msg("events not drained")
	}
	if kafkaSink != nil {
		if err := kafkaSink.Close(); err != nil {
			log.Error().Err(err).Msg("kafka writer close")
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}

	log.Info().Msg("server stopped")
}
