package main

import (
	"log"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/veloura/salon-scheduler/internal/cache"
	"github.com/veloura/salon-scheduler/internal/config"
	dbpkg "github.com/veloura/salon-scheduler/internal/db"
	"github.com/veloura/salon-scheduler/internal/events"
	"github.com/veloura/salon-scheduler/internal/metrics"
	"github.com/veloura/salon-scheduler/internal/middleware"
	"github.com/veloura/salon-scheduler/internal/routes"
	"github.com/veloura/salon-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.Printf("sentry init failed: %v", err)
		}
	}

	loc := timezone.Location(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	availabilityCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Printf("redis unavailable, availability caching disabled: %v", err)
	}
	defer availabilityCache.Close()

	publisher := events.NewNoopPublisher()
	if cfg.KafkaBroker != "" {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBroker)
		if err != nil {
			log.Printf("kafka unavailable, events disabled: %v", err)
		} else {
			publisher = kp
		}
	}
	defer publisher.Close()

	metrics.Init()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.PrometheusMetrics())
	if cfg.SentryDSN != "" {
		r.Use(middleware.SentryMiddleware())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	routes.RegisterRoutes(r, db, cfg, availabilityCache, publisher, loc)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
