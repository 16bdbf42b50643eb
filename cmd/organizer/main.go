package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/studydesk/studydesk/internal/collection"
	"github.com/studydesk/studydesk/internal/config"
	"github.com/studydesk/studydesk/internal/handlers"
	"github.com/studydesk/studydesk/internal/storage"
	"github.com/studydesk/studydesk/pkg/logger"
	"github.com/studydesk/studydesk/pkg/metrics"
	"github.com/studydesk/studydesk/pkg/middleware"
)

func main() {
	// logging can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: backend=%s redis=%v mongo=%v", cfg.Store.Backend, cfg.Redis.Host != "", cfg.MongoDB.URI != "")

	store, cleanup, err := buildStore(cfg)
	if err != nil {
		logger.Fatalf("failed to set up %s store: %v", cfg.Store.Backend, err)
	}
	defer cleanup()

	courses := collection.NewCourseManager(store)
	assignments := collection.NewAssignmentManager(store)

	// Hydrate both collections up front. A decode failure is reported and the
	// collection starts empty rather than showing corrupted data.
	hydrateCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := courses.Hydrate(hydrateCtx); err != nil {
		logger.Warnf("courses hydrate: %v", err)
	}
	if err := assignments.Hydrate(hydrateCtx); err != nil {
		logger.Warnf("assignments hydrate: %v", err)
	}
	logger.Infof("hydrated: %d courses, %d assignments", courses.Len(), assignments.Len())

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	handlers.RegisterOrganizerRoutes(r, courses, assignments)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("organizer listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}

// buildStore selects the key-value backend from config. The memory backend
// keeps nothing across restarts and is meant for development.
func buildStore(cfg *config.Config) (storage.Store, func(), error) {
	noop := func() {}
	switch cfg.Store.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, noop, err
		}
		logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		return storage.NewRedisStore(client, cfg.Store.Prefix), func() { _ = client.Close() }, nil
	case "mongo":
		client, err := storage.ConnectMongo(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			return nil, noop, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection("collections")
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return storage.NewMongoStore(col), cleanup, nil
	default:
		return storage.NewMemoryStore(), noop, nil
	}
}
