package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/willowbrook-labs/sitter-scheduler/internal/config"
	dbpkg "github.com/willowbrook-labs/sitter-scheduler/internal/db"
	"github.com/willowbrook-labs/sitter-scheduler/internal/logging"
	"github.com/willowbrook-labs/sitter-scheduler/internal/middleware"
	"github.com/willowbrook-labs/sitter-scheduler/internal/notify"
	"github.com/willowbrook-labs/sitter-scheduler/internal/ratelimit"
	"github.com/willowbrook-labs/sitter-scheduler/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.Env)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	links := notify.NewLinkSigner(cfg.LinkSecret, cfg.AppURL)
	notifier := notify.NewLogNotifier(logger, links)
	notifyDispatcher := notify.NewDispatcher(notifier)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(
		ratelimit.NewRedisStore(redisClient, time.Minute),
		cfg.RateLimitPerMinute,
	))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifyDispatcher, links)

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
