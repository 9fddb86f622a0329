package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/salalivre/room-scheduler/internal/config"
	dbpkg "github.com/salalivre/room-scheduler/internal/db"
	"github.com/salalivre/room-scheduler/internal/middleware"
	"github.com/salalivre/room-scheduler/internal/routes"
	"github.com/salalivre/room-scheduler/internal/session"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var revoker session.Revoker = session.NoopRevoker{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		revoker = session.NewRedisRevoker(client)
	} else {
		log.Println("REDIS_ADDR not set, logout will not revoke tokens")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, revoker)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
