package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/logger"
	"backend/routes"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	if err := configs.SetupDatabase(); err != nil {
		zlog.Fatal("migrate failed", zap.Error(err))
	}

	if err := configs.SeedAdmin(); err != nil {
		zlog.Fatal("seed admin failed", zap.Error(err))
	}

	// Live event feed for admin dashboards
	hub := ws.NewEventHub()
	go hub.Run()

	// HTTP
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(zlog))
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigins))

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
