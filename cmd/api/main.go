package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navaja-app/barbershop-api/internal/cache"
	"github.com/navaja-app/barbershop-api/internal/config"
	dbpkg "github.com/navaja-app/barbershop-api/internal/db"
	"github.com/navaja-app/barbershop-api/internal/logger"
	"github.com/navaja-app/barbershop-api/internal/middleware"
	"github.com/navaja-app/barbershop-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db := dbpkg.NewDB(cfg, log)
	rdb := cache.NewRedis(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
