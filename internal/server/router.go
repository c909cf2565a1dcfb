package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eprocure-backend/internal/config"
	"eprocure-backend/internal/handlers"
	"eprocure-backend/internal/middleware"
	"eprocure-backend/internal/repository"
	"eprocure-backend/internal/service"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))

	projectRepo := repository.NewProjectRepository(db)
	projectSvc := service.NewProjectService(projectRepo)
	projectHandler := handlers.NewProjectHandler(projectSvc)

	v1 := r.Group("/v1")
	v1.Use(middleware.ActorIdentity())
	projectHandler.RegisterRoutes(v1.Group("/projects"))

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
