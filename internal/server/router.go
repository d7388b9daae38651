package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/cmpd-nominations/nominations-backend/internal/handlers"
  "github.com/cmpd-nominations/nominations-backend/internal/middleware"
)

type RouterConfig struct {
  AuthMiddleware   *middleware.AuthMiddleware
  HouseholdHandler *handlers.HouseholdHandler
  UserHandler      *handlers.UserHandler
  ServiceName      string
  AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(otelgin.Middleware(cfg.ServiceName))
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.AllowOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)

// ===============
// || Protected ||
// ===============
  api := router.Group("/api")
  api.Use(cfg.AuthMiddleware.RequireAuth())
  // Households
  api.GET("/households", cfg.HouseholdHandler.List)
  api.POST("/households", cfg.HouseholdHandler.Create)
  api.POST("/households/submit", cfg.HouseholdHandler.Submit)
  api.GET("/households/:id", cfg.HouseholdHandler.Get)
  api.PUT("/households/:id", cfg.HouseholdHandler.Update)
  api.POST("/households/:id/upload", cfg.HouseholdHandler.Upload)
  // Users
  api.GET("/users", cfg.UserHandler.List)
  api.GET("/users/pending", cfg.UserHandler.ListPending)
  api.POST("/users", cfg.UserHandler.Create)
  api.GET("/users/:id", cfg.UserHandler.Get)
  api.PUT("/users/:id", cfg.UserHandler.Update)

  return router
}
