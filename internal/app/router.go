package app

import (
	"github.com/gin-gonic/gin"

	"github.com/cmpd-nominations/nominations-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthMiddleware:   mw.Auth,
		HouseholdHandler: handlerset.Household,
		UserHandler:      handlerset.User,
		ServiceName:      "nominations-backend",
		AllowOrigins:     cfg.AllowOrigins,
	})
}
