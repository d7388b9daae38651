package app

import (
	"github.com/cmpd-nominations/nominations-backend/internal/handlers"
	"github.com/cmpd-nominations/nominations-backend/internal/logger"
)

type Handlers struct {
	Household *handlers.HouseholdHandler
	User      *handlers.UserHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Household: handlers.NewHouseholdHandler(log, serviceset.Household, serviceset.TableQuery, serviceset.Upload),
		User:      handlers.NewUserHandler(log, serviceset.User, serviceset.TableQuery),
	}
}
