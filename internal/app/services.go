package app

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cmpd-nominations/nominations-backend/internal/logger"
	"github.com/cmpd-nominations/nominations-backend/internal/services"
)

type Services struct {
	Household  services.HouseholdService
	User       services.UserService
	TableQuery services.TableQueryService
	Upload     services.UploadService
	Verifier   services.TokenVerifier
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, cache *goredis.Client) Services {
	log.Info("Wiring services...")
	householdService := services.NewHouseholdService(
		db,
		log,
		reposet.Household,
		reposet.HouseholdAddress,
		reposet.HouseholdPhone,
		reposet.Child,
		reposet.HouseholdEvent,
		reposet.User,
	)
	userService := services.NewUserService(db, log, reposet.User, reposet.Household)
	tableQueryService := services.NewTableQueryService(log, reposet.Household, reposet.User, cache)
	uploadService := services.NewUploadService(log, cfg.UploadDir)
	verifier := services.NewJWTVerifier(log, cfg.JWTSecretKey)
	return Services{
		Household:  householdService,
		User:       userService,
		TableQuery: tableQueryService,
		Upload:     uploadService,
		Verifier:   verifier,
	}
}
