package app

import (
	"gorm.io/gorm"

	"github.com/cmpd-nominations/nominations-backend/internal/logger"
	"github.com/cmpd-nominations/nominations-backend/internal/repos"
)

type Repos struct {
	Household        repos.HouseholdRepo
	HouseholdAddress repos.HouseholdAddressRepo
	HouseholdPhone   repos.HouseholdPhoneRepo
	Child            repos.ChildRepo
	HouseholdEvent   repos.HouseholdEventRepo
	User             repos.UserRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Household:        repos.NewHouseholdRepo(db, log),
		HouseholdAddress: repos.NewHouseholdAddressRepo(db, log),
		HouseholdPhone:   repos.NewHouseholdPhoneRepo(db, log),
		Child:            repos.NewChildRepo(db, log),
		HouseholdEvent:   repos.NewHouseholdEventRepo(db, log),
		User:             repos.NewUserRepo(db, log),
	}
}
