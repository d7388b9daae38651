package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/types"
  "github.com/cmpd-nominations/nominations-backend/internal/utils"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "nominations", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Affiliation{},
    &types.User{},
    &types.Household{},
    &types.HouseholdAddress{},
    &types.HouseholdPhone{},
    &types.Child{},
    &types.HouseholdEvent{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  s.log.Info("Configuring foreign key relationships for postgres tables...")
  constraints := []struct {
    name string
    stmt string
  }{
    {
      name: "fk_household_address_household_id",
      stmt: `ALTER TABLE "household_address" ADD CONSTRAINT "fk_household_address_household_id" FOREIGN KEY ("household_id") REFERENCES "household"("id") ON DELETE CASCADE`,
    },
    {
      name: "fk_household_phone_household_id",
      stmt: `ALTER TABLE "household_phone" ADD CONSTRAINT "fk_household_phone_household_id" FOREIGN KEY ("household_id") REFERENCES "household"("id") ON DELETE CASCADE`,
    },
    {
      name: "fk_child_household_id",
      stmt: `ALTER TABLE "child" ADD CONSTRAINT "fk_child_household_id" FOREIGN KEY ("household_id") REFERENCES "household"("id") ON DELETE CASCADE`,
    },
    {
      name: "fk_household_event_household_id",
      stmt: `ALTER TABLE "household_event" ADD CONSTRAINT "fk_household_event_household_id" FOREIGN KEY ("household_id") REFERENCES "household"("id") ON DELETE CASCADE`,
    },
    {
      name: "fk_household_nominator_user_id",
      stmt: `ALTER TABLE "household" ADD CONSTRAINT "fk_household_nominator_user_id" FOREIGN KEY ("nominator_user_id") REFERENCES "user"("id")`,
    },
  }
  for _, c := range constraints {
    if err := s.db.Exec(fmt.Sprintf(`
      DO $$ BEGIN
        IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
          %s;
        END IF;
      END $$;
    `, c.name, c.stmt)).Error; err != nil {
      return fmt.Errorf("Failed to add %s: %w", c.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
