package repos

import (
  "context"
  "fmt"
  "strings"
  "testing"

  "github.com/google/uuid"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  gormlogger "gorm.io/gorm/logger"

  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/types"
)

func openTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  name := strings.ReplaceAll(t.Name(), "/", "_")
  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
  gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
    Logger: gormlogger.Default.LogMode(gormlogger.Silent),
  })
  if err != nil {
    t.Fatalf("open sqlite: %v", err)
  }
  if err := gdb.AutoMigrate(
    &types.Affiliation{},
    &types.User{},
    &types.Household{},
    &types.HouseholdAddress{},
    &types.HouseholdPhone{},
    &types.Child{},
    &types.HouseholdEvent{},
  ); err != nil {
    t.Fatalf("automigrate: %v", err)
  }
  return gdb
}

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("init logger: %v", err)
  }
  return log
}

func seedUser(t *testing.T, users UserRepo, role string) *types.User {
  t.Helper()
  user := &types.User{
    ID:       uuid.New(),
    NameLast: "Seed",
    Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
    Password: "irrelevant",
    Role:     role,
    Active:   true,
  }
  if err := users.Create(context.Background(), nil, user); err != nil {
    t.Fatalf("seed user: %v", err)
  }
  return user
}
