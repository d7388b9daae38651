package services

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
	"github.com/cmpd-nominations/nominations-backend/internal/repos"
	"github.com/cmpd-nominations/nominations-backend/internal/requestdata"
	"github.com/cmpd-nominations/nominations-backend/internal/types"
)

// Each test gets a private in-memory database named after the test so shared
// cache mode keeps it alive across pooled connections without leaking between
// tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
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

type testEnv struct {
	db         *gorm.DB
	log        *logger.Logger
	households repos.HouseholdRepo
	addresses  repos.HouseholdAddressRepo
	phones     repos.HouseholdPhoneRepo
	children   repos.ChildRepo
	events     repos.HouseholdEventRepo
	users      repos.UserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := openTestDB(t)
	log := testLogger(t)
	return &testEnv{
		db:         gdb,
		log:        log,
		households: repos.NewHouseholdRepo(gdb, log),
		addresses:  repos.NewHouseholdAddressRepo(gdb, log),
		phones:     repos.NewHouseholdPhoneRepo(gdb, log),
		children:   repos.NewChildRepo(gdb, log),
		events:     repos.NewHouseholdEventRepo(gdb, log),
		users:      repos.NewUserRepo(gdb, log),
	}
}

func (e *testEnv) householdService() HouseholdService {
	return NewHouseholdService(e.db, e.log, e.households, e.addresses, e.phones, e.children, e.events, e.users)
}

func (e *testEnv) userService() UserService {
	return NewUserService(e.db, e.log, e.users, e.households)
}

func (e *testEnv) seedUser(t *testing.T, role string, nominationLimit int) *types.User {
	t.Helper()
	user := &types.User{
		ID:              uuid.New(),
		NameFirst:       "Pat",
		NameLast:        "Officer",
		Email:           fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password:        "irrelevant",
		Role:            role,
		Active:          true,
		Approved:        true,
		NominationLimit: nominationLimit,
	}
	if err := e.users.Create(context.Background(), nil, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func ctxAs(user *types.User) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: user.ID,
		Role:   user.Role,
	})
}

func (e *testEnv) countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	if err := e.db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }
