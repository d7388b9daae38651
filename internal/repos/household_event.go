package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/types"
)

type HouseholdEventRepo interface {
  Create(ctx context.Context, tx *gorm.DB, event *types.HouseholdEvent) error
  ListByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) ([]types.HouseholdEvent, error)
}

type householdEventRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewHouseholdEventRepo(db *gorm.DB, baseLog *logger.Logger) HouseholdEventRepo {
  repoLog := baseLog.With("repo", "HouseholdEventRepo")
  return &householdEventRepo{db: db, log: repoLog}
}

func (er *householdEventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.HouseholdEvent) error {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  if event.ID == uuid.Nil {
    event.ID = uuid.New()
  }
  if event.CreatedAt.IsZero() {
    event.CreatedAt = time.Now().UTC()
  }

  return transaction.WithContext(ctx).Create(event).Error
}

func (er *householdEventRepo) ListByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) ([]types.HouseholdEvent, error) {
  transaction := tx
  if transaction == nil {
    transaction = er.db
  }

  var results []types.HouseholdEvent
  if err := transaction.WithContext(ctx).
    Where("household_id = ?", householdID).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
