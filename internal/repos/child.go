package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/types"
)

type ChildRepo interface {
  Create(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, fields map[string]any) (uuid.UUID, error)
  ListByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) ([]types.Child, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type childRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewChildRepo(db *gorm.DB, baseLog *logger.Logger) ChildRepo {
  repoLog := baseLog.With("repo", "ChildRepo")
  return &childRepo{db: db, log: repoLog}
}

func (cr *childRepo) Create(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, fields map[string]any) (uuid.UUID, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  id := uuid.New()
  now := time.Now().UTC()
  row := make(map[string]any, len(fields)+4)
  for k, v := range fields {
    row[k] = v
  }
  row["id"] = id
  row["household_id"] = householdID
  row["created_at"] = now
  row["updated_at"] = now

  if err := transaction.WithContext(ctx).Model(&types.Child{}).Create(row).Error; err != nil {
    return uuid.Nil, err
  }
  return id, nil
}

func (cr *childRepo) ListByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) ([]types.Child, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  var results []types.Child
  if err := transaction.WithContext(ctx).
    Where("household_id = ?", householdID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *childRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.Child{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (cr *childRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.Child{}).Error
}
