package repos

import (
  "context"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/types"
)

type HouseholdPhoneRepo interface {
  Create(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, fields map[string]any) (uuid.UUID, error)
  ListByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) ([]types.HouseholdPhone, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type householdPhoneRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewHouseholdPhoneRepo(db *gorm.DB, baseLog *logger.Logger) HouseholdPhoneRepo {
  repoLog := baseLog.With("repo", "HouseholdPhoneRepo")
  return &householdPhoneRepo{db: db, log: repoLog}
}

func (pr *householdPhoneRepo) Create(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, fields map[string]any) (uuid.UUID, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
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

  if err := transaction.WithContext(ctx).Model(&types.HouseholdPhone{}).Create(row).Error; err != nil {
    return uuid.Nil, err
  }
  return id, nil
}

func (pr *householdPhoneRepo) ListByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) ([]types.HouseholdPhone, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  var results []types.HouseholdPhone
  if err := transaction.WithContext(ctx).
    Where("household_id = ?", householdID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *householdPhoneRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.HouseholdPhone{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (pr *householdPhoneRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }

  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.HouseholdPhone{}).Error
}
