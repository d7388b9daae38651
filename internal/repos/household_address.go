package repos

import (
  "context"
  "errors"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/cmpd-nominations/nominations-backend/internal/logger"
  "github.com/cmpd-nominations/nominations-backend/internal/types"
)

type HouseholdAddressRepo interface {
  Create(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, fields map[string]any) (uuid.UUID, error)
  GetByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) (*types.HouseholdAddress, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
}

type householdAddressRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewHouseholdAddressRepo(db *gorm.DB, baseLog *logger.Logger) HouseholdAddressRepo {
  repoLog := baseLog.With("repo", "HouseholdAddressRepo")
  return &householdAddressRepo{db: db, log: repoLog}
}

func (ar *householdAddressRepo) Create(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, fields map[string]any) (uuid.UUID, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
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

  if err := transaction.WithContext(ctx).Model(&types.HouseholdAddress{}).Create(row).Error; err != nil {
    return uuid.Nil, err
  }
  return id, nil
}

func (ar *householdAddressRepo) GetByHouseholdID(ctx context.Context, tx *gorm.DB, householdID uuid.UUID) (*types.HouseholdAddress, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  var result types.HouseholdAddress
  if err := transaction.WithContext(ctx).
    Where("household_id = ?", householdID).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

func (ar *householdAddressRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.HouseholdAddress{}).
    Where("id = ?", id).
    Updates(fields).Error
}
