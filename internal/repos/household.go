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

type HouseholdRepo interface {
  Create(ctx context.Context, tx *gorm.DB, fields map[string]any) (uuid.UUID, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Household, error)
  GetByIDWithRelations(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Household, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  SetDraft(ctx context.Context, tx *gorm.DB, id uuid.UUID, draft bool) error
  CountByNominator(ctx context.Context, tx *gorm.DB, nominatorUserID uuid.UUID) (int64, error)
  SearchPage(ctx context.Context, tx *gorm.DB, search string, nominatorUserID uuid.UUID, limit, offset int) ([]*types.Household, int64, error)
}

type householdRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewHouseholdRepo(db *gorm.DB, baseLog *logger.Logger) HouseholdRepo {
  repoLog := baseLog.With("repo", "HouseholdRepo")
  return &householdRepo{db: db, log: repoLog}
}

func (hr *householdRepo) Create(ctx context.Context, tx *gorm.DB, fields map[string]any) (uuid.UUID, error) {
  transaction := tx
  if transaction == nil {
    transaction = hr.db
  }

  id, ok := fields["id"].(uuid.UUID)
  if !ok {
    id = uuid.New()
  }
  now := time.Now().UTC()
  row := make(map[string]any, len(fields)+3)
  for k, v := range fields {
    row[k] = v
  }
  row["id"] = id
  row["created_at"] = now
  row["updated_at"] = now

  if err := transaction.WithContext(ctx).Model(&types.Household{}).Create(row).Error; err != nil {
    return uuid.Nil, err
  }
  return id, nil
}

func (hr *householdRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Household, error) {
  transaction := tx
  if transaction == nil {
    transaction = hr.db
  }

  var result types.Household
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

func (hr *householdRepo) GetByIDWithRelations(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Household, error) {
  transaction := tx
  if transaction == nil {
    transaction = hr.db
  }

  var result types.Household
  if err := transaction.WithContext(ctx).
    Preload("Address").
    Preload("PhoneNumbers").
    Preload("Children").
    Preload("Nominator").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

func (hr *householdRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = hr.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.Household{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (hr *householdRepo) SetDraft(ctx context.Context, tx *gorm.DB, id uuid.UUID, draft bool) error {
  transaction := tx
  if transaction == nil {
    transaction = hr.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Household{}).
    Where("id = ?", id).
    Update("draft", draft).Error
}

func (hr *householdRepo) CountByNominator(ctx context.Context, tx *gorm.DB, nominatorUserID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = hr.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Household{}).
    Where("nominator_user_id = ?", nominatorUserID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (hr *householdRepo) SearchPage(ctx context.Context, tx *gorm.DB, search string, nominatorUserID uuid.UUID, limit, offset int) ([]*types.Household, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = hr.db
  }

  query := transaction.WithContext(ctx).Model(&types.Household{})
  if search != "" {
    query = query.Where("name_last LIKE ?", search+"%")
  }
  if nominatorUserID != uuid.Nil {
    query = query.Where("nominator_user_id = ?", nominatorUserID)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.Household
  if err := query.
    Preload("Children").
    Preload("Nominator").
    Order("name_last ASC").
    Limit(limit).
    Offset(offset).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}
