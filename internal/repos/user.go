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

type UserRepo interface {
  Create(ctx context.Context, tx *gorm.DB, user *types.User) error
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error)
  GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
  EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
  UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error
  SearchPage(ctx context.Context, tx *gorm.DB, search string, affiliationID uuid.UUID, pendingOnly bool, limit, offset int) ([]*types.User, int64, error)
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  if user.ID == uuid.Nil {
    user.ID = uuid.New()
  }
  now := time.Now().UTC()
  if user.CreatedAt.IsZero() {
    user.CreatedAt = now
  }
  user.UpdatedAt = now

  return transaction.WithContext(ctx).Create(user).Error
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var result types.User
  if err := transaction.WithContext(ctx).
    Preload("Affiliation").
    Where("id = ?", id).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var result types.User
  if err := transaction.WithContext(ctx).
    Where("email = ?", email).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, ErrNotFound
    }
    return nil, err
  }
  return &result, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("email = ?", email).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (ur *userRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, fields map[string]any) error {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  if len(fields) == 0 {
    return nil
  }

  return transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", id).
    Updates(fields).Error
}

func (ur *userRepo) SearchPage(ctx context.Context, tx *gorm.DB, search string, affiliationID uuid.UUID, pendingOnly bool, limit, offset int) ([]*types.User, int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  query := transaction.WithContext(ctx).Model(&types.User{})
  if pendingOnly {
    query = query.Where("active = ? AND approved = ?", true, false)
  }
  if search != "" {
    query = query.Where("name_last LIKE ?", search+"%")
  }
  if affiliationID != uuid.Nil {
    query = query.Where("affiliation_id = ?", affiliationID)
  }

  var total int64
  if err := query.Count(&total).Error; err != nil {
    return nil, 0, err
  }

  var results []*types.User
  if err := query.
    Preload("Affiliation").
    Order("name_last ASC").
    Limit(limit).
    Offset(offset).
    Find(&results).Error; err != nil {
    return nil, 0, err
  }
  return results, total, nil
}
