package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/cmpd-nominations/nominations-backend/internal/logger"
	"github.com/cmpd-nominations/nominations-backend/internal/repos"
	"github.com/cmpd-nominations/nominations-backend/internal/requestdata"
	"github.com/cmpd-nominations/nominations-backend/internal/types"
)

const (
	defaultPageSize   = 25
	maxPageSize       = 100
	tablePageCacheTTL = 30 * time.Second
)

// TablePage is the generic paginated list envelope the dashboard tables
// consume.
type TablePage struct {
	Items     any   `json:"items"`
	TotalSize int64 `json:"totalSize"`
}

type TableQueryService interface {
	ListHouseholds(ctx context.Context, search string, page, pageSize int) (*TablePage, error)
	ListUsers(ctx context.Context, search string, affiliationID uuid.UUID, pendingOnly bool, page, pageSize int) (*TablePage, error)
}

type tableQueryService struct {
	log        *logger.Logger
	households repos.HouseholdRepo
	users      repos.UserRepo
	cache      *goredis.Client
}

// NewTableQueryService builds the list helper. cache may be nil, in which
// case every call hits the database.
func NewTableQueryService(log *logger.Logger, households repos.HouseholdRepo, users repos.UserRepo, cache *goredis.Client) TableQueryService {
	serviceLog := log.With("service", "TableQueryService")
	return &tableQueryService{log: serviceLog, households: households, users: users, cache: cache}
}

func (ts *tableQueryService) ListHouseholds(ctx context.Context, search string, page, pageSize int) (*TablePage, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	limit, offset := pageBounds(page, pageSize)

	// Non-admin callers only ever see their own households.
	scope := uuid.Nil
	if !rd.IsAdmin() {
		scope = rd.UserID
	}

	cacheKey := fmt.Sprintf("tablepage:household:%s:%s:%d:%d", scope, search, limit, offset)
	if cached := ts.cachedPage(ctx, cacheKey, &[]*types.Household{}); cached != nil {
		return cached, nil
	}

	items, total, err := ts.households.SearchPage(ctx, nil, search, scope, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetching household page: %w", err)
	}
	result := &TablePage{Items: items, TotalSize: total}
	ts.storePage(ctx, cacheKey, result)
	return result, nil
}

func (ts *tableQueryService) ListUsers(ctx context.Context, search string, affiliationID uuid.UUID, pendingOnly bool, page, pageSize int) (*TablePage, error) {
	rd := requestdata.GetRequestData(ctx)
	if !rd.IsAdmin() {
		return nil, ErrUnauthorized
	}
	limit, offset := pageBounds(page, pageSize)

	cacheKey := fmt.Sprintf("tablepage:user:%s:%s:%v:%d:%d", affiliationID, search, pendingOnly, limit, offset)
	if cached := ts.cachedPage(ctx, cacheKey, &[]*types.User{}); cached != nil {
		return cached, nil
	}

	items, total, err := ts.users.SearchPage(ctx, nil, search, affiliationID, pendingOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetching user page: %w", err)
	}
	result := &TablePage{Items: items, TotalSize: total}
	ts.storePage(ctx, cacheKey, result)
	return result, nil
}

type cachedEnvelope struct {
	Items     json.RawMessage `json:"items"`
	TotalSize int64           `json:"totalSize"`
}

func (ts *tableQueryService) cachedPage(ctx context.Context, key string, items any) *TablePage {
	if ts.cache == nil {
		return nil
	}
	raw, err := ts.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			ts.log.Warn("table page cache read failed", "key", key, "error", err)
		}
		return nil
	}
	var envelope cachedEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Items, items); err != nil {
		return nil
	}
	return &TablePage{Items: items, TotalSize: envelope.TotalSize}
}

func (ts *tableQueryService) storePage(ctx context.Context, key string, page *TablePage) {
	if ts.cache == nil {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := ts.cache.Set(ctx, key, raw, tablePageCacheTTL).Err(); err != nil {
		ts.log.Warn("table page cache write failed", "key", key, "error", err)
	}
}

func pageBounds(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}
