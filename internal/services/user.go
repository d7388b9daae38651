package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cmpd-nominations/nominations-backend/internal/logger"
	"github.com/cmpd-nominations/nominations-backend/internal/repos"
	"github.com/cmpd-nominations/nominations-backend/internal/requestdata"
	"github.com/cmpd-nominations/nominations-backend/internal/types"
)

// ErrEmailTaken is returned when account creation collides with an existing
// email address.
var ErrEmailTaken = errors.New("user already exists")

// UserWithStats is the account read model: the user row plus how many
// households they have nominated.
type UserWithStats struct {
	*types.User
	NominationCount int64 `json:"nomination_count"`
}

type UserInput struct {
	NameFirst            *string    `json:"name_first"`
	NameLast             *string    `json:"name_last"`
	Email                *string    `json:"email"`
	Role                 *string    `json:"role"`
	Rank                 *string    `json:"rank"`
	Phone                *string    `json:"phone"`
	Active               *bool      `json:"active"`
	Approved             *bool      `json:"approved"`
	EmailVerified        *bool      `json:"email_verified"`
	NominationLimit      *int       `json:"nomination_limit"`
	AffiliationID        *uuid.UUID `json:"affiliation_id"`
	Password             *string    `json:"password"`
	PasswordConfirmation *string    `json:"password_confirmation"`
}

type UserService interface {
	CreateUser(ctx context.Context, input UserInput) (uuid.UUID, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UserInput) error
	GetUser(ctx context.Context, id uuid.UUID) (*UserWithStats, error)
}

type userService struct {
	db         *gorm.DB
	log        *logger.Logger
	users      repos.UserRepo
	households repos.HouseholdRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, users repos.UserRepo, households repos.HouseholdRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, users: users, households: households}
}

func (us *userService) CreateUser(ctx context.Context, input UserInput) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if !rd.IsAdmin() {
		return uuid.Nil, ErrUnauthorized
	}
	if input.Email == nil || strings.TrimSpace(*input.Email) == "" {
		return uuid.Nil, fmt.Errorf("email is required")
	}
	if input.Password == nil || *input.Password == "" {
		return uuid.Nil, fmt.Errorf("password is required")
	}
	if input.PasswordConfirmation == nil || *input.Password != *input.PasswordConfirmation {
		return uuid.Nil, fmt.Errorf("passwords do not match")
	}

	email := strings.ToLower(strings.TrimSpace(*input.Email))
	hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Role:     "nominator",
	}
	applyUserInput(user, input)

	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := us.users.EmailExists(ctx, tx, email)
		if err != nil {
			return fmt.Errorf("checking email: %w", err)
		}
		if exists {
			return ErrEmailTaken
		}
		return us.users.Create(ctx, tx, user)
	}); err != nil {
		us.log.Error("CreateUser failed", "error", err)
		return uuid.Nil, err
	}

	us.log.Info("user created", "user_id", user.ID)
	return user.ID, nil
}

func (us *userService) UpdateUser(ctx context.Context, id uuid.UUID, input UserInput) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || (!rd.IsAdmin() && rd.UserID != id) {
		return ErrUnauthorized
	}

	fields := map[string]any{}
	if input.NameFirst != nil {
		fields["name_first"] = *input.NameFirst
	}
	if input.NameLast != nil {
		fields["name_last"] = *input.NameLast
	}
	if input.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Rank != nil {
		fields["rank"] = *input.Rank
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.AffiliationID != nil {
		fields["affiliation_id"] = *input.AffiliationID
	}
	// Only administrators may touch role, limits, and account gates.
	if rd.IsAdmin() {
		if input.Role != nil {
			fields["role"] = *input.Role
		}
		if input.Active != nil {
			fields["active"] = *input.Active
		}
		if input.Approved != nil {
			fields["approved"] = *input.Approved
		}
		if input.EmailVerified != nil {
			fields["email_verified"] = *input.EmailVerified
		}
		if input.NominationLimit != nil {
			fields["nomination_limit"] = *input.NominationLimit
		}
	}
	if input.Password != nil && *input.Password != "" {
		if input.PasswordConfirmation == nil || *input.Password != *input.PasswordConfirmation {
			return fmt.Errorf("passwords do not match")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		fields["password"] = string(hashed)
	}

	if err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := us.users.GetByID(ctx, tx, id); err != nil {
			return err
		}
		return us.users.UpdateFields(ctx, tx, id, fields)
	}); err != nil {
		us.log.Error("UpdateUser failed", "user_id", id, "error", err)
		return err
	}

	us.log.Info("user updated", "user_id", id)
	return nil
}

func (us *userService) GetUser(ctx context.Context, id uuid.UUID) (*UserWithStats, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || (!rd.IsAdmin() && rd.UserID != id) {
		return nil, repos.ErrNotFound
	}

	user, err := us.users.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	count, err := us.households.CountByNominator(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return &UserWithStats{User: user, NominationCount: count}, nil
}

func applyUserInput(user *types.User, input UserInput) {
	if input.NameFirst != nil {
		user.NameFirst = *input.NameFirst
	}
	if input.NameLast != nil {
		user.NameLast = *input.NameLast
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Rank != nil {
		user.Rank = *input.Rank
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Approved != nil {
		user.Approved = *input.Approved
	}
	if input.EmailVerified != nil {
		user.EmailVerified = *input.EmailVerified
	}
	if input.NominationLimit != nil {
		user.NominationLimit = *input.NominationLimit
	}
	if input.AffiliationID != nil {
		user.AffiliationID = input.AffiliationID
	}
}
