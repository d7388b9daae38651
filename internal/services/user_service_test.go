package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/cmpd-nominations/nominations-backend/internal/repos"
)

func TestCreateUserRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	nominator := env.seedUser(t, "nominator", 0)

	input := UserInput{
		Email:                strPtr("new@example.com"),
		Password:             strPtr("hunter22"),
		PasswordConfirmation: strPtr("hunter22"),
	}
	if _, err := svc.CreateUser(ctxAs(nominator), input); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err: want=%v got=%v", ErrUnauthorized, err)
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	admin := env.seedUser(t, "admin", 0)

	input := UserInput{
		NameFirst:            strPtr("Jordan"),
		NameLast:             strPtr("Lee"),
		Email:                strPtr("Jordan.Lee@Example.com"),
		Password:             strPtr("hunter22"),
		PasswordConfirmation: strPtr("hunter22"),
	}
	id, err := svc.CreateUser(ctxAs(admin), input)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	user, err := env.users.GetByID(context.Background(), nil, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Email != "jordan.lee@example.com" {
		t.Fatalf("email not normalized: got=%q", user.Email)
	}
	if user.Password == "hunter22" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != "nominator" {
		t.Fatalf("role: want=nominator got=%q", user.Role)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	admin := env.seedUser(t, "admin", 0)

	input := UserInput{
		Email:                strPtr("dup@example.com"),
		Password:             strPtr("hunter22"),
		PasswordConfirmation: strPtr("hunter22"),
	}
	if _, err := svc.CreateUser(ctxAs(admin), input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateUser(ctxAs(admin), input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second create: want=%v got=%v", ErrEmailTaken, err)
	}
}

func TestCreateUserPasswordMismatch(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	admin := env.seedUser(t, "admin", 0)

	input := UserInput{
		Email:                strPtr("mismatch@example.com"),
		Password:             strPtr("hunter22"),
		PasswordConfirmation: strPtr("hunter23"),
	}
	if _, err := svc.CreateUser(ctxAs(admin), input); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestUpdateUserAdminOnlyFields(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	admin := env.seedUser(t, "admin", 0)
	nominator := env.seedUser(t, "nominator", 0)

	// Self-update may touch profile fields but not role or limits.
	input := UserInput{
		NameFirst:       strPtr("Updated"),
		Role:            strPtr("admin"),
		NominationLimit: intPtr(99),
	}
	if err := svc.UpdateUser(ctxAs(nominator), nominator.ID, input); err != nil {
		t.Fatalf("self update: %v", err)
	}
	user, err := env.users.GetByID(context.Background(), nil, nominator.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.NameFirst != "Updated" {
		t.Fatalf("name_first: want=Updated got=%q", user.NameFirst)
	}
	if user.Role != "nominator" || user.NominationLimit != 0 {
		t.Fatalf("privileged fields leaked through self update: role=%q limit=%d", user.Role, user.NominationLimit)
	}

	if err := svc.UpdateUser(ctxAs(admin), nominator.ID, UserInput{NominationLimit: intPtr(5), Approved: boolPtr(true)}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	user, err = env.users.GetByID(context.Background(), nil, nominator.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.NominationLimit != 5 || !user.Approved {
		t.Fatalf("admin update not applied: limit=%d approved=%v", user.NominationLimit, user.Approved)
	}
}

func TestUpdateUserForbiddenForOthers(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	nominator := env.seedUser(t, "nominator", 0)
	other := env.seedUser(t, "nominator", 0)

	err := svc.UpdateUser(ctxAs(other), nominator.ID, UserInput{NameFirst: strPtr("Nope")})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err: want=%v got=%v", ErrUnauthorized, err)
	}
}

func TestGetUserNominationCount(t *testing.T) {
	env := newTestEnv(t)
	userSvc := env.userService()
	householdSvc := env.householdService()
	nominator := env.seedUser(t, "nominator", 0)
	ctx := ctxAs(nominator)

	for i := 0; i < 3; i++ {
		if _, err := householdSvc.CreateHousehold(ctx, basePayload()); err != nil {
			t.Fatalf("CreateHousehold: %v", err)
		}
	}

	got, err := userSvc.GetUser(ctx, nominator.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.NominationCount != 3 {
		t.Fatalf("nomination_count: want=3 got=%d", got.NominationCount)
	}
}

func TestGetUserScoped(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()
	nominator := env.seedUser(t, "nominator", 0)
	other := env.seedUser(t, "nominator", 0)
	admin := env.seedUser(t, "admin", 0)

	if _, err := svc.GetUser(ctxAs(other), nominator.ID); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("other: want=%v got=%v", repos.ErrNotFound, err)
	}
	if _, err := svc.GetUser(ctxAs(admin), nominator.ID); err != nil {
		t.Fatalf("admin: %v", err)
	}
}
