package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/cmpd-nominations/nominations-backend/internal/logger"
	"github.com/cmpd-nominations/nominations-backend/internal/reconcile"
	"github.com/cmpd-nominations/nominations-backend/internal/repos"
	"github.com/cmpd-nominations/nominations-backend/internal/requestdata"
	"github.com/cmpd-nominations/nominations-backend/internal/types"
)

var householdTracer = otel.Tracer("services/household")

// Default records merged under caller-supplied fields on create; caller fields
// win on conflict.
var householdDefaults = map[string]any{
	"draft":                 true,
	"nomination_email_sent": false,
	"reviewed":              false,
	"approved":              false,
}

var addressDefaults = map[string]any{
	"street2": "",
	"type":    "",
}

var childDefaults = map[string]any{
	"additional_ideas":      "",
	"bike_want":             false,
	"bike_size":             nil,
	"bike_style":            nil,
	"clothes_want":          false,
	"clothes_size_shirt":    nil,
	"clothes_size_pants":    nil,
	"shoe_size":             nil,
	"favourite_colour":      nil,
	"interests":             "",
	"reason_for_nomination": "",
}

type HouseholdService interface {
	CreateHousehold(ctx context.Context, payload HouseholdPayload) (uuid.UUID, error)
	UpdateHousehold(ctx context.Context, id uuid.UUID, payload HouseholdPayload) error
	SubmitNomination(ctx context.Context, id uuid.UUID) error
	GetHousehold(ctx context.Context, id uuid.UUID) (*types.Household, error)
}

type householdService struct {
	db         *gorm.DB
	log        *logger.Logger
	households repos.HouseholdRepo
	addresses  repos.HouseholdAddressRepo
	phones     repos.HouseholdPhoneRepo
	children   repos.ChildRepo
	events     repos.HouseholdEventRepo
	users      repos.UserRepo
}

func NewHouseholdService(
	db *gorm.DB,
	log *logger.Logger,
	households repos.HouseholdRepo,
	addresses repos.HouseholdAddressRepo,
	phones repos.HouseholdPhoneRepo,
	children repos.ChildRepo,
	events repos.HouseholdEventRepo,
	users repos.UserRepo,
) HouseholdService {
	serviceLog := log.With("service", "HouseholdService")
	return &householdService{
		db:         db,
		log:        serviceLog,
		households: households,
		addresses:  addresses,
		phones:     phones,
		children:   children,
		events:     events,
		users:      users,
	}
}

// CreateHousehold creates the household, its address, and every submitted
// phone and child nomination inside one transaction. On any failure nothing
// is left behind.
func (hs *householdService) CreateHousehold(ctx context.Context, payload HouseholdPayload) (uuid.UUID, error) {
	ctx, span := householdTracer.Start(ctx, "CreateHousehold")
	defer span.End()

	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}

	var householdID uuid.UUID
	if err := hs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nominator, err := hs.users.GetByID(ctx, tx, rd.UserID)
		if err != nil {
			return fmt.Errorf("loading nominator: %w", err)
		}
		if nominator.NominationLimit > 0 {
			count, err := hs.households.CountByNominator(ctx, tx, rd.UserID)
			if err != nil {
				return fmt.Errorf("counting nominations: %w", err)
			}
			if count >= int64(nominator.NominationLimit) {
				return ErrLimitReached
			}
		}

		fields := reconcile.Merge(householdDefaults, payload.Household.Fields())
		fields["nominator_user_id"] = rd.UserID
		householdID, err = hs.households.Create(ctx, tx, fields)
		if err != nil {
			return fmt.Errorf("creating household: %w", err)
		}

		addressFields := reconcile.Merge(addressDefaults, payload.Address.Fields())
		if _, err := hs.addresses.Create(ctx, tx, householdID, addressFields); err != nil {
			return fmt.Errorf("creating household_address: %w", err)
		}

		for _, phone := range payload.PhoneNumbers {
			if _, err := hs.phones.Create(ctx, tx, householdID, phone.Fields()); err != nil {
				return fmt.Errorf("creating household_phone: %w", err)
			}
		}

		for _, child := range payload.Nominations {
			childFields := reconcile.Merge(childDefaults, child.Fields())
			if _, err := hs.children.Create(ctx, tx, householdID, childFields); err != nil {
				return fmt.Errorf("creating child: %w", err)
			}
		}

		return hs.recordEvent(ctx, tx, householdID, rd.UserID, types.HouseholdEventCreated, payload)
	}); err != nil {
		hs.log.Error("CreateHousehold transaction failed", "error", err)
		return uuid.Nil, err
	}

	hs.log.Info("household created", "household_id", householdID)
	return householdID, nil
}

// UpdateHousehold converges stored phone and child records onto the submitted
// payload via diff-by-natural-key, alongside direct field updates to the
// household and its address. All of it commits or rolls back as one unit.
func (hs *householdService) UpdateHousehold(ctx context.Context, id uuid.UUID, payload HouseholdPayload) error {
	ctx, span := householdTracer.Start(ctx, "UpdateHousehold")
	defer span.End()

	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return ErrUnauthorized
	}

	if err := hs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		household, err := hs.households.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if !rd.IsAdmin() && household.NominatorUserID != rd.UserID {
			return repos.ErrNotFound
		}
		address, err := hs.addresses.GetByHouseholdID(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := hs.households.UpdateFields(ctx, tx, id, payload.Household.Fields()); err != nil {
			return fmt.Errorf("updating household: %w", err)
		}
		if err := hs.addresses.UpdateFields(ctx, tx, address.ID, payload.Address.Fields()); err != nil {
			return fmt.Errorf("updating household_address: %w", err)
		}

		if err := hs.reconcilePhones(ctx, tx, id, payload.PhoneNumbers); err != nil {
			return err
		}
		if err := hs.reconcileChildren(ctx, tx, id, payload.Nominations); err != nil {
			return err
		}

		return hs.recordEvent(ctx, tx, id, rd.UserID, types.HouseholdEventUpdated, payload)
	}); err != nil {
		hs.log.Error("UpdateHousehold transaction failed", "household_id", id, "error", err)
		return err
	}

	hs.log.Info("household updated", "household_id", id)
	return nil
}

func (hs *householdService) reconcilePhones(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, incoming []PhoneInput) error {
	current, err := hs.phones.ListByHouseholdID(ctx, tx, householdID)
	if err != nil {
		return fmt.Errorf("loading phone numbers: %w", err)
	}

	delta := reconcile.DiffByKey(current, incoming,
		func(p types.HouseholdPhone) string { return p.Number },
		func(p PhoneInput) string { return p.Number })

	for _, removed := range delta.Removed {
		hs.log.Debug("removing number", "household_id", householdID, "number", removed.Number)
		if err := hs.phones.Delete(ctx, tx, removed.ID); err != nil {
			return fmt.Errorf("removing household_phone: %w", err)
		}
	}
	for _, added := range delta.Added {
		hs.log.Debug("adding number", "household_id", householdID, "number", added.Number)
		if _, err := hs.phones.Create(ctx, tx, householdID, added.Fields()); err != nil {
			return fmt.Errorf("adding household_phone: %w", err)
		}
	}
	for _, pair := range delta.Updated {
		hs.log.Debug("updating number", "household_id", householdID, "number", pair.Current.Number)
		if err := hs.phones.UpdateFields(ctx, tx, pair.Current.ID, pair.Incoming.Fields()); err != nil {
			return fmt.Errorf("updating household_phone: %w", err)
		}
	}
	return nil
}

func (hs *householdService) reconcileChildren(ctx context.Context, tx *gorm.DB, householdID uuid.UUID, incoming []ChildInput) error {
	current, err := hs.children.ListByHouseholdID(ctx, tx, householdID)
	if err != nil {
		return fmt.Errorf("loading nominations: %w", err)
	}

	delta := reconcile.DiffByKey(current, incoming,
		func(c types.Child) string { return c.Last4SSN },
		func(c ChildInput) string { return c.Last4SSN })

	for _, removed := range delta.Removed {
		hs.log.Debug("removing nomination", "household_id", householdID, "last4ssn", removed.Last4SSN)
		if err := hs.children.Delete(ctx, tx, removed.ID); err != nil {
			return fmt.Errorf("removing child: %w", err)
		}
	}
	for _, added := range delta.Added {
		hs.log.Debug("adding nomination", "household_id", householdID, "last4ssn", added.Last4SSN)
		childFields := reconcile.Merge(childDefaults, added.Fields())
		if _, err := hs.children.Create(ctx, tx, householdID, childFields); err != nil {
			return fmt.Errorf("adding child: %w", err)
		}
	}
	for _, pair := range delta.Updated {
		hs.log.Debug("updating nomination", "household_id", householdID, "last4ssn", pair.Current.Last4SSN)
		if err := hs.children.UpdateFields(ctx, tx, pair.Current.ID, pair.Incoming.Fields()); err != nil {
			return fmt.Errorf("updating child: %w", err)
		}
	}
	return nil
}

// SubmitNomination flips the household out of draft. Submitting an already
// submitted household is a no-op that still reports success.
func (hs *householdService) SubmitNomination(ctx context.Context, id uuid.UUID) error {
	ctx, span := householdTracer.Start(ctx, "SubmitNomination")
	defer span.End()

	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return ErrUnauthorized
	}

	if err := hs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		household, err := hs.households.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if !rd.IsAdmin() && household.NominatorUserID != rd.UserID {
			return repos.ErrNotFound
		}
		if !household.Draft {
			return nil
		}
		if err := hs.households.SetDraft(ctx, tx, id, false); err != nil {
			return fmt.Errorf("submitting nomination: %w", err)
		}
		return hs.recordEvent(ctx, tx, id, rd.UserID, types.HouseholdEventSubmitted, nil)
	}); err != nil {
		hs.log.Error("SubmitNomination failed", "household_id", id, "error", err)
		return err
	}

	hs.log.Info("nomination submitted", "household_id", id)
	return nil
}

func (hs *householdService) GetHousehold(ctx context.Context, id uuid.UUID) (*types.Household, error) {
	ctx, span := householdTracer.Start(ctx, "GetHousehold")
	defer span.End()

	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	household, err := hs.households.GetByIDWithRelations(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if !rd.IsAdmin() && household.NominatorUserID != rd.UserID {
		return nil, repos.ErrNotFound
	}
	return household, nil
}

func (hs *householdService) recordEvent(ctx context.Context, tx *gorm.DB, householdID, actorID uuid.UUID, action string, payload any) error {
	event := &types.HouseholdEvent{
		HouseholdID: householdID,
		ActorUserID: actorID,
		Action:      action,
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding event payload: %w", err)
		}
		event.Payload = raw
	}
	if err := hs.events.Create(ctx, tx, event); err != nil {
		return fmt.Errorf("recording household event: %w", err)
	}
	return nil
}
