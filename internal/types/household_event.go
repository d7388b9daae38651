package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

const (
  HouseholdEventCreated   = "created"
  HouseholdEventUpdated   = "updated"
  HouseholdEventSubmitted = "submitted"
)

// HouseholdEvent is the audit row written in the same transaction as the
// household mutation it records.
type HouseholdEvent struct {
  ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  HouseholdID uuid.UUID      `gorm:"type:uuid;not null;index;column:household_id" json:"household_id"`
  ActorUserID uuid.UUID      `gorm:"type:uuid;column:actor_user_id" json:"actor_user_id"`
  Action      string         `gorm:"not null;column:action" json:"action"`
  Payload     datatypes.JSON `gorm:"column:payload" json:"payload,omitempty"`
  CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
}

func (HouseholdEvent) TableName() string {
  return "household_event"
}
