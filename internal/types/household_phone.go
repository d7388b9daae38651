package types

import (
  "time"
  "github.com/google/uuid"
)

// HouseholdPhone is naturally keyed by Number within one household.
type HouseholdPhone struct {
  ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  HouseholdID uuid.UUID `gorm:"type:uuid;not null;index;column:household_id" json:"household_id"`
  Number      string    `gorm:"not null;column:number" json:"number"`
  Type        string    `gorm:"column:type" json:"type"`
  CreatedAt   time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (HouseholdPhone) TableName() string {
  return "household_phone"
}
