package types

import (
  "time"
  "github.com/google/uuid"
)

type HouseholdAddress struct {
  ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  HouseholdID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:household_id" json:"household_id"`
  Street           string    `gorm:"not null;column:street" json:"street"`
  Street2          string    `gorm:"column:street2" json:"street2"`
  City             string    `gorm:"not null;column:city" json:"city"`
  State            string    `gorm:"not null;column:state" json:"state"`
  Zip              string    `gorm:"not null;column:zip" json:"zip"`
  CMPDDivision     string    `gorm:"column:cmpd_division" json:"cmpd_division"`
  CMPDResponseArea string    `gorm:"column:cmpd_response_area" json:"cmpd_response_area"`
  Type             string    `gorm:"column:type" json:"type"`
  CreatedAt        time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (HouseholdAddress) TableName() string {
  return "household_address"
}
