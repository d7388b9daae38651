package types

import (
  "time"
  "github.com/google/uuid"
)

type Household struct {
  ID                  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
  NominatorUserID     uuid.UUID         `gorm:"type:uuid;not null;index;column:nominator_user_id" json:"nominator_user_id"`
  NameLast            string            `gorm:"index;column:name_last" json:"name_last"`
  Draft               bool              `gorm:"not null;default:true;column:draft" json:"draft"`
  Reviewed            bool              `gorm:"not null;default:false;column:reviewed" json:"reviewed"`
  Approved            bool              `gorm:"not null;default:false;column:approved" json:"approved"`
  NominationEmailSent bool              `gorm:"not null;default:false;column:nomination_email_sent" json:"nomination_email_sent"`
  CreatedAt           time.Time         `gorm:"not null" json:"created_at"`
  UpdatedAt           time.Time         `gorm:"not null" json:"updated_at"`

  Address             *HouseholdAddress `gorm:"foreignKey:HouseholdID" json:"address,omitempty"`
  PhoneNumbers        []HouseholdPhone  `gorm:"foreignKey:HouseholdID" json:"phone_numbers,omitempty"`
  Children            []Child           `gorm:"foreignKey:HouseholdID" json:"children,omitempty"`
  Nominator           *User             `gorm:"foreignKey:NominatorUserID" json:"nominator,omitempty"`
}

func (Household) TableName() string {
  return "household"
}
