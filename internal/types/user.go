package types

import (
  "time"
  "github.com/google/uuid"
)

// User is a nominator account. Households reference it by NominatorUserID.
type User struct {
  ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
  NameFirst       string       `gorm:"not null;column:name_first" json:"name_first"`
  NameLast        string       `gorm:"not null;index;column:name_last" json:"name_last"`
  Email           string       `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Password        string       `gorm:"not null;column:password" json:"-"`
  Role            string       `gorm:"not null;default:'nominator';column:role" json:"role"`
  Rank            string       `gorm:"column:rank" json:"rank"`
  Phone           string       `gorm:"column:phone" json:"phone"`
  Active          bool         `gorm:"not null;default:true;column:active" json:"active"`
  Approved        bool         `gorm:"not null;default:false;column:approved" json:"approved"`
  EmailVerified   bool         `gorm:"not null;default:false;column:email_verified" json:"email_verified"`
  NominationLimit int          `gorm:"not null;default:0;column:nomination_limit" json:"nomination_limit"`
  AffiliationID   *uuid.UUID   `gorm:"type:uuid;column:affiliation_id" json:"affiliation_id"`
  CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
  UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`

  Affiliation     *Affiliation `gorm:"foreignKey:AffiliationID" json:"affiliation,omitempty"`
}

func (User) TableName() string {
  return "user"
}
