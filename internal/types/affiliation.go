package types

import (
  "time"
  "github.com/google/uuid"
)

type Affiliation struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string    `gorm:"not null;column:name" json:"name"`
  Type      string    `gorm:"column:type" json:"type"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Affiliation) TableName() string {
  return "affiliation"
}
