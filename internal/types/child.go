package types

import (
  "time"
  "github.com/google/uuid"
)

// Child is one nominated applicant within a household, naturally keyed by
// Last4SSN. Preference fields default to empty/null sentinels when the intake
// payload omits them.
type Child struct {
  ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  HouseholdID         uuid.UUID `gorm:"type:uuid;not null;index;column:household_id" json:"household_id"`
  Last4SSN            string    `gorm:"not null;column:last4ssn" json:"last4ssn"`
  NameFirst           string    `gorm:"column:name_first" json:"name_first"`
  NameLast            string    `gorm:"column:name_last" json:"name_last"`
  Age                 int       `gorm:"column:age" json:"age"`
  AdditionalIdeas     string    `gorm:"column:additional_ideas" json:"additional_ideas"`
  BikeWant            bool      `gorm:"not null;default:false;column:bike_want" json:"bike_want"`
  BikeSize            *string   `gorm:"column:bike_size" json:"bike_size"`
  BikeStyle           *string   `gorm:"column:bike_style" json:"bike_style"`
  ClothesWant         bool      `gorm:"not null;default:false;column:clothes_want" json:"clothes_want"`
  ClothesSizeShirt    *string   `gorm:"column:clothes_size_shirt" json:"clothes_size_shirt"`
  ClothesSizePants    *string   `gorm:"column:clothes_size_pants" json:"clothes_size_pants"`
  ShoeSize            *string   `gorm:"column:shoe_size" json:"shoe_size"`
  FavouriteColour     *string   `gorm:"column:favourite_colour" json:"favourite_colour"`
  Interests           string    `gorm:"column:interests" json:"interests"`
  ReasonForNomination string    `gorm:"column:reason_for_nomination" json:"reason_for_nomination"`
  CreatedAt           time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}

func (Child) TableName() string {
  return "child"
}
