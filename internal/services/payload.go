package services

import (
	"fmt"
	"strings"
)

// HouseholdPayload is the intake body for household create and update. Field
// pointers distinguish "omitted" from "set to zero value" so partial updates
// only touch submitted columns.
type HouseholdPayload struct {
	Household    HouseholdInput `json:"household"`
	Address      AddressInput   `json:"address"`
	PhoneNumbers []PhoneInput   `json:"phoneNumbers"`
	Nominations  []ChildInput   `json:"nominations"`
}

type HouseholdInput struct {
	NameLast *string `json:"name_last"`
}

type AddressInput struct {
	Street           *string `json:"street"`
	Street2          *string `json:"street2"`
	City             *string `json:"city"`
	State            *string `json:"state"`
	Zip              *string `json:"zip"`
	CMPDDivision     *string `json:"cmpd_division"`
	CMPDResponseArea *string `json:"cmpd_response_area"`
	Type             *string `json:"type"`
}

type PhoneInput struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type ChildInput struct {
	Last4SSN            string  `json:"last4ssn"`
	NameFirst           *string `json:"name_first"`
	NameLast            *string `json:"name_last"`
	Age                 *int    `json:"age"`
	AdditionalIdeas     *string `json:"additional_ideas"`
	BikeWant            *bool   `json:"bike_want"`
	BikeSize            *string `json:"bike_size"`
	BikeStyle           *string `json:"bike_style"`
	ClothesWant         *bool   `json:"clothes_want"`
	ClothesSizeShirt    *string `json:"clothes_size_shirt"`
	ClothesSizePants    *string `json:"clothes_size_pants"`
	ShoeSize            *string `json:"shoe_size"`
	FavouriteColour     *string `json:"favourite_colour"`
	Interests           *string `json:"interests"`
	ReasonForNomination *string `json:"reason_for_nomination"`
}

// Validate runs schema checks before any transaction opens. forCreate demands
// the full address; updates may carry partial fields.
func (p *HouseholdPayload) Validate(forCreate bool) error {
	if forCreate {
		required := map[string]*string{
			"address.street": p.Address.Street,
			"address.city":   p.Address.City,
			"address.state":  p.Address.State,
			"address.zip":    p.Address.Zip,
		}
		for name, val := range required {
			if val == nil || strings.TrimSpace(*val) == "" {
				return fmt.Errorf("%s is required", name)
			}
		}
	}
	for i, phone := range p.PhoneNumbers {
		if strings.TrimSpace(phone.Number) == "" {
			return fmt.Errorf("phoneNumbers[%d].number is required", i)
		}
	}
	for i, child := range p.Nominations {
		if strings.TrimSpace(child.Last4SSN) == "" {
			return fmt.Errorf("nominations[%d].last4ssn is required", i)
		}
	}
	return nil
}

func (h HouseholdInput) Fields() map[string]any {
	fields := map[string]any{}
	if h.NameLast != nil {
		fields["name_last"] = *h.NameLast
	}
	return fields
}

func (a AddressInput) Fields() map[string]any {
	fields := map[string]any{}
	setString(fields, "street", a.Street)
	setString(fields, "street2", a.Street2)
	setString(fields, "city", a.City)
	setString(fields, "state", a.State)
	setString(fields, "zip", a.Zip)
	setString(fields, "cmpd_division", a.CMPDDivision)
	setString(fields, "cmpd_response_area", a.CMPDResponseArea)
	setString(fields, "type", a.Type)
	return fields
}

func (p PhoneInput) Fields() map[string]any {
	return map[string]any{
		"number": p.Number,
		"type":   p.Type,
	}
}

func (c ChildInput) Fields() map[string]any {
	fields := map[string]any{"last4ssn": c.Last4SSN}
	setString(fields, "name_first", c.NameFirst)
	setString(fields, "name_last", c.NameLast)
	if c.Age != nil {
		fields["age"] = *c.Age
	}
	setString(fields, "additional_ideas", c.AdditionalIdeas)
	if c.BikeWant != nil {
		fields["bike_want"] = *c.BikeWant
	}
	setString(fields, "bike_size", c.BikeSize)
	setString(fields, "bike_style", c.BikeStyle)
	if c.ClothesWant != nil {
		fields["clothes_want"] = *c.ClothesWant
	}
	setString(fields, "clothes_size_shirt", c.ClothesSizeShirt)
	setString(fields, "clothes_size_pants", c.ClothesSizePants)
	setString(fields, "shoe_size", c.ShoeSize)
	setString(fields, "favourite_colour", c.FavouriteColour)
	setString(fields, "interests", c.Interests)
	setString(fields, "reason_for_nomination", c.ReasonForNomination)
	return fields
}

func setString(fields map[string]any, column string, val *string) {
	if val != nil {
		fields[column] = *val
	}
}
