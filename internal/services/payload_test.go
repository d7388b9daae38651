package services

import (
	"strings"
	"testing"
)

func TestHouseholdPayloadValidate(t *testing.T) {
	full := func() HouseholdPayload {
		return HouseholdPayload{
			Address: AddressInput{
				Street: strPtr("100 Main St"),
				City:   strPtr("Charlotte"),
				State:  strPtr("NC"),
				Zip:    strPtr("28202"),
			},
		}
	}

	tests := []struct {
		name      string
		payload   HouseholdPayload
		forCreate bool
		wantErr   string
	}{
		{
			name:      "create_with_full_address",
			payload:   full(),
			forCreate: true,
		},
		{
			name: "create_missing_street",
			payload: func() HouseholdPayload {
				p := full()
				p.Address.Street = nil
				return p
			}(),
			forCreate: true,
			wantErr:   "address.street",
		},
		{
			name: "create_blank_zip",
			payload: func() HouseholdPayload {
				p := full()
				p.Address.Zip = strPtr("   ")
				return p
			}(),
			forCreate: true,
			wantErr:   "address.zip",
		},
		{
			name:      "update_allows_partial_address",
			payload:   HouseholdPayload{},
			forCreate: false,
		},
		{
			name: "phone_without_number",
			payload: HouseholdPayload{
				PhoneNumbers: []PhoneInput{{Type: "mobile"}},
			},
			forCreate: false,
			wantErr:   "phoneNumbers[0].number",
		},
		{
			name: "child_without_last4ssn",
			payload: HouseholdPayload{
				Nominations: []ChildInput{{NameFirst: strPtr("Sam")}},
			},
			forCreate: false,
			wantErr:   "nominations[0].last4ssn",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate(tc.forCreate)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate: want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestChildInputFieldsOmitsUnsetPointers(t *testing.T) {
	input := ChildInput{
		Last4SSN:  "1234",
		NameFirst: strPtr("Sam"),
		BikeWant:  boolPtr(true),
	}
	fields := input.Fields()

	if fields["last4ssn"] != "1234" {
		t.Fatalf("last4ssn: got=%v", fields["last4ssn"])
	}
	if fields["name_first"] != "Sam" {
		t.Fatalf("name_first: got=%v", fields["name_first"])
	}
	if fields["bike_want"] != true {
		t.Fatalf("bike_want: got=%v", fields["bike_want"])
	}
	for _, absent := range []string{"age", "bike_size", "clothes_want", "shoe_size"} {
		if _, ok := fields[absent]; ok {
			t.Fatalf("unset field %q should be omitted", absent)
		}
	}
}
