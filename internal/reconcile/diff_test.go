package reconcile

import (
	"testing"
)

type phone struct {
	number string
	kind   string
}

func phoneKey(p phone) string { return p.number }

func TestDiffByKey(t *testing.T) {
	cases := []struct {
		name        string
		current     []phone
		incoming    []phone
		wantRemoved []string
		wantAdded   []string
		wantUpdated []string
	}{
		{
			name:        "both_empty",
			current:     nil,
			incoming:    nil,
			wantRemoved: nil,
			wantAdded:   nil,
			wantUpdated: nil,
		},
		{
			name:        "all_added",
			current:     nil,
			incoming:    []phone{{number: "555-1111"}, {number: "555-2222"}},
			wantAdded:   []string{"555-1111", "555-2222"},
		},
		{
			name:        "all_removed",
			current:     []phone{{number: "555-1111"}, {number: "555-2222"}},
			incoming:    nil,
			wantRemoved: []string{"555-1111", "555-2222"},
		},
		{
			name:        "replace_one",
			current:     []phone{{number: "555-1111", kind: "mobile"}},
			incoming:    []phone{{number: "555-2222", kind: "home"}},
			wantRemoved: []string{"555-1111"},
			wantAdded:   []string{"555-2222"},
		},
		{
			name:        "update_in_place",
			current:     []phone{{number: "555-1111", kind: "mobile"}},
			incoming:    []phone{{number: "555-1111", kind: "home"}},
			wantUpdated: []string{"555-1111"},
		},
		{
			name:        "identical_payload_is_all_updates",
			current:     []phone{{number: "555-1111", kind: "mobile"}, {number: "555-2222", kind: "home"}},
			incoming:    []phone{{number: "555-1111", kind: "mobile"}, {number: "555-2222", kind: "home"}},
			wantUpdated: []string{"555-1111", "555-2222"},
		},
		{
			name:        "mixed",
			current:     []phone{{number: "555-1111"}, {number: "555-2222"}, {number: "555-3333"}},
			incoming:    []phone{{number: "555-2222", kind: "work"}, {number: "555-4444"}},
			wantRemoved: []string{"555-1111", "555-3333"},
			wantAdded:   []string{"555-4444"},
			wantUpdated: []string{"555-2222"},
		},
		{
			name:        "duplicate_incoming_first_wins",
			current:     []phone{{number: "555-1111", kind: "mobile"}},
			incoming:    []phone{{number: "555-1111", kind: "home"}, {number: "555-1111", kind: "work"}},
			wantUpdated: []string{"555-1111"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiffByKey(tc.current, tc.incoming, phoneKey, phoneKey)

			if gotKeys := phoneKeys(got.Removed); !sameKeys(gotKeys, tc.wantRemoved) {
				t.Fatalf("removed=%v, want %v", gotKeys, tc.wantRemoved)
			}
			if gotKeys := phoneKeys(got.Added); !sameKeys(gotKeys, tc.wantAdded) {
				t.Fatalf("added=%v, want %v", gotKeys, tc.wantAdded)
			}
			updatedKeys := make([]string, 0, len(got.Updated))
			for _, pair := range got.Updated {
				if phoneKey(pair.Current) != phoneKey(pair.Incoming) {
					t.Fatalf("updated pair keys differ: %q vs %q", phoneKey(pair.Current), phoneKey(pair.Incoming))
				}
				updatedKeys = append(updatedKeys, phoneKey(pair.Current))
			}
			if !sameKeys(updatedKeys, tc.wantUpdated) {
				t.Fatalf("updated=%v, want %v", updatedKeys, tc.wantUpdated)
			}
		})
	}
}

// Removed plus the current side of Updated must partition current; Added plus
// the incoming side of Updated must partition incoming (modulo duplicate keys,
// where only the first incoming occurrence survives).
func TestDiffByKeyPartitions(t *testing.T) {
	current := []phone{{number: "a"}, {number: "b"}, {number: "c"}, {number: "d"}}
	incoming := []phone{{number: "c", kind: "x"}, {number: "d"}, {number: "e"}, {number: "f"}}

	got := DiffByKey(current, incoming, phoneKey, phoneKey)

	seenCurrent := map[string]int{}
	for _, p := range got.Removed {
		seenCurrent[p.number]++
	}
	for _, pair := range got.Updated {
		seenCurrent[pair.Current.number]++
	}
	if len(seenCurrent) != len(current) {
		t.Fatalf("current partition covers %d keys, want %d", len(seenCurrent), len(current))
	}
	for k, n := range seenCurrent {
		if n != 1 {
			t.Fatalf("current element %q appears %d times across result sets", k, n)
		}
	}

	seenIncoming := map[string]int{}
	for _, p := range got.Added {
		seenIncoming[p.number]++
	}
	for _, pair := range got.Updated {
		seenIncoming[pair.Incoming.number]++
	}
	if len(seenIncoming) != len(incoming) {
		t.Fatalf("incoming partition covers %d keys, want %d", len(seenIncoming), len(incoming))
	}
	for k, n := range seenIncoming {
		if n != 1 {
			t.Fatalf("incoming element %q appears %d times across result sets", k, n)
		}
	}
}

func TestDiffByKeyMixedTypes(t *testing.T) {
	type stored struct {
		id     int
		last4  string
	}
	currentChildren := []stored{{id: 1, last4: "1234"}, {id: 2, last4: "5678"}}
	incomingChildren := []map[string]any{
		{"last4ssn": "5678", "name_first": "B"},
		{"last4ssn": "9999", "name_first": "C"},
	}

	got := DiffByKey(currentChildren, incomingChildren,
		func(c stored) string { return c.last4 },
		func(m map[string]any) string { s, _ := m["last4ssn"].(string); return s })

	if len(got.Removed) != 1 || got.Removed[0].id != 1 {
		t.Fatalf("removed=%v, want stored child 1", got.Removed)
	}
	if len(got.Added) != 1 || got.Added[0]["last4ssn"] != "9999" {
		t.Fatalf("added=%v, want incoming 9999", got.Added)
	}
	if len(got.Updated) != 1 || got.Updated[0].Current.id != 2 {
		t.Fatalf("updated=%v, want stored child 2", got.Updated)
	}
}

func TestMerge(t *testing.T) {
	defaults := map[string]any{"bike_want": false, "interests": "", "bike_size": nil}
	fields := map[string]any{"bike_want": true, "name_first": "A"}

	merged := Merge(defaults, fields)

	if merged["bike_want"] != true {
		t.Fatalf("caller field must win over default, got %v", merged["bike_want"])
	}
	if merged["interests"] != "" {
		t.Fatalf("default must survive when caller omits the field, got %v", merged["interests"])
	}
	if v, ok := merged["bike_size"]; !ok || v != nil {
		t.Fatalf("null sentinel default must survive, got %v (present=%v)", v, ok)
	}
	if merged["name_first"] != "A" {
		t.Fatalf("caller-only field missing, got %v", merged["name_first"])
	}
	if len(fields) != 2 || len(defaults) != 3 {
		t.Fatalf("inputs must not be mutated")
	}
}

func phoneKeys(ps []phone) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.number)
	}
	return out
}

func sameKeys(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	set := map[string]int{}
	for _, k := range got {
		set[k]++
	}
	for _, k := range want {
		set[k]--
		if set[k] < 0 {
			return false
		}
	}
	return true
}
