package oracle

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		def  Definition
		ok   bool
	}{
		{name: "balanced single door", def: Definition{Length: 2, Doors: []bool{true, false}}, ok: true},
		{name: "constant all closed", def: Definition{Length: 3, Doors: []bool{false, false, false}, Constant: true}, ok: true},
		{name: "zero length", def: Definition{Length: 0}},
		{name: "doors mismatch", def: Definition{Length: 3, Doors: []bool{true}}},
		{name: "constant with open door", def: Definition{Length: 2, Doors: []bool{false, true}, Constant: true}},
		{name: "balanced without door", def: Definition{Length: 2, Doors: []bool{false, false}}},
	}
	for _, tc := range cases {
		err := tc.def.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("%s: expected error", tc.name)
			}
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Fatalf("%s: expected ErrInvalidDefinition, got %v", tc.name, err)
			}
		}
	}
}

func TestDefinitionString(t *testing.T) {
	def := Definition{Length: 4, Doors: []bool{true, false, true, true}}
	if got := def.String(); got != "1011" {
		t.Fatalf("string=%q", got)
	}
	active := def.ActiveDoors()
	if len(active) != 3 || active[0] != 0 || active[1] != 2 || active[2] != 3 {
		t.Fatalf("active=%v", active)
	}
}
