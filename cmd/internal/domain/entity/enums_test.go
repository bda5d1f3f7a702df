package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOwnership(t *testing.T) {
	cases := []struct {
		in   string
		want Ownership
		ok   bool
	}{
		{"PR", OwnershipOwner, true},
		{"pr", OwnershipOwner, true},
		{"PA", OwnershipThirdParty, true},
		{" pA ", OwnershipThirdParty, true},
		{"", OwnershipUnspecified, true},
		{"   ", OwnershipUnspecified, true},
		{"XX", OwnershipUnspecified, false},
		{"PRA", OwnershipUnspecified, false},
	}

	for _, tc := range cases {
		got, ok := ParseOwnership(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseModelCategory(t *testing.T) {
	for _, in := range []string{"Equipamento", "equipamento", "EQUIPAMENTO"} {
		got, ok := ParseModelCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, CategoryEquipment, got)
	}

	for _, in := range []string{"Veiculo", "veiculo", "VEICULO"} {
		got, ok := ParseModelCategory(in)
		assert.True(t, ok, in)
		assert.Equal(t, CategoryVehicle, got)
	}

	for _, in := range []string{"Motorcycle", "", "  ", "Veículo"} {
		_, ok := ParseModelCategory(in)
		assert.False(t, ok, in)
	}
}
