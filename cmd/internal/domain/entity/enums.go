package entity

import "strings"

// Ownership classifies who owns a piece of equipment or its chip.
// The zero value means it was left unspecified.
type Ownership string

const (
	OwnershipUnspecified Ownership = ""
	OwnershipOwner       Ownership = "PR"
	OwnershipThirdParty  Ownership = "PA"
)

// ParseOwnership matches s case-insensitively against the known tokens.
// Blank input yields OwnershipUnspecified, anything unknown reports false.
func ParseOwnership(s string) (Ownership, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return OwnershipUnspecified, true
	case strings.EqualFold(s, string(OwnershipOwner)):
		return OwnershipOwner, true
	case strings.EqualFold(s, string(OwnershipThirdParty)):
		return OwnershipThirdParty, true
	}
	return OwnershipUnspecified, false
}

type ModelCategory string

const (
	CategoryEquipment ModelCategory = "Equipamento"
	CategoryVehicle   ModelCategory = "Veiculo"
)

// ParseModelCategory matches s case-insensitively. A category is mandatory,
// so blank input is rejected like any unknown token.
func ParseModelCategory(s string) (ModelCategory, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(CategoryEquipment)):
		return CategoryEquipment, true
	case strings.EqualFold(s, string(CategoryVehicle)):
		return CategoryVehicle, true
	}
	return "", false
}
