package policy

import (
	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
)

type EquipmentPolicy struct{}

func NewEquipmentPolicy() *EquipmentPolicy {
	return &EquipmentPolicy{}
}

// CanSave checks both ownership tags. Blank tags are allowed.
func (p *EquipmentPolicy) CanSave(req *contract.EquipmentRequest) apierror.ErrorResponse {
	if _, ok := entity.ParseOwnership(req.EquipmentOwnership); !ok {
		return ownershipError("equipment_ownership", req.EquipmentOwnership)
	}

	if _, ok := entity.ParseOwnership(req.ChipOwnership); !ok {
		return ownershipError("chip_ownership", req.ChipOwnership)
	}
	return nil
}

func ownershipError(field, value string) apierror.ErrorResponse {
	return apierror.ValidationFailed("Field '%s' has invalid value '%s', expected: %s or %s",
		field, value, entity.OwnershipOwner, entity.OwnershipThirdParty)
}
