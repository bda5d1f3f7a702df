package policy

import (
	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
)

type ModelPolicy struct{}

func NewModelPolicy() *ModelPolicy {
	return &ModelPolicy{}
}

func (p *ModelPolicy) CanSave(req *contract.ModelRequest) apierror.ErrorResponse {
	if _, ok := entity.ParseModelCategory(req.Category); !ok {
		return apierror.ValidationFailed("Field 'category' has invalid value '%s', expected: %s or %s",
			req.Category, entity.CategoryEquipment, entity.CategoryVehicle)
	}
	return nil
}
