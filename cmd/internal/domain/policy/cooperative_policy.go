package policy

import (
	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
)

type CooperativePolicy struct{}

func NewCooperativePolicy() *CooperativePolicy {
	return &CooperativePolicy{}
}

// CanSave follows the same tax code discipline as ClientPolicy.CanSave.
func (p *CooperativePolicy) CanSave(req *contract.CooperativeRequest, holder *entity.Cooperative, selfID int) apierror.ErrorResponse {
	if holder != nil && holder.ID != selfID {
		return apierror.DuplicateKey("A cooperative with tax code '%s' already exists", req.TaxCode)
	}
	return nil
}
