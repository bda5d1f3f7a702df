package policy

import (
	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
)

// ClientPolicy encapsulates the business rules a client write must satisfy.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type ClientPolicy struct{}

func NewClientPolicy() *ClientPolicy {
	return &ClientPolicy{}
}

// CanSave checks 'req' as the new state of the client 'selfID' (0 when creating).
// 'holder' is the client currently owning req.TaxCode, if any.
func (p *ClientPolicy) CanSave(req *contract.ClientRequest, holder *entity.Client, selfID int) apierror.ErrorResponse {
	if holder != nil && holder.ID != selfID {
		return apierror.DuplicateKey("A client with tax code '%s' already exists", req.TaxCode)
	}

	if req.CooperativeMember != nil && *req.CooperativeMember && req.CooperativeID == nil {
		return apierror.ValidationFailed("Field 'cooperative_id' is required for cooperative members")
	}
	return nil
}
