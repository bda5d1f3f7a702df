package service

import (
	"context"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/domain/policy"
	"fleetdesk/cmd/internal/utils"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

var clientSortFields = map[string]string{
	"id":                 "id",
	"uuid":               "uuid",
	"name":               "name",
	"tax_code":           "tax_code",
	"city":               "city",
	"state":              "state",
	"active":             "active",
	"cooperative_member": "cooperative_member",
	"cooperative_id":     "cooperative_id",
	"created_at":         "created_at",
	"updated_at":         "updated_at",
}

type ClientRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Client, error)
	FindByUUID(ctx context.Context, uuid string) (*entity.Client, error)
	FindByTaxCode(ctx context.Context, taxCode string) (*entity.Client, error)
	FindPage(ctx context.Context, q paging.Query) ([]*entity.Client, int64, error)
	FindPageByCooperative(ctx context.Context, cooperativeID int, q paging.Query) ([]*entity.Client, int64, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, client *entity.Client) error
	DeleteByID(ctx context.Context, id int) error
}

// CooperativeFinder is the read access clients need to resolve their cooperative.
type CooperativeFinder interface {
	FindByID(ctx context.Context, id int) (*entity.Cooperative, error)
	FindAllInIDs(ctx context.Context, ids []int) ([]*entity.Cooperative, error)
}

type DefaultClientService struct {
	ClientRepo ClientRepository
	CoopRepo   CooperativeFinder
	Policy     *policy.ClientPolicy
	Validate   *validator.Validate
}

func NewClientService(clientRepo ClientRepository, coopRepo CooperativeFinder, validate *validator.Validate) *DefaultClientService {
	return &DefaultClientService{
		ClientRepo: clientRepo,
		CoopRepo:   coopRepo,
		Policy:     policy.NewClientPolicy(),
		Validate:   validate,
	}
}

func (s *DefaultClientService) GetClients(ctx context.Context, req paging.Request) (*paging.Page[*contract.ClientResponse], apierror.ErrorResponse) {
	clients, total, apierr := fetchPage(req, clientSortFields, "clients", func(q paging.Query) ([]*entity.Client, int64, error) {
		return s.ClientRepo.FindPage(ctx, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return s.toClientPage(ctx, clients, total, req)
}

func (s *DefaultClientService) GetClientsByCooperative(ctx context.Context, cooperativeID int, req paging.Request) (*paging.Page[*contract.ClientResponse], apierror.ErrorResponse) {
	clients, total, apierr := fetchPage(req, clientSortFields, "clients", func(q paging.Query) ([]*entity.Client, int64, error) {
		return s.ClientRepo.FindPageByCooperative(ctx, cooperativeID, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return s.toClientPage(ctx, clients, total, req)
}

func (s *DefaultClientService) GetClientByID(ctx context.Context, id int) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, err := s.ClientRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFound("No client found with id %d", id)
	}
	return s.toClientDetails(ctx, client)
}

func (s *DefaultClientService) GetClientByUUID(ctx context.Context, clientUUID string) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, err := s.ClientRepo.FindByUUID(ctx, clientUUID)
	if err != nil {
		log.Errorf("failed to fetch client %s: %v", clientUUID, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFound("No client found with uuid %s", clientUUID)
	}
	return s.toClientDetails(ctx, client)
}

func (s *DefaultClientService) CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	coop, apierr := s.checkWrite(ctx, req, 0)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	client := &entity.Client{
		UUID:      uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyClientRequest(client, req, coop)

	if err := s.ClientRepo.Save(ctx, client); err != nil {
		return nil, storeError("client", err)
	}

	log.Infof("created client %d (%s)", client.ID, client.UUID)
	return toClientResponse(client, coop), nil
}

func (s *DefaultClientService) UpdateClient(ctx context.Context, id int, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse) {
	client, err := s.ClientRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if client == nil {
		return nil, apierror.NotFound("No client found with id %d", id)
	}

	coop, apierr := s.checkWrite(ctx, req, client.ID)
	if apierr != nil {
		return nil, apierr
	}

	applyClientRequest(client, req, coop)
	client.UpdatedAt = utils.NextUpdate(client.UpdatedAt)

	if err = s.ClientRepo.Save(ctx, client); err != nil {
		return nil, storeError("client", err)
	}

	log.Infof("updated client %d", client.ID)
	return toClientResponse(client, coop), nil
}

func (s *DefaultClientService) DeleteClient(ctx context.Context, id int) apierror.ErrorResponse {
	return deleteRecord(ctx, "client", id, s.ClientRepo.ExistsByID, s.ClientRepo.DeleteByID)
}

// checkWrite validates req as the new state of client selfID and resolves its cooperative.
func (s *DefaultClientService) checkWrite(ctx context.Context, req *contract.ClientRequest, selfID int) (*entity.Cooperative, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	holder, err := s.ClientRepo.FindByTaxCode(ctx, req.TaxCode)
	if err != nil {
		log.Errorf("failed to fetch client by tax code: %v", err)
		return nil, apierror.InternalServerError
	}

	if apierr := s.Policy.CanSave(req, holder, selfID); apierr != nil {
		return nil, apierr
	}
	return resolveRef(ctx, "cooperative", req.CooperativeID, s.CoopRepo.FindByID)
}

func (s *DefaultClientService) toClientDetails(ctx context.Context, client *entity.Client) (*contract.ClientResponse, apierror.ErrorResponse) {
	coops, err := s.loadCooperatives(ctx, []*entity.Client{client})
	if err != nil {
		log.Errorf("failed to resolve cooperative of client %d: %v", client.ID, err)
		return nil, apierror.InternalServerError
	}

	var coop *entity.Cooperative
	if client.CooperativeID != nil {
		coop = coops[*client.CooperativeID]
	}
	return toClientResponse(client, coop), nil
}

func (s *DefaultClientService) toClientPage(ctx context.Context, clients []*entity.Client, total int64, req paging.Request) (*paging.Page[*contract.ClientResponse], apierror.ErrorResponse) {
	coops, err := s.loadCooperatives(ctx, clients)
	if err != nil {
		log.Errorf("failed to resolve client cooperatives: %v", err)
		return nil, apierror.InternalServerError
	}

	content := mapRecords(clients, func(client *entity.Client) *contract.ClientResponse {
		var coop *entity.Cooperative
		if client.CooperativeID != nil {
			coop = coops[*client.CooperativeID]
		}
		return toClientResponse(client, coop)
	})
	return paging.NewPage(content, req, total), nil
}

func (s *DefaultClientService) loadCooperatives(ctx context.Context, clients []*entity.Client) (map[int]*entity.Cooperative, error) {
	ids := make([]int, 0, len(clients))
	for _, client := range clients {
		if client.CooperativeID != nil {
			ids = append(ids, *client.CooperativeID)
		}
	}

	return resolveRefs(ctx, ids, s.CoopRepo.FindAllInIDs, func(coop *entity.Cooperative) int {
		return coop.ID
	})
}
