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
	"github.com/labstack/gommon/log"
)

var cooperativeSortFields = map[string]string{
	"id":          "id",
	"name":        "name",
	"tax_code":    "tax_code",
	"city":        "city",
	"state":       "state",
	"postal_code": "postal_code",
	"active":      "active",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

type CooperativeRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Cooperative, error)
	FindByTaxCode(ctx context.Context, taxCode string) (*entity.Cooperative, error)
	FindAll(ctx context.Context) ([]*entity.Cooperative, error)
	FindPage(ctx context.Context, q paging.Query) ([]*entity.Cooperative, int64, error)
	FindMatching(ctx context.Context, filter entity.CooperativeFilter) ([]*entity.Cooperative, error)
	FindPageMatching(ctx context.Context, filter entity.CooperativeFilter, q paging.Query) ([]*entity.Cooperative, int64, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, coop *entity.Cooperative) error
	DeleteByID(ctx context.Context, id int) error
}

type CooperativeUsage interface {
	ExistsByCooperative(ctx context.Context, cooperativeID int) (bool, error)
}

type DefaultCooperativeService struct {
	CoopRepo CooperativeRepository
	Usage    CooperativeUsage
	Policy   *policy.CooperativePolicy
	Validate *validator.Validate
}

func NewCooperativeService(coopRepo CooperativeRepository, usage CooperativeUsage, validate *validator.Validate) *DefaultCooperativeService {
	return &DefaultCooperativeService{
		CoopRepo: coopRepo,
		Usage:    usage,
		Policy:   policy.NewCooperativePolicy(),
		Validate: validate,
	}
}

func (s *DefaultCooperativeService) GetAllCooperatives(ctx context.Context) ([]*contract.CooperativeResponse, apierror.ErrorResponse) {
	coops, err := s.CoopRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch cooperatives: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapRecords(coops, toCooperativeResponse), nil
}

func (s *DefaultCooperativeService) GetCooperatives(ctx context.Context, req paging.Request) (*paging.Page[*contract.CooperativeResponse], apierror.ErrorResponse) {
	coops, total, apierr := fetchPage(req, cooperativeSortFields, "cooperatives", func(q paging.Query) ([]*entity.Cooperative, int64, error) {
		return s.CoopRepo.FindPage(ctx, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return paging.NewPage(mapRecords(coops, toCooperativeResponse), req, total), nil
}

// SearchCooperatives lists every cooperative matching filter.
func (s *DefaultCooperativeService) SearchCooperatives(ctx context.Context, filter entity.CooperativeFilter) ([]*contract.CooperativeResponse, apierror.ErrorResponse) {
	coops, err := s.CoopRepo.FindMatching(ctx, filter)
	if err != nil {
		log.Errorf("failed to search cooperatives: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapRecords(coops, toCooperativeResponse), nil
}

func (s *DefaultCooperativeService) SearchCooperativesPage(ctx context.Context, filter entity.CooperativeFilter, req paging.Request) (*paging.Page[*contract.CooperativeResponse], apierror.ErrorResponse) {
	coops, total, apierr := fetchPage(req, cooperativeSortFields, "cooperatives", func(q paging.Query) ([]*entity.Cooperative, int64, error) {
		return s.CoopRepo.FindPageMatching(ctx, filter, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return paging.NewPage(mapRecords(coops, toCooperativeResponse), req, total), nil
}

func (s *DefaultCooperativeService) GetCooperativeByID(ctx context.Context, id int) (*contract.CooperativeResponse, apierror.ErrorResponse) {
	coop, err := s.CoopRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch cooperative %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if coop == nil {
		return nil, apierror.NotFound("No cooperative found with id %d", id)
	}
	return toCooperativeResponse(coop), nil
}

func (s *DefaultCooperativeService) GetCooperativeByTaxCode(ctx context.Context, taxCode string) (*contract.CooperativeResponse, apierror.ErrorResponse) {
	coop, err := s.CoopRepo.FindByTaxCode(ctx, taxCode)
	if err != nil {
		log.Errorf("failed to fetch cooperative by tax code: %v", err)
		return nil, apierror.InternalServerError
	}

	if coop == nil {
		return nil, apierror.NotFound("No cooperative found with tax code '%s'", taxCode)
	}
	return toCooperativeResponse(coop), nil
}

func (s *DefaultCooperativeService) CreateCooperative(ctx context.Context, req *contract.CooperativeRequest) (*contract.CooperativeResponse, apierror.ErrorResponse) {
	if apierr := s.checkWrite(ctx, req, 0); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	coop := &entity.Cooperative{CreatedAt: now, UpdatedAt: now}
	applyCooperativeRequest(coop, req)

	if err := s.CoopRepo.Save(ctx, coop); err != nil {
		return nil, storeError("cooperative", err)
	}

	log.Infof("created cooperative %d", coop.ID)
	return toCooperativeResponse(coop), nil
}

func (s *DefaultCooperativeService) UpdateCooperative(ctx context.Context, id int, req *contract.CooperativeRequest) (*contract.CooperativeResponse, apierror.ErrorResponse) {
	coop, err := s.CoopRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch cooperative %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if coop == nil {
		return nil, apierror.NotFound("No cooperative found with id %d", id)
	}

	if apierr := s.checkWrite(ctx, req, coop.ID); apierr != nil {
		return nil, apierr
	}

	applyCooperativeRequest(coop, req)
	coop.UpdatedAt = utils.NextUpdate(coop.UpdatedAt)

	if err = s.CoopRepo.Save(ctx, coop); err != nil {
		return nil, storeError("cooperative", err)
	}

	log.Infof("updated cooperative %d", coop.ID)
	return toCooperativeResponse(coop), nil
}

func (s *DefaultCooperativeService) DeleteCooperative(ctx context.Context, id int) apierror.ErrorResponse {
	return deleteRecord(ctx, "cooperative", id, s.CoopRepo.ExistsByID, s.CoopRepo.DeleteByID,
		reference{kind: "client", exists: s.Usage.ExistsByCooperative},
	)
}

func (s *DefaultCooperativeService) checkWrite(ctx context.Context, req *contract.CooperativeRequest, selfID int) apierror.ErrorResponse {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return apierr
	}

	holder, err := s.CoopRepo.FindByTaxCode(ctx, req.TaxCode)
	if err != nil {
		log.Errorf("failed to fetch cooperative by tax code: %v", err)
		return apierror.InternalServerError
	}
	return s.Policy.CanSave(req, holder, selfID)
}
