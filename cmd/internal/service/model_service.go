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

var modelSortFields = map[string]string{
	"id":           "id",
	"manufacturer": "manufacturer",
	"brand":        "brand",
	"category":     "category",
	"active":       "active",
	"created_at":   "created_at",
	"updated_at":   "updated_at",
}

type ModelRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Model, error)
	FindPage(ctx context.Context, q paging.Query) ([]*entity.Model, int64, error)
	FindPageByCategory(ctx context.Context, category entity.ModelCategory, q paging.Query) ([]*entity.Model, int64, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, model *entity.Model) error
	DeleteByID(ctx context.Context, id int) error
}

// ModelUsage tells whether equipment still depends on a model.
type ModelUsage interface {
	ExistsByModel(ctx context.Context, modelID int) (bool, error)
}

type DefaultModelService struct {
	ModelRepo ModelRepository
	Usage     ModelUsage
	Policy    *policy.ModelPolicy
	Validate  *validator.Validate
}

func NewModelService(modelRepo ModelRepository, usage ModelUsage, validate *validator.Validate) *DefaultModelService {
	return &DefaultModelService{
		ModelRepo: modelRepo,
		Usage:     usage,
		Policy:    policy.NewModelPolicy(),
		Validate:  validate,
	}
}

func (s *DefaultModelService) GetModels(ctx context.Context, req paging.Request) (*paging.Page[*contract.ModelResponse], apierror.ErrorResponse) {
	models, total, apierr := fetchPage(req, modelSortFields, "models", func(q paging.Query) ([]*entity.Model, int64, error) {
		return s.ModelRepo.FindPage(ctx, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return paging.NewPage(mapRecords(models, toModelResponse), req, total), nil
}

// GetModelsByCategory pages through the models of a single category.
func (s *DefaultModelService) GetModelsByCategory(ctx context.Context, category entity.ModelCategory, req paging.Request) (*paging.Page[*contract.ModelResponse], apierror.ErrorResponse) {
	models, total, apierr := fetchPage(req, modelSortFields, "models", func(q paging.Query) ([]*entity.Model, int64, error) {
		return s.ModelRepo.FindPageByCategory(ctx, category, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return paging.NewPage(mapRecords(models, toModelResponse), req, total), nil
}

func (s *DefaultModelService) GetModelByID(ctx context.Context, id int) (*contract.ModelResponse, apierror.ErrorResponse) {
	model, err := s.ModelRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch model %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if model == nil {
		return nil, apierror.NotFound("No model found with id %d", id)
	}
	return toModelResponse(model), nil
}

func (s *DefaultModelService) CreateModel(ctx context.Context, req *contract.ModelRequest) (*contract.ModelResponse, apierror.ErrorResponse) {
	if apierr := s.checkWrite(req); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	model := &entity.Model{CreatedAt: now, UpdatedAt: now}
	applyModelRequest(model, req)

	if err := s.ModelRepo.Save(ctx, model); err != nil {
		return nil, storeError("model", err)
	}

	log.Infof("created model %d", model.ID)
	return toModelResponse(model), nil
}

func (s *DefaultModelService) UpdateModel(ctx context.Context, id int, req *contract.ModelRequest) (*contract.ModelResponse, apierror.ErrorResponse) {
	model, err := s.ModelRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch model %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if model == nil {
		return nil, apierror.NotFound("No model found with id %d", id)
	}

	if apierr := s.checkWrite(req); apierr != nil {
		return nil, apierr
	}

	applyModelRequest(model, req)
	model.UpdatedAt = utils.NextUpdate(model.UpdatedAt)

	if err = s.ModelRepo.Save(ctx, model); err != nil {
		return nil, storeError("model", err)
	}

	log.Infof("updated model %d", model.ID)
	return toModelResponse(model), nil
}

func (s *DefaultModelService) DeleteModel(ctx context.Context, id int) apierror.ErrorResponse {
	return deleteRecord(ctx, "model", id, s.ModelRepo.ExistsByID, s.ModelRepo.DeleteByID,
		reference{kind: "equipment", exists: s.Usage.ExistsByModel},
	)
}

func (s *DefaultModelService) checkWrite(req *contract.ModelRequest) apierror.ErrorResponse {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return apierr
	}
	return s.Policy.CanSave(req)
}
