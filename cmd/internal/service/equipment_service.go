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

var equipmentSortFields = map[string]string{
	"id":                  "id",
	"imei":                "imei",
	"phone_number":        "phone_number",
	"serial_number":       "serial_number",
	"carrier":             "carrier",
	"active":              "active",
	"equipment_ownership": "equipment_ownership",
	"chip_ownership":      "chip_ownership",
	"model_id":            "model_id",
	"allocated":           "allocated",
	"created_at":          "created_at",
	"updated_at":          "updated_at",
}

type EquipmentRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Equipment, error)
	FindPage(ctx context.Context, q paging.Query) ([]*entity.Equipment, int64, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, equip *entity.Equipment) error
	DeleteByID(ctx context.Context, id int) error
}

type ModelFinder interface {
	FindByID(ctx context.Context, id int) (*entity.Model, error)
	FindAllInIDs(ctx context.Context, ids []int) ([]*entity.Model, error)
}

type DefaultEquipmentService struct {
	EquipRepo EquipmentRepository
	ModelRepo ModelFinder
	Policy    *policy.EquipmentPolicy
	Validate  *validator.Validate
}

func NewEquipmentService(equipRepo EquipmentRepository, modelRepo ModelFinder, validate *validator.Validate) *DefaultEquipmentService {
	return &DefaultEquipmentService{
		EquipRepo: equipRepo,
		ModelRepo: modelRepo,
		Policy:    policy.NewEquipmentPolicy(),
		Validate:  validate,
	}
}

func (s *DefaultEquipmentService) GetEquipment(ctx context.Context, req paging.Request) (*paging.Page[*contract.EquipmentResponse], apierror.ErrorResponse) {
	equipment, total, apierr := fetchPage(req, equipmentSortFields, "equipment", func(q paging.Query) ([]*entity.Equipment, int64, error) {
		return s.EquipRepo.FindPage(ctx, q)
	})
	if apierr != nil {
		return nil, apierr
	}

	models, err := s.loadModels(ctx, equipment)
	if err != nil {
		log.Errorf("failed to resolve equipment models: %v", err)
		return nil, apierror.InternalServerError
	}

	content := mapRecords(equipment, func(equip *entity.Equipment) *contract.EquipmentResponse {
		return toEquipmentResponse(equip, models[equip.ModelID])
	})
	return paging.NewPage(content, req, total), nil
}

func (s *DefaultEquipmentService) GetEquipmentByID(ctx context.Context, id int) (*contract.EquipmentResponse, apierror.ErrorResponse) {
	equip, err := s.EquipRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch equipment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if equip == nil {
		return nil, apierror.NotFound("No equipment found with id %d", id)
	}

	models, err := s.loadModels(ctx, []*entity.Equipment{equip})
	if err != nil {
		log.Errorf("failed to resolve model of equipment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toEquipmentResponse(equip, models[equip.ModelID]), nil
}

func (s *DefaultEquipmentService) CreateEquipment(ctx context.Context, req *contract.EquipmentRequest) (*contract.EquipmentResponse, apierror.ErrorResponse) {
	model, apierr := s.checkWrite(ctx, req)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	equip := &entity.Equipment{CreatedAt: now, UpdatedAt: now}
	applyEquipmentRequest(equip, req, model)

	if err := s.EquipRepo.Save(ctx, equip); err != nil {
		return nil, storeError("equipment", err)
	}

	log.Infof("created equipment %d", equip.ID)
	return toEquipmentResponse(equip, model), nil
}

func (s *DefaultEquipmentService) UpdateEquipment(ctx context.Context, id int, req *contract.EquipmentRequest) (*contract.EquipmentResponse, apierror.ErrorResponse) {
	equip, err := s.EquipRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch equipment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if equip == nil {
		return nil, apierror.NotFound("No equipment found with id %d", id)
	}

	model, apierr := s.checkWrite(ctx, req)
	if apierr != nil {
		return nil, apierr
	}

	applyEquipmentRequest(equip, req, model)
	equip.UpdatedAt = utils.NextUpdate(equip.UpdatedAt)

	if err = s.EquipRepo.Save(ctx, equip); err != nil {
		return nil, storeError("equipment", err)
	}

	log.Infof("updated equipment %d", equip.ID)
	return toEquipmentResponse(equip, model), nil
}

func (s *DefaultEquipmentService) DeleteEquipment(ctx context.Context, id int) apierror.ErrorResponse {
	return deleteRecord(ctx, "equipment", id, s.EquipRepo.ExistsByID, s.EquipRepo.DeleteByID)
}

// checkWrite validates req and resolves the model it must point at.
func (s *DefaultEquipmentService) checkWrite(ctx context.Context, req *contract.EquipmentRequest) (*entity.Model, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	if apierr := s.Policy.CanSave(req); apierr != nil {
		return nil, apierr
	}
	return resolveRef(ctx, "model", req.ModelID, s.ModelRepo.FindByID)
}

func (s *DefaultEquipmentService) loadModels(ctx context.Context, equipment []*entity.Equipment) (map[int]*entity.Model, error) {
	ids := make([]int, len(equipment))
	for i, equip := range equipment {
		ids[i] = equip.ModelID
	}

	return resolveRefs(ctx, ids, s.ModelRepo.FindAllInIDs, func(model *entity.Model) int {
		return model.ID
	})
}
