package service

import (
	"context"
	"encoding/json"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const (
	ProductCreated = "CREATED"
	ProductUpdated = "UPDATED"
	ProductDeleted = "DELETED"
)

var productSortFields = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"quantity":   "quantity",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindPage(ctx context.Context, q paging.Query) ([]*entity.Product, int64, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	SearchPageByName(ctx context.Context, name string, q paging.Query) ([]*entity.Product, int64, error)
	Save(ctx context.Context, product *entity.Product) error
	DeleteByID(ctx context.Context, id int) error
}

type DefaultProductService struct {
	ProductRepo ProductRepository
	Events      EventPublisher
	Validate    *validator.Validate
}

func NewProductService(productRepo ProductRepository, events EventPublisher, validate *validator.Validate) *DefaultProductService {
	return &DefaultProductService{
		ProductRepo: productRepo,
		Events:      events,
		Validate:    validate,
	}
}

func (s *DefaultProductService) GetAllProducts(ctx context.Context) ([]*contract.ProductResponse, apierror.ErrorResponse) {
	products, err := s.ProductRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch products: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapRecords(products, toProductResponse), nil
}

func (s *DefaultProductService) GetProducts(ctx context.Context, req paging.Request) (*paging.Page[*contract.ProductResponse], apierror.ErrorResponse) {
	products, total, apierr := fetchPage(req, productSortFields, "products", func(q paging.Query) ([]*entity.Product, int64, error) {
		return s.ProductRepo.FindPage(ctx, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return paging.NewPage(mapRecords(products, toProductResponse), req, total), nil
}

func (s *DefaultProductService) SearchProducts(ctx context.Context, name string) ([]*contract.ProductResponse, apierror.ErrorResponse) {
	products, err := s.ProductRepo.SearchByName(ctx, name)
	if err != nil {
		log.Errorf("failed to search products: %v", err)
		return nil, apierror.InternalServerError
	}
	return mapRecords(products, toProductResponse), nil
}

func (s *DefaultProductService) SearchProductsPage(ctx context.Context, name string, req paging.Request) (*paging.Page[*contract.ProductResponse], apierror.ErrorResponse) {
	products, total, apierr := fetchPage(req, productSortFields, "products", func(q paging.Query) ([]*entity.Product, int64, error) {
		return s.ProductRepo.SearchPageByName(ctx, name, q)
	})
	if apierr != nil {
		return nil, apierr
	}
	return paging.NewPage(mapRecords(products, toProductResponse), req, total), nil
}

func (s *DefaultProductService) GetProductByID(ctx context.Context, id int) (*contract.ProductResponse, apierror.ErrorResponse) {
	product, err := s.ProductRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch product %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if product == nil {
		return nil, apierror.NotFound("No product found with id %d", id)
	}
	return toProductResponse(product), nil
}

func (s *DefaultProductService) CreateProduct(ctx context.Context, req *contract.ProductRequest) (*contract.ProductResponse, apierror.ErrorResponse) {
	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	product := &entity.Product{CreatedAt: now, UpdatedAt: now}
	applyProductRequest(product, req)

	if err := s.ProductRepo.Save(ctx, product); err != nil {
		return nil, storeError("product", err)
	}

	log.Infof("created product %d", product.ID)
	s.publish(ctx, ProductCreated, product)
	return toProductResponse(product), nil
}

func (s *DefaultProductService) UpdateProduct(ctx context.Context, id int, req *contract.ProductRequest) (*contract.ProductResponse, apierror.ErrorResponse) {
	product, err := s.ProductRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch product %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if product == nil {
		return nil, apierror.NotFound("No product found with id %d", id)
	}

	if apierr := validateRequest(s.Validate, req); apierr != nil {
		return nil, apierr
	}

	applyProductRequest(product, req)
	product.UpdatedAt = utils.NextUpdate(product.UpdatedAt)

	if err = s.ProductRepo.Save(ctx, product); err != nil {
		return nil, storeError("product", err)
	}

	log.Infof("updated product %d", product.ID)
	s.publish(ctx, ProductUpdated, product)
	return toProductResponse(product), nil
}

func (s *DefaultProductService) DeleteProduct(ctx context.Context, id int) apierror.ErrorResponse {
	product, err := s.ProductRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch product %d: %v", id, err)
		return apierror.InternalServerError
	}

	if product == nil {
		return apierror.NotFound("No product found with id %d", id)
	}

	if err = s.ProductRepo.DeleteByID(ctx, id); err != nil {
		log.Errorf("failed to delete product %d: %v", id, err)
		return apierror.InternalServerError
	}

	log.Infof("deleted product %d", id)
	if payload, ok := encodeEvent(ProductDeleted, product); ok {
		s.Events.SendNotification(ctx, payload)
	}
	return nil
}

func (s *DefaultProductService) publish(ctx context.Context, action string, product *entity.Product) {
	if payload, ok := encodeEvent(action, product); ok {
		s.Events.SendProductMessage(ctx, payload)
	}
}

func encodeEvent(action string, product *entity.Product) (string, bool) {
	payload, err := json.Marshal(contract.ProductEvent{
		Action: action,
		ID:     product.ID,
		Name:   product.Name,
	})
	if err != nil {
		log.Errorf("failed to encode %s event for product %d: %v", action, product.ID, err)
		return "", false
	}
	return string(payload), true
}
