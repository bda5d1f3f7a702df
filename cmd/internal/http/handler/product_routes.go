package handler

import (
	"context"
	"net/http"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]*contract.ProductResponse, apierror.ErrorResponse)
	GetProducts(ctx context.Context, req paging.Request) (*paging.Page[*contract.ProductResponse], apierror.ErrorResponse)
	SearchProducts(ctx context.Context, name string) ([]*contract.ProductResponse, apierror.ErrorResponse)
	SearchProductsPage(ctx context.Context, name string, req paging.Request) (*paging.Page[*contract.ProductResponse], apierror.ErrorResponse)
	GetProductByID(ctx context.Context, id int) (*contract.ProductResponse, apierror.ErrorResponse)
	CreateProduct(ctx context.Context, req *contract.ProductRequest) (*contract.ProductResponse, apierror.ErrorResponse)
	UpdateProduct(ctx context.Context, id int, req *contract.ProductRequest) (*contract.ProductResponse, apierror.ErrorResponse)
	DeleteProduct(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultProductRoute struct {
	ProductService ProductService
}

func NewProductRoute(productService ProductService) *DefaultProductRoute {
	return &DefaultProductRoute{ProductService: productService}
}

func (r *DefaultProductRoute) GetAllProducts(c echo.Context) error {
	products, apierr := r.ProductService.GetAllProducts(c.Request().Context())
	return respond(c, http.StatusOK, products, apierr)
}

func (r *DefaultProductRoute) GetProducts(c echo.Context) error {
	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.ProductService.GetProducts(c.Request().Context(), req)
	return respond(c, http.StatusOK, page, apierr)
}

func (r *DefaultProductRoute) Search(c echo.Context) error {
	name, perr := requireQueryParam(c, "name")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	products, apierr := r.ProductService.SearchProducts(c.Request().Context(), name)
	return respond(c, http.StatusOK, products, apierr)
}

func (r *DefaultProductRoute) SearchPage(c echo.Context) error {
	name, perr := requireQueryParam(c, "name")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.ProductService.SearchProductsPage(c.Request().Context(), name, req)
	return respond(c, http.StatusOK, page, apierr)
}

func (r *DefaultProductRoute) GetProduct(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	product, apierr := r.ProductService.GetProductByID(c.Request().Context(), id)
	return respond(c, http.StatusOK, product, apierr)
}

func (r *DefaultProductRoute) CreateProduct(c echo.Context) error {
	var req contract.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	product, apierr := r.ProductService.CreateProduct(c.Request().Context(), &req)
	return respond(c, http.StatusCreated, product, apierr)
}

func (r *DefaultProductRoute) UpdateProduct(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	product, apierr := r.ProductService.UpdateProduct(c.Request().Context(), id, &req)
	return respond(c, http.StatusOK, product, apierr)
}

func (r *DefaultProductRoute) DeleteProduct(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	return noContent(c, r.ProductService.DeleteProduct(c.Request().Context(), id))
}
