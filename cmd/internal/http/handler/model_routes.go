package handler

import (
	"context"
	"net/http"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/domain/entity"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/labstack/echo/v4"
)

type ModelService interface {
	GetModels(ctx context.Context, req paging.Request) (*paging.Page[*contract.ModelResponse], apierror.ErrorResponse)
	GetModelsByCategory(ctx context.Context, category entity.ModelCategory, req paging.Request) (*paging.Page[*contract.ModelResponse], apierror.ErrorResponse)
	GetModelByID(ctx context.Context, id int) (*contract.ModelResponse, apierror.ErrorResponse)
	CreateModel(ctx context.Context, req *contract.ModelRequest) (*contract.ModelResponse, apierror.ErrorResponse)
	UpdateModel(ctx context.Context, id int, req *contract.ModelRequest) (*contract.ModelResponse, apierror.ErrorResponse)
	DeleteModel(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultModelRoute struct {
	ModelService ModelService
}

func NewModelRoute(modelService ModelService) *DefaultModelRoute {
	return &DefaultModelRoute{ModelService: modelService}
}

func (r *DefaultModelRoute) GetModels(c echo.Context) error {
	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.ModelService.GetModels(c.Request().Context(), req)
	return respond(c, http.StatusOK, page, apierr)
}

// GetModelsOf builds a handler paging through a single category.
func (r *DefaultModelRoute) GetModelsOf(category entity.ModelCategory) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, perr := parsePaging(c)
		if perr != nil {
			return c.JSON(perr.Code(), perr)
		}

		page, apierr := r.ModelService.GetModelsByCategory(c.Request().Context(), category, req)
		return respond(c, http.StatusOK, page, apierr)
	}
}

func (r *DefaultModelRoute) GetModel(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	model, apierr := r.ModelService.GetModelByID(c.Request().Context(), id)
	return respond(c, http.StatusOK, model, apierr)
}

func (r *DefaultModelRoute) CreateModel(c echo.Context) error {
	var req contract.ModelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	model, apierr := r.ModelService.CreateModel(c.Request().Context(), &req)
	return respond(c, http.StatusCreated, model, apierr)
}

func (r *DefaultModelRoute) UpdateModel(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.ModelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	model, apierr := r.ModelService.UpdateModel(c.Request().Context(), id, &req)
	return respond(c, http.StatusOK, model, apierr)
}

func (r *DefaultModelRoute) DeleteModel(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	return noContent(c, r.ModelService.DeleteModel(c.Request().Context(), id))
}
