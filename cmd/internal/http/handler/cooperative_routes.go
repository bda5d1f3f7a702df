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

type CooperativeService interface {
	GetAllCooperatives(ctx context.Context) ([]*contract.CooperativeResponse, apierror.ErrorResponse)
	GetCooperatives(ctx context.Context, req paging.Request) (*paging.Page[*contract.CooperativeResponse], apierror.ErrorResponse)
	SearchCooperatives(ctx context.Context, filter entity.CooperativeFilter) ([]*contract.CooperativeResponse, apierror.ErrorResponse)
	SearchCooperativesPage(ctx context.Context, filter entity.CooperativeFilter, req paging.Request) (*paging.Page[*contract.CooperativeResponse], apierror.ErrorResponse)
	GetCooperativeByID(ctx context.Context, id int) (*contract.CooperativeResponse, apierror.ErrorResponse)
	GetCooperativeByTaxCode(ctx context.Context, taxCode string) (*contract.CooperativeResponse, apierror.ErrorResponse)
	CreateCooperative(ctx context.Context, req *contract.CooperativeRequest) (*contract.CooperativeResponse, apierror.ErrorResponse)
	UpdateCooperative(ctx context.Context, id int, req *contract.CooperativeRequest) (*contract.CooperativeResponse, apierror.ErrorResponse)
	DeleteCooperative(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultCooperativeRoute struct {
	CooperativeService CooperativeService
}

func NewCooperativeRoute(coopService CooperativeService) *DefaultCooperativeRoute {
	return &DefaultCooperativeRoute{CooperativeService: coopService}
}

func (r *DefaultCooperativeRoute) GetAllCooperatives(c echo.Context) error {
	coops, apierr := r.CooperativeService.GetAllCooperatives(c.Request().Context())
	return respond(c, http.StatusOK, coops, apierr)
}

func (r *DefaultCooperativeRoute) GetCooperatives(c echo.Context) error {
	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.CooperativeService.GetCooperatives(c.Request().Context(), req)
	return respond(c, http.StatusOK, page, apierr)
}

func (r *DefaultCooperativeRoute) GetCooperative(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	coop, apierr := r.CooperativeService.GetCooperativeByID(c.Request().Context(), id)
	return respond(c, http.StatusOK, coop, apierr)
}

func (r *DefaultCooperativeRoute) GetCooperativeByTaxCode(c echo.Context) error {
	coop, apierr := r.CooperativeService.GetCooperativeByTaxCode(c.Request().Context(), c.Param("taxCode"))
	return respond(c, http.StatusOK, coop, apierr)
}

// Search lists cooperatives matching the path filters and the optional name query.
func (r *DefaultCooperativeRoute) Search(c echo.Context) error {
	filter, perr := cooperativeFilter(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	coops, apierr := r.CooperativeService.SearchCooperatives(c.Request().Context(), filter)
	return respond(c, http.StatusOK, coops, apierr)
}

// SearchByName is Search with a mandatory name query parameter.
func (r *DefaultCooperativeRoute) SearchByName(c echo.Context) error {
	if _, perr := requireQueryParam(c, "name"); perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	return r.Search(c)
}

func (r *DefaultCooperativeRoute) SearchByNamePage(c echo.Context) error {
	if _, perr := requireQueryParam(c, "name"); perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	return r.SearchPage(c)
}

func (r *DefaultCooperativeRoute) SearchPage(c echo.Context) error {
	filter, perr := cooperativeFilter(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.CooperativeService.SearchCooperativesPage(c.Request().Context(), filter, req)
	return respond(c, http.StatusOK, page, apierr)
}

func (r *DefaultCooperativeRoute) CreateCooperative(c echo.Context) error {
	var req contract.CooperativeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	coop, apierr := r.CooperativeService.CreateCooperative(c.Request().Context(), &req)
	return respond(c, http.StatusCreated, coop, apierr)
}

func (r *DefaultCooperativeRoute) UpdateCooperative(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.CooperativeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	coop, apierr := r.CooperativeService.UpdateCooperative(c.Request().Context(), id, &req)
	return respond(c, http.StatusOK, coop, apierr)
}

func (r *DefaultCooperativeRoute) DeleteCooperative(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	return noContent(c, r.CooperativeService.DeleteCooperative(c.Request().Context(), id))
}

// cooperativeFilter collects whichever of the city, state and active path
// params the matched route declares, plus the name query param.
func cooperativeFilter(c echo.Context) (entity.CooperativeFilter, *apierror.APIError) {
	filter := entity.CooperativeFilter{
		Name:  c.QueryParam("name"),
		City:  c.Param("city"),
		State: c.Param("state"),
	}

	if c.Param("active") != "" {
		active, perr := parseBoolParam(c, "active")
		if perr != nil {
			return filter, perr
		}
		filter.Active = &active
	}
	return filter, nil
}
