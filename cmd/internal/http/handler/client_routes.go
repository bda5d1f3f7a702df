package handler

import (
	"context"
	"net/http"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/labstack/echo/v4"
)

type ClientService interface {
	GetClients(ctx context.Context, req paging.Request) (*paging.Page[*contract.ClientResponse], apierror.ErrorResponse)
	GetClientsByCooperative(ctx context.Context, cooperativeID int, req paging.Request) (*paging.Page[*contract.ClientResponse], apierror.ErrorResponse)
	GetClientByID(ctx context.Context, id int) (*contract.ClientResponse, apierror.ErrorResponse)
	GetClientByUUID(ctx context.Context, uuid string) (*contract.ClientResponse, apierror.ErrorResponse)
	CreateClient(ctx context.Context, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	UpdateClient(ctx context.Context, id int, req *contract.ClientRequest) (*contract.ClientResponse, apierror.ErrorResponse)
	DeleteClient(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultClientRoute struct {
	ClientService ClientService
}

func NewClientRoute(clientService ClientService) *DefaultClientRoute {
	return &DefaultClientRoute{ClientService: clientService}
}

func (r *DefaultClientRoute) GetClients(c echo.Context) error {
	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.ClientService.GetClients(c.Request().Context(), req)
	return respond(c, http.StatusOK, page, apierr)
}

func (r *DefaultClientRoute) GetClientsByCooperative(c echo.Context) error {
	coopID, perr := parseIntParam(c, "cooperativeId")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.ClientService.GetClientsByCooperative(c.Request().Context(), coopID, req)
	return respond(c, http.StatusOK, page, apierr)
}

func (r *DefaultClientRoute) GetClient(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	client, apierr := r.ClientService.GetClientByID(c.Request().Context(), id)
	return respond(c, http.StatusOK, client, apierr)
}

func (r *DefaultClientRoute) GetClientByUUID(c echo.Context) error {
	client, apierr := r.ClientService.GetClientByUUID(c.Request().Context(), c.Param("uuid"))
	return respond(c, http.StatusOK, client, apierr)
}

func (r *DefaultClientRoute) CreateClient(c echo.Context) error {
	var req contract.ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	client, apierr := r.ClientService.CreateClient(c.Request().Context(), &req)
	return respond(c, http.StatusCreated, client, apierr)
}

func (r *DefaultClientRoute) UpdateClient(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	client, apierr := r.ClientService.UpdateClient(c.Request().Context(), id, &req)
	return respond(c, http.StatusOK, client, apierr)
}

func (r *DefaultClientRoute) DeleteClient(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	return noContent(c, r.ClientService.DeleteClient(c.Request().Context(), id))
}
