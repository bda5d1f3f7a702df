package handler

import (
	"context"
	"net/http"

	"fleetdesk/cmd/internal/contract"
	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/labstack/echo/v4"
)

type EquipmentService interface {
	GetEquipment(ctx context.Context, req paging.Request) (*paging.Page[*contract.EquipmentResponse], apierror.ErrorResponse)
	GetEquipmentByID(ctx context.Context, id int) (*contract.EquipmentResponse, apierror.ErrorResponse)
	CreateEquipment(ctx context.Context, req *contract.EquipmentRequest) (*contract.EquipmentResponse, apierror.ErrorResponse)
	UpdateEquipment(ctx context.Context, id int, req *contract.EquipmentRequest) (*contract.EquipmentResponse, apierror.ErrorResponse)
	DeleteEquipment(ctx context.Context, id int) apierror.ErrorResponse
}

type DefaultEquipmentRoute struct {
	EquipmentService EquipmentService
}

func NewEquipmentRoute(equipService EquipmentService) *DefaultEquipmentRoute {
	return &DefaultEquipmentRoute{EquipmentService: equipService}
}

func (r *DefaultEquipmentRoute) GetEquipmentPage(c echo.Context) error {
	req, perr := parsePaging(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := r.EquipmentService.GetEquipment(c.Request().Context(), req)
	return respond(c, http.StatusOK, page, apierr)
}

func (r *DefaultEquipmentRoute) GetEquipment(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	equip, apierr := r.EquipmentService.GetEquipmentByID(c.Request().Context(), id)
	return respond(c, http.StatusOK, equip, apierr)
}

func (r *DefaultEquipmentRoute) CreateEquipment(c echo.Context) error {
	var req contract.EquipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	equip, apierr := r.EquipmentService.CreateEquipment(c.Request().Context(), &req)
	return respond(c, http.StatusCreated, equip, apierr)
}

func (r *DefaultEquipmentRoute) UpdateEquipment(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.EquipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	equip, apierr := r.EquipmentService.UpdateEquipment(c.Request().Context(), id, &req)
	return respond(c, http.StatusOK, equip, apierr)
}

func (r *DefaultEquipmentRoute) DeleteEquipment(c echo.Context) error {
	id, perr := parseIntParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}
	return noContent(c, r.EquipmentService.DeleteEquipment(c.Request().Context(), id))
}
