package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fleetdesk/cmd/internal/utils/apierror"
	"fleetdesk/cmd/internal/utils/paging"

	"github.com/labstack/echo/v4"
)

func parseIntParam(c echo.Context, name string) (int, *apierror.APIError) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError(name, "int")
	}
	return v, nil
}

func parseBoolParam(c echo.Context, name string) (bool, *apierror.APIError) {
	v, err := strconv.ParseBool(c.Param(name))
	if err != nil {
		return false, apierror.NewInvalidParamTypeError(name, "bool")
	}
	return v, nil
}

// parsePaging reads page, size, sortBy and direction from the query string.
// Absent values fall back to the paging defaults.
func parsePaging(c echo.Context) (paging.Request, *apierror.APIError) {
	page := paging.DefaultPage
	size := paging.DefaultSize
	var sortBy, direction string

	err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("size", &size).
		String("sortBy", &sortBy).
		String("direction", &direction).
		BindError()

	if err != nil {
		var berr *echo.BindingError
		if errors.As(err, &berr) {
			return paging.Request{}, apierror.NewInvalidParamTypeError(berr.Field, "int")
		}
		return paging.Request{}, apierror.ValidationFailed("Invalid paging parameters")
	}
	return paging.Normalize(&page, &size, sortBy, direction), nil
}

func respond(c echo.Context, status int, body any, apierr apierror.ErrorResponse) error {
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(status, body)
}

func noContent(c echo.Context, apierr apierror.ErrorResponse) error {
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func requireQueryParam(c echo.Context, name string) (string, *apierror.APIError) {
	value := c.QueryParam(name)
	if strings.TrimSpace(value) == "" {
		return "", apierror.ValidationFailed("Query parameter '%s' is required", name)
	}
	return value, nil
}
