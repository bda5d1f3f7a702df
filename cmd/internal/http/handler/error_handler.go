package handler

import (
	"errors"
	"net/http"

	"fleetdesk/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// HTTPErrorHandler renders errors that escape the handlers, such as unknown
// routes or methods, in the same shape as the domain errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	apierr := apierror.InternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		apierr = apierror.NewSimple(he.Code, "%v", he.Message)
	} else {
		log.Errorf("unhandled error on %s %s: %v", c.Request().Method, c.Path(), err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(apierr.Code())
	} else {
		err = c.JSON(apierr.Code(), apierr)
	}

	if err != nil {
		log.Errorf("failed to write error response: %v", err)
	}
}
