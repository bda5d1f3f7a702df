package middleware

import (
	"errors"
	"net/http"
	"time"

	"fleetdesk/cmd/internal/metrics"

	"github.com/labstack/echo/v4"
)

// NewMetricsMiddleware records count and latency of every request under its route template.
func NewMetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			m.ObserveRequest(routeOf(c), c.Request().Method, statusOf(c, err), time.Since(start))
			return err
		}
	}
}

func routeOf(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}
	return "unmatched"
}

// statusOf reports the status the client will see. Errors are rendered
// after the middleware chain returns, so their code is not written yet.
func statusOf(c echo.Context, err error) int {
	var he *echo.HTTPError
	if err != nil && errors.As(err, &he) {
		return he.Code
	}

	if err != nil && !c.Response().Committed {
		return http.StatusInternalServerError
	}
	return c.Response().Status
}
