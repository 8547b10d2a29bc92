package middleware

import (
	stdErrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/metrics"
)

// EchoMetrics records request counts and latency per route template
func EchoMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusOf(c, err))).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// statusOf predicts the status an error will be rendered with when the
// response has not been committed yet
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.HTTPCode
	}
	var he *echo.HTTPError
	if stdErrors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
