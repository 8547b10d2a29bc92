package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-notes/internal/usecase/auth"
)

// getRequestID reads the request id set by the client or the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes body with 200 using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, body interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, body)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	return HandleErrorWith(logger, c, err, nil)
}

// HandleErrorWith renders err and merges extra fields into the body, e.g.
// an empty action list for the action relay
func HandleErrorWith(logger *zap.Logger, c echo.Context, err error, extra map[string]interface{}) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		for k, v := range appErr.Details {
			fields = append(fields, zap.String("detail."+k, v))
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	body := ToErrorResponse(appErr)
	if len(extra) == 0 {
		return c.JSON(appErr.HTTPCode, body)
	}

	merged := map[string]interface{}{
		"error": body.Error,
		"code":  body.Code,
	}
	if body.Details != "" {
		merged["details"] = body.Details
	}
	if body.Hint != "" {
		merged["hint"] = body.Hint
	}
	for k, v := range extra {
		merged[k] = v
	}
	return c.JSON(appErr.HTTPCode, merged)
}

// ToErrorResponse maps an AppError to the wire shape. Raw causes of internal
// and database errors are logged, never returned.
func ToErrorResponse(appErr errors.AppError) common.ErrorResponse {
	body := common.ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code.String(),
		Hint:  appErr.Hint,
	}
	switch appErr.Code {
	case errors.ErrorCode_INTERNAL, errors.ErrorCode_DB_QUERY_FAILED:
		return body
	}
	if d, ok := appErr.Details["details"]; ok {
		body.Details = d
	} else if appErr.Raw != nil {
		body.Details = appErr.Raw.Error()
	}
	return body
}

// principal returns the authenticated caller or an unauthenticated error
func principal(c echo.Context) (*auth.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, errors.ErrUnauthenticated()
	}
	return p, nil
}

// NewHTTPErrorHandler is the last-resort error renderer for errors returned
// by middleware or unmatched routes
func NewHTTPErrorHandler(logger *zap.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr errors.AppError
		if stdErrors.As(err, &appErr) {
			_ = HandleError(logger, c, err)
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) && he.Code < http.StatusInternalServerError {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok && s != "" {
				msg = s
			}
			if c.Request().Method == http.MethodHead {
				_ = c.NoContent(he.Code)
				return
			}
			_ = c.JSON(he.Code, common.ErrorResponse{Error: msg})
			return
		}

		if logger != nil {
			logger.Error("http.unhandled_error",
				zap.String("request_id", getRequestID(c)),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}
		message := "An error occurred"
		if !production {
			message = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Error:   "Internal server error",
			Message: message,
		})
	}
}
