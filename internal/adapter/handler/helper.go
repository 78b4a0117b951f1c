package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-planner/pkg/validator"
)

// getRequestID reads the id assigned by the request id middleware, falling
// back to the one sent by the client
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data with status and logs the response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}
	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging. The raw cause of an
// AppError is logged and never sent to the client.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		level := logger.Warn
		if appErr.HTTPCode >= http.StatusInternalServerError {
			level = logger.Error
		}
		level("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code.String(),
	})
}

// bindAndValidate decodes the JSON body into req and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(validator.Describe(err))
	}
	return nil
}

// HTTPErrorHandler renders errors raised outside handlers, such as unknown
// routes, with the common error body
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if stdErrors.As(err, &httpErr) {
			status := httpErr.Code
			body := common.ErrorResponse{Error: http.StatusText(status)}
			switch status {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				status = http.StatusNotFound
				body = common.ErrorResponse{Error: "Not found", Code: errors.ErrorCode_NOT_FOUND.String()}
			case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
				body.Code = errors.ErrorCode_INVALID_PAYLOAD.String()
			}
			if c.Request().Method == http.MethodHead {
				_ = c.NoContent(status)
				return
			}
			_ = c.JSON(status, body)
			return
		}

		_ = HandleError(logger, c, err)
	}
}
