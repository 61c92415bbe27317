package handler

import (
	"RobloxHelper_Service/internal/prc-gateway/api/dto/response"
	apperrors "RobloxHelper_Service/internal/prc-gateway/errors"
	"RobloxHelper_Service/pkg/prc"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// parseServerID writes a 400 and returns false when :id is not a positive integer.
func parseServerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid server id",
		})
		return 0, false
	}
	return id, true
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindJSON writes a 400 and returns false when the body is invalid.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

// writeError maps client and store failures onto gateway responses.
func writeError(c *gin.Context, l Logger, err error, errDescription string) {
	var failure *prc.ResponseFailure
	var transportErr *prc.TransportError
	switch {
	case errors.Is(err, prc.ErrServerLinkNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: prc.ErrServerLinkNotFound.Error(),
		})
	case errors.Is(err, apperrors.ErrServerAlreadyLinked):
		c.JSON(http.StatusConflict, response.Response{
			Message: "Server already linked",
		})
	case errors.As(err, &failure):
		status := http.StatusBadGateway
		if failure.Code == http.StatusTooManyRequests {
			status = http.StatusTooManyRequests
		}
		l.LoggingError(c, err, errDescription, zap.WarnLevel)
		c.JSON(status, response.PRCErrorResponse{
			Message: failure.Detail,
			Code:    failure.Code,
			Data:    failure.Data,
		})
	case errors.As(err, &transportErr):
		l.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusBadGateway, response.Response{
			Message: "Problem reaching PRC API",
		})
	default:
		l.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal Server Error",
		})
	}
}
