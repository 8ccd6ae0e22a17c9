package response

import (
	"errors"
	"net/http"

	"payout-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the envelope returned for every failed request. Every
// response, success or failure, carries success and message.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK sends a 200 response. The payload carries its own success/message
// fields so the wire shape stays flat.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500 with a generic message so
// internal detail never reaches the caller.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorBody{
			Success: false,
			Message: appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		Success: false,
		Message: "Internal server error",
	})
}
