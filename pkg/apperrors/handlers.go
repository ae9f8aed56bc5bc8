package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an error to the gin response with its mapped HTTP code.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode == 0 {
		appErr.HTTPCode = http.StatusInternalServerError
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
