package utils

import (
	"errors"
	"net/http"

	"forum/internal/apperr"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes err as {"error": message}. Validation and not-found
// errors expose their message; anything else is recorded on the context for
// the access log and answered with a generic 500.
func RespondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Kind != apperr.KindInternal {
		c.JSON(appErr.StatusCode(), ErrorResponse{Error: appErr.Message})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
