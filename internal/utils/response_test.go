package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"forum/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{"validation", apperr.Validation("body required"), http.StatusBadRequest, `{"error":"body required"}`, false},
		{"not found", apperr.NotFound("thread not found"), http.StatusNotFound, `{"error":"thread not found"}`, false},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperr.NotFound("thread not found")), http.StatusNotFound, `{"error":"thread not found"}`, false},
		{"plain error", errors.New("disk I/O error"), http.StatusInternalServerError, `{"error":"internal server error"}`, true},
		{"internal kind", apperr.Internal("boom", errors.New("x")), http.StatusInternalServerError, `{"error":"internal server error"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.wantLogged, len(c.Errors) > 0)
		})
	}
}
