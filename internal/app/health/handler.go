package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Ping(c *gin.Context)
	Check(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Ping answers liveness probes with a plain "ok".
func (h *handler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// @Summary Health check
// @Description Check the health status of the application and its store
// @Tags Health
// @Produce json
// @Success 200 {object} utils.HealthStatus
// @Failure 503 {object} utils.HealthStatus
// @Router /api/health [get]
func (h *handler) Check(c *gin.Context) {
	status := h.service.Check(c.Request.Context())
	if status.Status == "healthy" {
		c.JSON(http.StatusOK, status)
	} else {
		c.JSON(http.StatusServiceUnavailable, status)
	}
}
