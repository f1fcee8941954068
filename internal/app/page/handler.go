package page

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexTemplate = "index.html"

type Handler interface {
	Index(c *gin.Context)
}

type handler struct {
	available bool
}

// NewHandler serves the page shell when its template was loaded into the
// engine, and a 404 otherwise.
func NewHandler(available bool) Handler {
	return &handler{available: available}
}

func (h *handler) Index(c *gin.Context) {
	if !h.available {
		c.String(http.StatusNotFound, "page not installed")
		return
	}
	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"APIBase": "/api/forum",
	})
}
