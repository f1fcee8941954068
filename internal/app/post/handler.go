package post

import (
	"net/http"
	"strconv"

	"forum/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreatePost(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Reply to a thread
// @Description Append a post to an existing thread. A blank author is stored as "Anon".
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path int true "Thread ID"
// @Param request body CreatePostRequest true "Post body"
// @Success 201 {object} PostResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /threads/{id}/posts [post]
func (h *handler) CreatePost(c *gin.Context) {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid thread ID"})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, ErrBodyRequired)
		return
	}

	p, err := h.service.AddPost(c.Request.Context(), threadID, req.Body, req.Author)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPostResponse(p))
}
