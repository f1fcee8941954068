package thread

import (
	"net/http"
	"strconv"

	"forum/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetThreads(c *gin.Context)
	CreateThread(c *gin.Context)
	GetThreadByID(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary List threads
// @Description All threads with post counts, most recently active first
// @Tags Forum
// @Produce json
// @Success 200 {array} SummaryResponse
// @Router /threads [get]
func (h *handler) GetThreads(c *gin.Context) {
	threads, err := h.service.GetThreads(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSummaryResponses(threads))
}

// @Summary Create a thread
// @Description Create a thread together with its opening post. A blank author is stored as "Anon".
// @Tags Forum
// @Accept json
// @Produce json
// @Param request body CreateThreadRequest true "Thread title and opening post"
// @Success 201 {object} ThreadResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /threads [post]
func (h *handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, ErrTitleAndBodyRequired)
		return
	}

	thread, err := h.service.CreateThread(c.Request.Context(), req.Title, req.Body, req.Author)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewThreadResponse(thread))
}

// @Summary Get a thread
// @Description A thread with all of its posts, oldest first
// @Tags Forum
// @Produce json
// @Param id path int true "Thread ID"
// @Success 200 {object} ThreadResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /threads/{id} [get]
func (h *handler) GetThreadByID(c *gin.Context) {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid thread ID"})
		return
	}

	thread, err := h.service.GetThreadByID(c.Request.Context(), threadID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewThreadResponse(thread))
}
