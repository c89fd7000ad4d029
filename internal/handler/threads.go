package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ForumApp/thread-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) threadsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreateThreadDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdThread, err := h.services.Thread.Create(c.Request.Context(), user.ID, input.Title, input.Body)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"addedThread": createdThread}))
}

func (h *Handler) threadsGetDetail(c *gin.Context) {
	threadIDString := strings.TrimSpace(c.Param("threadID"))
	threadID, err := strconv.ParseInt(threadIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidThreadID.Error()))
		return
	}

	thread, err := h.services.Thread.FindDetail(c.Request.Context(), threadID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"thread": thread}))
}
