package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ForumApp/thread-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	threadIDString := strings.TrimSpace(c.Param("threadID"))
	threadID, err := strconv.ParseInt(threadIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidThreadID.Error()))
		return
	}

	var input dto.CreateCommentDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), user.ID, threadID, input.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"addedComment": createdComment}))
}

func (h *Handler) commentsDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	threadIDString := strings.TrimSpace(c.Param("threadID"))
	threadID, err0 := strconv.ParseInt(threadIDString, 10, 64)

	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err1 := strconv.ParseInt(commentIDString, 10, 64)

	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), user.ID, threadID, commentID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}
