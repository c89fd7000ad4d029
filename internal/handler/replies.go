package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ForumApp/thread-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) repliesCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	threadIDString := strings.TrimSpace(c.Param("threadID"))
	threadID, err0 := strconv.ParseInt(threadIDString, 10, 64)

	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err1 := strconv.ParseInt(commentIDString, 10, 64)

	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	var input dto.CreateReplyDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdReply, err := h.services.Reply.Create(c.Request.Context(), user.ID, threadID, commentID, input.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{"addedReply": createdReply}))
}

func (h *Handler) repliesDelete(c *gin.Context) {
	user := h.getUserFromRequest(c)

	threadIDString := strings.TrimSpace(c.Param("threadID"))
	threadID, err0 := strconv.ParseInt(threadIDString, 10, 64)

	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err1 := strconv.ParseInt(commentIDString, 10, 64)

	replyIDString := strings.TrimSpace(c.Param("replyID"))
	replyID, err2 := strconv.ParseInt(replyIDString, 10, 64)

	if err0 != nil || err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidID.Error()))
		return
	}

	if err := h.services.Reply.Delete(c.Request.Context(), user.ID, threadID, commentID, replyID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}
