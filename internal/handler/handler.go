package handler

import (
	"context"
	"net/http"

	"github.com/ForumApp/thread-service/internal/dto"
	"github.com/ForumApp/thread-service/internal/model"
	"github.com/ForumApp/thread-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowCredentials: true,
	}))

	threads := r.Group("/threads")
	{
		threads.POST("", h.authMiddleware, h.threadsCreate)

		thread := threads.Group("/:threadID")
		{
			thread.GET("", h.threadsGetDetail)

			comments := thread.Group("/comments")
			{
				comments.POST("", h.authMiddleware, h.commentsCreate)

				comment := comments.Group("/:commentID")
				{
					comment.DELETE("", h.authMiddleware, h.commentsDelete)
					comment.PUT("/likes", h.authMiddleware, h.likesToggle)

					replies := comment.Group("/replies")
					{
						replies.POST("", h.authMiddleware, h.repliesCreate)
						replies.DELETE("/:replyID", h.authMiddleware, h.repliesDelete)
					}
				}
			}
		}
	}

	return r
}

func (h *Handler) getUserDataFromClaims(ctx context.Context, claims jwt.MapClaims) (*model.CachedUser, error) {
	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.UserCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}

// statusFromError maps the service error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch err {
	case service.ErrThreadNotFound, service.ErrCommentNotFound, service.ErrReplyNotFound, service.ErrLikeTargetNotFound:
		return http.StatusNotFound
	case service.ErrNotPermitted:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), dto.NewBasicResponse(false, err.Error()))
}
