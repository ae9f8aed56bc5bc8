package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contala_backend/internal/middleware"
	"contala_backend/internal/services"
	"contala_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService   services.UserService
	reviewService services.ReviewService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, reviewService services.ReviewService) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		userService:   userService,
		reviewService: reviewService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	creators := r.Group("/creators")
	{
		creators.GET("", h.ListCreators)
		creators.GET("/:creatorId", h.GetCreator)
		creators.GET("/:creatorId/reviews", h.GetCreatorReviews)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.PUT("/me", h.UpdateMe)
	}
}

func (h *UserHandler) ListCreators(c *gin.Context) {
	var query dto.CreatorListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.userService.ListCreators(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetCreator(c *gin.Context) {
	resp, err := h.userService.GetCreator(h.GetDB(c), c.Param("creatorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetCreatorReviews(c *gin.Context) {
	resp, err := h.reviewService.ListByCreator(h.GetDB(c), c.Param("creatorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateMe(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
