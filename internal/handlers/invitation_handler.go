package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contala_backend/internal/middleware"
	"contala_backend/internal/services"
	"contala_backend/internal/services/dto"
)

type InvitationHandler struct {
	*BaseHandler
	invitationService services.InvitationService
}

func NewInvitationHandler(base *BaseHandler, invitationService services.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		BaseHandler:       base,
		invitationService: invitationService,
	}
}

func (h *InvitationHandler) RegisterRoutes(r *gin.RouterGroup) {
	invitations := r.Group("/invitations")
	invitations.Use(middleware.AuthMiddleware())
	{
		invitations.GET("", h.ListInvitations)
		invitations.POST("", h.CreateInvitation)
		invitations.GET("/:invitationId", h.GetInvitation)
		invitations.POST("/:invitationId/accept", h.AcceptInvitation)
		invitations.POST("/:invitationId/reject", h.RejectInvitation)
	}
}

func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.List(h.GetDB(c), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.invitationService.Create(h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.Get(h.GetDB(c), actor, c.Param("invitationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.Accept(h.GetDB(c), actor, c.Param("invitationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InvitationHandler) RejectInvitation(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.Reject(h.GetDB(c), actor, c.Param("invitationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
