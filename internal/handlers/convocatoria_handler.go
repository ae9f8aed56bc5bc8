package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contala_backend/internal/middleware"
	"contala_backend/internal/services"
	"contala_backend/internal/services/dto"
)

type ConvocatoriaHandler struct {
	*BaseHandler
	convocatoriaService services.ConvocatoriaService
}

func NewConvocatoriaHandler(base *BaseHandler, convocatoriaService services.ConvocatoriaService) *ConvocatoriaHandler {
	return &ConvocatoriaHandler{
		BaseHandler:         base,
		convocatoriaService: convocatoriaService,
	}
}

func (h *ConvocatoriaHandler) RegisterRoutes(r *gin.RouterGroup) {
	convocatorias := r.Group("/convocatorias")
	convocatorias.Use(middleware.AuthMiddleware())
	{
		convocatorias.GET("", h.ListConvocatorias)
		convocatorias.POST("", h.CreateConvocatoria)
		convocatorias.GET("/:convocatoriaId", h.GetConvocatoria)
		convocatorias.PUT("/:convocatoriaId", h.UpdateConvocatoria)
		convocatorias.GET("/:convocatoriaId/applications", h.ListApplications)
	}
}

func (h *ConvocatoriaHandler) ListConvocatorias(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.convocatoriaService.List(h.GetDB(c), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConvocatoriaHandler) CreateConvocatoria(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateConvocatoriaRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.convocatoriaService.Create(h.GetDB(c), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ConvocatoriaHandler) GetConvocatoria(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.convocatoriaService.Get(h.GetDB(c), actor, c.Param("convocatoriaId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConvocatoriaHandler) UpdateConvocatoria(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateConvocatoriaRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.convocatoriaService.Update(h.GetDB(c), actor, c.Param("convocatoriaId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConvocatoriaHandler) ListApplications(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	resp, err := h.convocatoriaService.ListApplications(h.GetDB(c), actor, c.Param("convocatoriaId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
