package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eprocure-backend/internal/dto"
	"eprocure-backend/internal/middleware"
	"eprocure-backend/internal/models"
	"eprocure-backend/internal/service"
)

// ProjectHandler exposes project CRUD and the dashboard statistics over REST.
type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// RegisterRoutes mounts the project endpoints on the given group.
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/statistics", h.Statistics)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if violations := req.Validate(); violations != nil {
		handleError(c, &models.ValidationError{Fields: violations})
		return
	}

	project, err := h.svc.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		handleError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Project created successfully", project)
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		respondError(c, http.StatusBadRequest, "Invalid page parameter")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		respondError(c, http.StatusBadRequest, "Invalid size parameter")
		return
	}

	var status *models.ProjectStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := models.ParseProjectStatus(raw)
		if !ok {
			respondError(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		status = &parsed
	}

	result, err := h.svc.List(c.Request.Context(), page, size, status)
	if err != nil {
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "Success", result)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "Success", project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if violations := req.Validate(); violations != nil {
		handleError(c, &models.ValidationError{Fields: violations})
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, middleware.Actor(c), req)
	if err != nil {
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "Project updated successfully", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "Project deleted successfully", nil)
}

func (h *ProjectHandler) Statistics(c *gin.Context) {
	stats, err := h.svc.Statistics(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, "Success", stats)
}

func projectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project id")
		return uuid.Nil, false
	}
	return id, true
}
