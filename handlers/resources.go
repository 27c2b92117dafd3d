package handlers

import (
	"net/http"

	resourceRepo "clubhub/database/repository/resource"
	"clubhub/models"
	"clubhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceHandler exposes the shared resource library.
type ResourceHandler struct {
	Repo resourceRepo.ResourceRepository
}

func NewResourceHandler(repo resourceRepo.ResourceRepository) *ResourceHandler {
	return &ResourceHandler{Repo: repo}
}

type resourceRequest struct {
	Title       string `json:"title" binding:"required"`
	URL         string `json:"url" binding:"required,url"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ListResourcesHandler handles GET /api/resources.
func (h *ResourceHandler) ListResourcesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	resources, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("Failed to list resources", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// GetResourceHandler handles GET /api/resources/:id.
func (h *ResourceHandler) GetResourceHandler(c *gin.Context) {
	id := c.Param("id")
	resource, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resource)
}

// CreateResourceHandler handles POST /api/resources (admin only).
func (h *ResourceHandler) CreateResourceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid resource payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource := &models.Resource{
		ID:          uuid.New().String(),
		Title:       req.Title,
		URL:         req.URL,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.Repo.Create(resource); err != nil {
		logger.Error("Failed to create resource", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resource)
}

// UpdateResourceHandler handles PUT /api/resources/:id (admin only).
func (h *ResourceHandler) UpdateResourceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	existing, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid resource payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.Title = req.Title
	existing.URL = req.URL
	existing.Category = req.Category
	existing.Description = req.Description

	if err := h.Repo.Update(existing); err != nil {
		logger.Error("Failed to update resource", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DeleteResourceHandler handles DELETE /api/resources/:id (admin only).
func (h *ResourceHandler) DeleteResourceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Failed to delete resource", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted"})
}
