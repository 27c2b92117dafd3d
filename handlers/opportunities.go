package handlers

import (
	"net/http"
	"time"

	opportunityRepo "clubhub/database/repository/opportunity"
	"clubhub/models"
	"clubhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OpportunityHandler exposes the opportunity board.
type OpportunityHandler struct {
	Repo opportunityRepo.OpportunityRepository
}

func NewOpportunityHandler(repo opportunityRepo.OpportunityRepository) *OpportunityHandler {
	return &OpportunityHandler{Repo: repo}
}

type opportunityRequest struct {
	Title        string     `json:"title" binding:"required"`
	Organization string     `json:"organization" binding:"required"`
	Deadline     *time.Time `json:"deadline"`
	Link         string     `json:"link"`
	Description  string     `json:"description"`
}

// ListOpportunitiesHandler handles GET /api/opportunities.
func (h *OpportunityHandler) ListOpportunitiesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	opportunities, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("Failed to list opportunities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opportunities)
}

// GetOpportunityHandler handles GET /api/opportunities/:id.
func (h *OpportunityHandler) GetOpportunityHandler(c *gin.Context) {
	id := c.Param("id")
	opp, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opp)
}

// CreateOpportunityHandler handles POST /api/opportunities (admin only).
func (h *OpportunityHandler) CreateOpportunityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req opportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid opportunity payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opp := &models.Opportunity{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Organization: req.Organization,
		Deadline:     req.Deadline,
		Link:         req.Link,
		Description:  req.Description,
	}
	if err := h.Repo.Create(opp); err != nil {
		logger.Error("Failed to create opportunity", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, opp)
}

// UpdateOpportunityHandler handles PUT /api/opportunities/:id (admin only).
func (h *OpportunityHandler) UpdateOpportunityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	existing, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req opportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid opportunity payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.Title = req.Title
	existing.Organization = req.Organization
	existing.Deadline = req.Deadline
	existing.Link = req.Link
	existing.Description = req.Description

	if err := h.Repo.Update(existing); err != nil {
		logger.Error("Failed to update opportunity", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DeleteOpportunityHandler handles DELETE /api/opportunities/:id (admin only).
func (h *OpportunityHandler) DeleteOpportunityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Failed to delete opportunity", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Opportunity deleted"})
}
