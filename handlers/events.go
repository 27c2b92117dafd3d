package handlers

import (
	"net/http"
	"time"

	eventRepo "clubhub/database/repository/event"
	"clubhub/models"
	"clubhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventHandler exposes calendar event CRUD.
type EventHandler struct {
	Repo eventRepo.EventRepository
}

func NewEventHandler(repo eventRepo.EventRepository) *EventHandler {
	return &EventHandler{Repo: repo}
}

type eventRequest struct {
	Title        string     `json:"title" binding:"required"`
	Date         *time.Time `json:"date"`
	Type         string     `json:"type"`
	Urgency      string     `json:"urgency"`
	Description  string     `json:"description"`
	ReminderTime int        `json:"reminderTime"`
}

func validUrgency(u string) bool {
	switch u {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
		return true
	}
	return false
}

// ListEventsHandler handles GET /api/events.
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	events, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("Failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventHandler handles GET /api/events/:id.
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	event, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Event not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEventHandler handles POST /api/events (admin only).
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReminderTime < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reminderTime must not be negative"})
		return
	}
	if req.Urgency == "" {
		req.Urgency = models.UrgencyMedium
	}
	if !validUrgency(req.Urgency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urgency must be low, medium or high"})
		return
	}

	event := &models.Event{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Date:         req.Date,
		Type:         req.Type,
		Urgency:      req.Urgency,
		Description:  req.Description,
		ReminderTime: req.ReminderTime,
	}
	if err := h.Repo.Create(event); err != nil {
		logger.Error("Failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEventHandler handles PUT /api/events/:id (admin only).
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	existing, err := h.Repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ReminderTime < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reminderTime must not be negative"})
		return
	}
	if req.Urgency != "" && !validUrgency(req.Urgency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "urgency must be low, medium or high"})
		return
	}

	existing.Title = req.Title
	existing.Date = req.Date
	existing.Type = req.Type
	if req.Urgency != "" {
		existing.Urgency = req.Urgency
	}
	existing.Description = req.Description
	existing.ReminderTime = req.ReminderTime

	if err := h.Repo.Update(existing); err != nil {
		logger.Error("Failed to update event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DeleteEventHandler handles DELETE /api/events/:id (admin only).
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Failed to delete event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
