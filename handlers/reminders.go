package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"clubhub/services/reminder"
	"clubhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// runDeadline bounds one HTTP-triggered reminder run.
const runDeadline = 2 * time.Minute

// ReminderHandler exposes the reminder engine trigger.
type ReminderHandler struct {
	Engine reminder.Runner
}

func NewReminderHandler(engine reminder.Runner) *ReminderHandler {
	return &ReminderHandler{Engine: engine}
}

// RunRemindersHandler handles POST /api/reminders/run. No body is required;
// the external scheduler simply POSTs here on its cadence.
func (h *ReminderHandler) RunRemindersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(c.Request.Context(), runDeadline)
	defer cancel()

	result, err := h.Engine.Run(ctx, time.Now())
	if err != nil {
		logger.Error("Reminder run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := fmt.Sprintf("Inspected %d events, %d due, sent %d of %d reminders",
		result.CandidateEvents, result.DueEvents, result.Sent, result.Attempted)
	if len(result.Failures) > 0 {
		message = fmt.Sprintf("%s (%d failed)", message, len(result.Failures))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"notificationsSent": result.Sent,
		"message":           message,
	})
}
