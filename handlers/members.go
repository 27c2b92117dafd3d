package handlers

import (
	"net/http"

	memberRepo "clubhub/database/repository/member"
	"clubhub/models"
	"clubhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemberHandler exposes member profile endpoints. Sign-in and sign-up live
// in the external auth service; this surface only manages profile records.
type MemberHandler struct {
	Repo memberRepo.MemberRepository
}

func NewMemberHandler(repo memberRepo.MemberRepository) *MemberHandler {
	return &MemberHandler{Repo: repo}
}

// ListMembersHandler handles GET /api/members (admin only).
func (h *MemberHandler) ListMembersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	members, err := h.Repo.GetAll()
	if err != nil {
		logger.Error("Failed to list members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMeHandler handles GET /api/members/me.
func (h *MemberHandler) GetMeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := c.Get("memberID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing member identity"})
		return
	}
	member, err := h.Repo.GetByID(id.(string))
	if err != nil {
		logger.Error("Member not found", zap.Any("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

type memberUpdateRequest struct {
	Name     string                 `json:"name"`
	Major    string                 `json:"major"`
	Settings *models.MemberSettings `json:"settings"`
}

// UpdateMeHandler handles PUT /api/members/me. Only display fields and the
// notification settings are writable; the admin flag is not.
func (h *MemberHandler) UpdateMeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := c.Get("memberID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing member identity"})
		return
	}

	member, err := h.Repo.GetByID(id.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req memberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid member payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Major != "" {
		member.Major = req.Major
	}
	if req.Settings != nil {
		member.Settings = req.Settings
	}

	if err := h.Repo.Update(member); err != nil {
		logger.Error("Failed to update member", zap.Any("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

type memberCreateRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	Major string `json:"major"`
	Admin bool   `json:"admin"`
}

// CreateMemberHandler handles POST /api/members (admin only). Used to
// provision profile records for accounts created in the auth service.
func (h *MemberHandler) CreateMemberHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req memberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid member payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Repo.GetByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A member with this email already exists"})
		return
	}

	member := &models.Member{
		ID:    uuid.New().String(),
		Email: req.Email,
		Name:  req.Name,
		Major: req.Major,
		Admin: req.Admin,
	}
	if err := h.Repo.Create(member); err != nil {
		logger.Error("Failed to create member", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// DeleteMemberHandler handles DELETE /api/members/:id (admin only).
func (h *MemberHandler) DeleteMemberHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		logger.Error("Failed to delete member", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
