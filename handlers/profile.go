package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"darshanam/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes the devotee profile view-model.
type ProfileHandler struct {
	Svc    profile.ProfileService
	Logger *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(svc profile.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// GetMyProfileHandler returns the authenticated devotee's profile.
func (h *ProfileHandler) GetMyProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to load profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetPublicProfileHandler returns any devotee's public profile by id.
func (h *ProfileHandler) GetPublicProfileHandler(c *gin.Context) {
	userID := c.Param("id")
	view, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to load public profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// SaveProfileHandler upserts the devotee's profile. Backend rejections carry
// the backend's literal error text so the devotee can quote it to support.
func (h *ProfileHandler) SaveProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input profile.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.Save(c.Request.Context(), tokenFromCtx(c), userID, input)
	if err != nil {
		h.Logger.Error("profile save failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Save failed: " + err.Error()})
		return
	}

	message := "Profile saved"
	if result.OptionalDropped {
		message = "Profile saved (phone/location are not stored by the backend schema)"
	}
	c.JSON(http.StatusOK, gin.H{"saved": true, "optionalDropped": result.OptionalDropped, "message": message})
}

// UploadAvatarHandler stores an avatar image and returns its public URL.
func (h *ProfileHandler) UploadAvatarHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.Svc.UploadAvatar(c.Request.Context(), userID, tempFilePath)
	if err != nil {
		h.Logger.Error("avatar upload failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
