package api

import (
	"errors"
	"net/http"

	"alcyxob/scalar-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// UpdateProfileRequest defines the expected JSON for profile updates.
// Empty fields clear the corresponding value.
type UpdateProfileRequest struct {
	Birthday string `json:"birthday"` // ISO date, YYYY[-MM[-DD]]
	Gender   string `json:"gender"`   // gender value key, e.g. "female"
}

// AvatarUploadRequest defines the expected JSON for requesting an avatar upload.
type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// AvatarURLResponse carries a presigned URL.
type AvatarURLResponse struct {
	URL string `json:"url"`
}

// --- Handler Methods ---

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateProfile sets the user's birthday and gender.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req.Birthday, req.Gender)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidBirthday), errors.Is(err, service.ErrInvalidGender):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// RequestAvatarUpload returns a presigned PUT URL for the user's avatar.
func (h *ProfileHandler) RequestAvatarUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	uploadURL, err := h.profileService.RequestAvatarUpload(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to prepare avatar upload")
		return
	}

	c.JSON(http.StatusOK, AvatarURLResponse{URL: uploadURL})
}

// GetAvatar returns a presigned GET URL for the user's avatar.
func (h *ProfileHandler) GetAvatar(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	url, err := h.profileService.GetAvatarURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "No avatar set")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch avatar")
		return
	}

	c.JSON(http.StatusOK, AvatarURLResponse{URL: url})
}
