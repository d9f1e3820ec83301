package api

import (
	"errors"
	"net/http"
	"time"

	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler holds the submission service dependency.
type SubmissionHandler struct {
	submissionService service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// --- DTOs ---

// CreateSubmissionRequest defines the expected JSON for logging a performance.
type CreateSubmissionRequest struct {
	Event    string `json:"event" binding:"required"`    // event value key, e.g. "deadlift"
	RawValue string `json:"rawValue" binding:"required"` // literal input, e.g. "400" or "22:30"
	Unit     string `json:"unit" binding:"omitempty"`    // unit value key; empty for time events
}

// SubmissionResponse is the DTO for returning a logged performance.
type SubmissionResponse struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	EventLabel string    `json:"eventLabel"`
	Domain     string    `json:"domain"`
	RawValue   string    `json:"rawValue"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MapSubmissionToResponse converts a domain.Submission to SubmissionResponse DTO.
func MapSubmissionToResponse(s *domain.Submission) SubmissionResponse {
	if s == nil {
		return SubmissionResponse{}
	}
	resp := SubmissionResponse{
		ID:         s.ID.Hex(),
		Event:      s.Event.Value,
		EventLabel: s.Event.Label,
		Domain:     s.Event.Domain.Value,
		RawValue:   s.RawValue,
		Value:      s.Value,
		CreatedAt:  s.CreatedAt,
	}
	if s.Unit != nil {
		resp.Unit = s.Unit.Value
	}
	return resp
}

// MapSubmissionsToResponse converts a slice of domain.Submission to DTOs.
func MapSubmissionsToResponse(submissions []domain.Submission) []SubmissionResponse {
	responses := make([]SubmissionResponse, len(submissions))
	for i, s := range submissions {
		responses[i] = MapSubmissionToResponse(&s)
	}
	return responses
}

// --- Handler Methods ---

// CreateSubmission logs a new performance for the authenticated user.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	submission, err := h.submissionService.CreateSubmission(c.Request.Context(), userID, req.Event, req.RawValue, req.Unit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidUnit), errors.Is(err, service.ErrInvalidValue):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create submission")
		}
		return
	}

	c.JSON(http.StatusCreated, MapSubmissionToResponse(submission))
}

// GetMySubmissions lists the authenticated user's submission history.
func (h *SubmissionHandler) GetMySubmissions(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	submissions, err := h.submissionService.GetUserSubmissions(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch submissions")
		return
	}

	c.JSON(http.StatusOK, MapSubmissionsToResponse(submissions))
}
