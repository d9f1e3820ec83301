package api

import (
	"errors"
	"net/http"
	"strings"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ScoreHandler serves the normalized domain scores and the user's cohort.
type ScoreHandler struct {
	scoringService service.ScoringService
	catalog        *catalog.Catalog
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(scoringService service.ScoringService, cat *catalog.Catalog) *ScoreHandler {
	return &ScoreHandler{scoringService: scoringService, catalog: cat}
}

// --- DTOs ---

// DomainScoreResponse is the single-domain score payload.
type DomainScoreResponse struct {
	Domain string `json:"domain"`
	Score  int    `json:"score"`
}

// DomainScoresResponse is the batch payload consumed by the radar chart.
type DomainScoresResponse struct {
	Scores map[string]int `json:"scores"`
}

// CohortResponse describes the user's resolved cohort for display.
type CohortResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// --- Handler Methods ---

// GetDomainScore returns the score for one domain. Unknown domain values
// are a 404; everything else degrades to a 0 score.
func (h *ScoreHandler) GetDomainScore(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	domainValue := c.Param("domainValue")
	if _, ok := h.catalog.DomainByValue(domainValue); !ok {
		abortWithError(c, http.StatusNotFound, "Unknown domain")
		return
	}

	score := h.scoringService.GetUserDomainScore(c.Request.Context(), userID, domainValue)
	c.JSON(http.StatusOK, DomainScoreResponse{Domain: domainValue, Score: score})
}

// GetDomainScores returns scores for the requested domains, or for every
// catalog domain when none are specified (?domains=a,b,c to filter).
func (h *ScoreHandler) GetDomainScores(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	domainValues := h.catalog.DomainValues()
	if raw := c.Query("domains"); raw != "" {
		domainValues = nil
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if _, ok := h.catalog.DomainByValue(v); !ok {
				abortWithError(c, http.StatusNotFound, "Unknown domain: "+v)
				return
			}
			domainValues = append(domainValues, v)
		}
	}

	scores := h.scoringService.GetUserDomainScores(c.Request.Context(), userID, domainValues)
	c.JSON(http.StatusOK, DomainScoresResponse{Scores: scores})
}

// GetCohort returns the authenticated user's cohort, 404 when the profile
// lacks the demographics to resolve one.
func (h *ScoreHandler) GetCohort(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	cohort, err := h.scoringService.GetUserCohort(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoCohort) {
			abortWithError(c, http.StatusNotFound, "Profile is missing birthday or gender")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to resolve cohort")
		return
	}

	c.JSON(http.StatusOK, CohortResponse{Key: cohort.Key, Label: cohort.Label()})
}
