package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidUnit   = errors.New("unit is not valid for this event")
	ErrInvalidValue  = errors.New("performance value could not be parsed")
)

// SubmissionService captures and lists performance submissions.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, userID primitive.ObjectID, eventValue, rawValue, unitValue string) (*domain.Submission, error)
	GetUserSubmissions(ctx context.Context, userID primitive.ObjectID) ([]domain.Submission, error)
}

// submissionService implements the SubmissionService interface.
type submissionService struct {
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	catalog        *catalog.Catalog
}

// NewSubmissionService creates a new instance of submissionService.
func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
	cat *catalog.Catalog,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		catalog:        cat,
	}
}

// CreateSubmission validates and records one performance. The raw input is
// preserved verbatim for display; the business value is resolved here:
// seconds for time-based events, the plain numeric magnitude otherwise.
func (s *submissionService) CreateSubmission(ctx context.Context, userID primitive.ObjectID, eventValue, rawValue, unitValue string) (*domain.Submission, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required to create a submission")
	}

	event, ok := s.catalog.EventByValue(eventValue)
	if !ok {
		return nil, ErrEventNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	submission := &domain.Submission{
		User:     *user,
		Event:    event,
		RawValue: strings.TrimSpace(rawValue),
	}

	if event.UnitType.Value == catalog.UnitTypeTime {
		// Time events take mm:ss / h:mm:ss (or a bare number with a time
		// unit) and resolve to seconds; the unit field stays empty.
		seconds, err := parseTimeValue(submission.RawValue, unitValue)
		if err != nil {
			return nil, ErrInvalidValue
		}
		submission.Value = seconds
	} else {
		if unitValue == "" || !event.UnitType.HasUnit(unitValue) {
			return nil, ErrInvalidUnit
		}
		unit, _ := s.catalog.UnitByValue(unitValue)
		value, err := strconv.ParseFloat(submission.RawValue, 64)
		if err != nil || value < 0 {
			return nil, ErrInvalidValue
		}
		submission.Unit = &unit
		submission.Value = value
	}

	if _, err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// GetUserSubmissions returns the user's full submission history, newest first.
func (s *submissionService) GetUserSubmissions(ctx context.Context, userID primitive.ObjectID) ([]domain.Submission, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	return s.submissionRepo.GetByUserID(ctx, userID)
}

// parseTimeValue resolves a time input to seconds. Accepted forms:
// "h:mm:ss", "mm:ss", or a bare number interpreted per the given unit
// (minutes or seconds; seconds when no unit is given).
func parseTimeValue(raw, unitValue string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty time value")
	}

	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		if len(parts) > 3 {
			return 0, fmt.Errorf("invalid time format %q", raw)
		}
		var seconds float64
		for _, part := range parts {
			n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil || n < 0 {
				return 0, fmt.Errorf("invalid time component %q", part)
			}
			seconds = seconds*60 + n
		}
		return seconds, nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid time value %q", raw)
	}
	if unitValue == "minutes" {
		return n * 60, nil
	}
	return n, nil
}
