package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var scoringTestNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// cohortedUser is a 25-year-old male at scoringTestNow: cohort male_18_29.
func cohortedUser() domain.User {
	return domain.User{
		ID:       primitive.NewObjectID(),
		Name:     "Test Athlete",
		Email:    "athlete@example.com",
		Birthday: "2000-03-10",
		Gender:   &domain.Gender{Label: "Male", Value: "male"},
	}
}

func newTestScoringService(subRepo *fakeSubmissionRepo, userRepo *fakeUserRepo) *scoringService {
	return &scoringService{
		submissionRepo: subRepo,
		userRepo:       userRepo,
		catalog:        catalog.Default(),
		now:            func() time.Time { return scoringTestNow },
	}
}

func submissionForUser(t *testing.T, user domain.User, eventValue string, value float64) domain.Submission {
	t.Helper()
	event, ok := catalog.Default().EventByValue(eventValue)
	require.True(t, ok)
	return domain.Submission{
		ID:    primitive.NewObjectID(),
		User:  user,
		Event: event,
		Value: value,
	}
}

func TestScoringService_ScoresAgainstShippedBenchmarks(t *testing.T) {
	user := cohortedUser()
	subRepo := &fakeSubmissionRepo{
		submissions: []domain.Submission{
			submissionForUser(t, user, "deadlift", 400),
		},
	}
	svc := newTestScoringService(subRepo, newFakeUserRepo(&user))

	score := svc.GetUserDomainScore(context.Background(), user.ID, "muscular-strength")
	assert.Equal(t, 60, score)
}

func TestScoringService_MissingDemographicsScoresZero(t *testing.T) {
	user := cohortedUser()
	user.Birthday = ""
	user.Gender = nil
	subRepo := &fakeSubmissionRepo{
		submissions: []domain.Submission{
			submissionForUser(t, user, "deadlift", 400),
		},
	}
	svc := newTestScoringService(subRepo, newFakeUserRepo(&user))

	results := svc.GetUserDomainResults(context.Background(), user.ID, []string{"muscular-strength"})
	result := results["muscular-strength"]
	assert.False(t, result.Scored)
	assert.Equal(t, scoring.ReasonNoCohort, result.Reason)
	assert.Equal(t, 0, result.Value())

	assert.Equal(t, 0, svc.GetUserDomainScore(context.Background(), user.ID, "muscular-strength"))
}

func TestScoringService_NoSubmissionsScoresZero(t *testing.T) {
	// The user has no resolvable cohort either; the reason must still be
	// no-submissions, proving the short-circuit fires before cohort work.
	user := cohortedUser()
	user.Birthday = ""
	user.Gender = nil
	svc := newTestScoringService(&fakeSubmissionRepo{}, newFakeUserRepo(&user))

	results := svc.GetUserDomainResults(context.Background(), user.ID, []string{"muscular-strength"})
	result := results["muscular-strength"]
	assert.False(t, result.Scored)
	assert.Equal(t, scoring.ReasonNoSubmissions, result.Reason)
	assert.Equal(t, 0, result.Value())
}

func TestScoringService_StoreFailureScoresZero(t *testing.T) {
	user := cohortedUser()
	subRepo := &fakeSubmissionRepo{getByUserIDErr: errors.New("connection reset")}
	svc := newTestScoringService(subRepo, newFakeUserRepo(&user))

	results := svc.GetUserDomainResults(context.Background(), user.ID,
		[]string{"muscular-strength", "steady-state-endurance"})
	require.Len(t, results, 2)
	for domainValue, result := range results {
		assert.False(t, result.Scored, domainValue)
		assert.Equal(t, scoring.ReasonStoreFailure, result.Reason, domainValue)
		assert.Equal(t, 0, result.Value(), domainValue)
	}
}

func TestScoringService_BatchFetchesSubmissionsOnce(t *testing.T) {
	user := cohortedUser()
	subRepo := &fakeSubmissionRepo{
		submissions: []domain.Submission{
			submissionForUser(t, user, "deadlift", 400),
			submissionForUser(t, user, "5k-run", 1350),
		},
	}
	svc := newTestScoringService(subRepo, newFakeUserRepo(&user))

	scores := svc.GetUserDomainScores(context.Background(), user.ID, catalog.Default().DomainValues())

	assert.Equal(t, 1, subRepo.getByUserIDCalls)
	assert.Len(t, scores, 6)
	assert.Equal(t, 60, scores["muscular-strength"])
	assert.Equal(t, 0, scores["olympic-lifting"]) // no submissions, coerced
}

func TestScoringService_MixedDomains(t *testing.T) {
	user := cohortedUser()
	subRepo := &fakeSubmissionRepo{
		submissions: []domain.Submission{
			submissionForUser(t, user, "deadlift", 400),
		},
	}
	svc := newTestScoringService(subRepo, newFakeUserRepo(&user))

	results := svc.GetUserDomainResults(context.Background(), user.ID,
		[]string{"muscular-strength", "olympic-lifting"})

	assert.True(t, results["muscular-strength"].Scored)
	assert.Equal(t, 60, results["muscular-strength"].Score)
	assert.False(t, results["olympic-lifting"].Scored)
	assert.Equal(t, scoring.ReasonNoSubmissions, results["olympic-lifting"].Reason)
}

func TestScoringService_GetUserCohort(t *testing.T) {
	user := cohortedUser()
	svc := newTestScoringService(&fakeSubmissionRepo{}, newFakeUserRepo(&user))

	cohort, err := svc.GetUserCohort(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "male_18_29", cohort.Key)
	assert.Equal(t, "Male, 18–29", cohort.Label())
}

func TestScoringService_GetUserCohort_NoDemographics(t *testing.T) {
	user := cohortedUser()
	user.Gender = nil
	svc := newTestScoringService(&fakeSubmissionRepo{}, newFakeUserRepo(&user))

	_, err := svc.GetUserCohort(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrNoCohort)
}
