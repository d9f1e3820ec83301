package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/repository"
	"alcyxob/scalar-app/internal/scoring"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoCohort is returned by GetUserCohort when the user's profile lacks
// the demographics to place them into a cohort.
var ErrNoCohort = errors.New("user cannot be placed into a cohort")

// ScoringService is the façade over the scoring engine. The score methods
// never fail: missing demographics, benchmark gaps, empty submission sets
// and even storage errors all degrade to an unscored result, which the
// integer accessors coerce to 0. The dashboard never sees an error screen
// for an incomplete profile.
type ScoringService interface {
	// GetUserDomainScore returns the integer-rounded score in [0,100] for
	// one domain, 0 when the domain cannot be scored.
	GetUserDomainScore(ctx context.Context, userID primitive.ObjectID, domainValue string) int

	// GetUserDomainScores returns a score per requested domain value.
	// Submissions are fetched and the cohort resolved once for the batch.
	GetUserDomainScores(ctx context.Context, userID primitive.ObjectID, domainValues []string) map[string]int

	// GetUserDomainResults is the tagged-result form of GetUserDomainScores:
	// it distinguishes a genuine zero score from "could not compute".
	GetUserDomainResults(ctx context.Context, userID primitive.ObjectID, domainValues []string) map[string]scoring.DomainResult

	// GetUserCohort resolves the user's cohort from their profile, for
	// display purposes ("Your Cohort: Male, 18–29").
	GetUserCohort(ctx context.Context, userID primitive.ObjectID) (domain.Cohort, error)
}

// scoringService implements the ScoringService interface.
type scoringService struct {
	submissionRepo repository.SubmissionRepository
	userRepo       repository.UserRepository
	catalog        *catalog.Catalog
	now            func() time.Time
}

// NewScoringService creates a new instance of scoringService.
func NewScoringService(
	submissionRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
	cat *catalog.Catalog,
) ScoringService {
	return &scoringService{
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
		catalog:        cat,
		now:            time.Now,
	}
}

func (s *scoringService) GetUserDomainScore(ctx context.Context, userID primitive.ObjectID, domainValue string) int {
	results := s.GetUserDomainResults(ctx, userID, []string{domainValue})
	return results[domainValue].Value()
}

func (s *scoringService) GetUserDomainScores(ctx context.Context, userID primitive.ObjectID, domainValues []string) map[string]int {
	results := s.GetUserDomainResults(ctx, userID, domainValues)
	scores := make(map[string]int, len(results))
	for domainValue, result := range results {
		scores[domainValue] = result.Value()
	}
	return scores
}

func (s *scoringService) GetUserDomainResults(ctx context.Context, userID primitive.ObjectID, domainValues []string) map[string]scoring.DomainResult {
	results := make(map[string]scoring.DomainResult, len(domainValues))

	submissions, err := s.submissionRepo.GetByUserID(ctx, userID)
	if err != nil {
		logrus.WithField("userId", userID.Hex()).Errorf("fetching submissions for scoring: %v", err)
		for _, domainValue := range domainValues {
			results[domainValue] = scoring.Unscoreable(domainValue, scoring.ReasonStoreFailure)
		}
		return results
	}

	byDomain := make(map[string][]domain.Submission)
	for _, sub := range submissions {
		byDomain[sub.Event.Domain.Value] = append(byDomain[sub.Event.Domain.Value], sub)
	}

	// The cohort is identical across domains for one call, so resolve it at
	// most once, and only when some domain actually has submissions. An
	// empty domain short-circuits before any cohort work.
	var cohort domain.Cohort
	var cohortErr error
	resolved := false

	for _, domainValue := range domainValues {
		domainSubs := byDomain[domainValue]
		if len(domainSubs) == 0 {
			results[domainValue] = scoring.Unscoreable(domainValue, scoring.ReasonNoSubmissions)
			continue
		}

		if !resolved {
			// Submissions carry a denormalized user snapshot; resolve from it.
			user := domainSubs[0].User
			cohort, cohortErr = scoring.ResolveCohort(s.catalog, &user, s.now())
			resolved = true
			if cohortErr != nil {
				logrus.WithField("userId", userID.Hex()).Debug("user has no resolvable cohort, domains unscored")
			}
		}
		if cohortErr != nil {
			results[domainValue] = scoring.Unscoreable(domainValue, scoring.ReasonNoCohort)
			continue
		}

		results[domainValue] = scoring.ScoreDomain(domainSubs, cohort, domainValue, s.catalog)
	}

	return results
}

func (s *scoringService) GetUserCohort(ctx context.Context, userID primitive.ObjectID) (domain.Cohort, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.Cohort{}, err
	}

	cohort, err := scoring.ResolveCohort(s.catalog, user, s.now())
	if err != nil {
		return domain.Cohort{}, ErrNoCohort
	}
	return cohort, nil
}
