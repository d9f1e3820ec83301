package scoring

import (
	"math"

	"alcyxob/scalar-app/internal/domain"
)

// Reason explains why a domain could not be scored. The zero value means
// the domain was scored normally.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoSubmissions Reason = "no-submissions"
	ReasonNoCohort      Reason = "no-cohort"
	ReasonNoBenchmarks  Reason = "no-benchmarks"
	ReasonStoreFailure  Reason = "store-failure"
)

// BenchmarkSource yields the poor/elite pair for an (event, cohort)
// combination; ok is false when no benchmark exists for the pair.
type BenchmarkSource interface {
	Benchmark(eventValue, cohortKey string) (domain.BenchmarkLevel, bool)
}

// EventScore is the per-event breakdown inside a DomainResult.
type EventScore struct {
	EventValue string  `json:"eventValue"`
	EventLabel string  `json:"eventLabel"`
	Best       float64 `json:"best"`  // best qualifying raw value
	Score      float64 `json:"score"` // normalized, unclamped precision kept
}

// DomainResult is the outcome of scoring one domain for one user. Scored
// distinguishes a genuine score (possibly 0) from "could not compute";
// callers that want the legacy dashboard behavior coerce via Value.
type DomainResult struct {
	DomainValue string       `json:"domainValue"`
	Score       int          `json:"score"`
	Scored      bool         `json:"scored"`
	Reason      Reason       `json:"reason,omitempty"`
	Events      []EventScore `json:"events,omitempty"`
}

// Value returns the score with the zero-fallback policy applied: an
// unscoreable domain reads as 0, the same as a genuine rock-bottom score.
func (r DomainResult) Value() int {
	if !r.Scored {
		return 0
	}
	return r.Score
}

// Unscoreable builds the not-computed result for a domain.
func Unscoreable(domainValue string, reason Reason) DomainResult {
	return DomainResult{DomainValue: domainValue, Reason: reason}
}

// ScoreDomain computes the scalar score for one domain: per distinct event,
// the best qualifying submission (max or min by direction) is normalized
// against the cohort's benchmarks, and the domain score is the rounded mean
// of the per-event scores. Events without a benchmark for the cohort are
// skipped entirely rather than scored 0. Submissions from other domains are
// filtered out, so the full submission set may be passed in.
func ScoreDomain(submissions []domain.Submission, cohort domain.Cohort, domainValue string, benchmarks BenchmarkSource) DomainResult {
	best := make(map[string]domain.Submission)
	var eventOrder []string

	for _, sub := range submissions {
		if sub.Event.Domain.Value != domainValue {
			continue
		}
		current, seen := best[sub.Event.Value]
		if !seen {
			best[sub.Event.Value] = sub
			eventOrder = append(eventOrder, sub.Event.Value)
			continue
		}
		// Strict comparison keeps the first-encountered submission on ties.
		if HigherIsBetter(sub.Event.UnitType.Value) {
			if sub.Value > current.Value {
				best[sub.Event.Value] = sub
			}
		} else {
			if sub.Value < current.Value {
				best[sub.Event.Value] = sub
			}
		}
	}

	if len(best) == 0 {
		return Unscoreable(domainValue, ReasonNoSubmissions)
	}

	var eventScores []EventScore
	var sum float64
	for _, eventValue := range eventOrder {
		sub := best[eventValue]
		level, ok := benchmarks.Benchmark(eventValue, cohort.Key)
		if !ok {
			// A benchmark gap is not zero performance; the event simply
			// does not participate in the average.
			continue
		}
		score := Normalize(sub.Value, level.Poor, level.Elite, HigherIsBetter(sub.Event.UnitType.Value))
		eventScores = append(eventScores, EventScore{
			EventValue: eventValue,
			EventLabel: sub.Event.Label,
			Best:       sub.Value,
			Score:      score,
		})
		sum += score
	}

	if len(eventScores) == 0 {
		return Unscoreable(domainValue, ReasonNoBenchmarks)
	}

	return DomainResult{
		DomainValue: domainValue,
		Score:       int(math.Round(sum / float64(len(eventScores)))),
		Scored:      true,
		Events:      eventScores,
	}
}
