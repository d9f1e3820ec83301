package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"alcyxob/scalar-app/internal/domain"
)

// ErrCohortNotFound is returned when a user cannot be placed into any
// cohort: missing birthday or gender, an age outside every configured age
// group, or a hole in the cohort directory.
var ErrCohortNotFound = errors.New("cohort not found")

// CohortDirectory is the read-only view of the catalog the resolver needs.
type CohortDirectory interface {
	AgeGroupFor(age int) (domain.AgeGroup, bool)
	CohortByKey(key string) (domain.Cohort, bool)
}

// ResolveCohort places a user into a (gender, age range) cohort as of now.
// Resolution is a pure function of (now, birthday, gender); it is
// deliberately not persisted, since the answer changes as the user ages.
func ResolveCohort(dir CohortDirectory, user *domain.User, now time.Time) (domain.Cohort, error) {
	if user == nil || !user.HasDemographics() {
		return domain.Cohort{}, ErrCohortNotFound
	}

	age, err := AgeAt(user.Birthday, now)
	if err != nil {
		return domain.Cohort{}, ErrCohortNotFound
	}

	ageGroup, ok := dir.AgeGroupFor(age)
	if !ok {
		return domain.Cohort{}, ErrCohortNotFound
	}

	// Should always hit if the directory is the full cross-product, but a
	// gap degrades to not-found rather than a panic.
	cohort, ok := dir.CohortByKey(domain.CohortKey(user.Gender.Value, ageGroup))
	if !ok {
		return domain.Cohort{}, ErrCohortNotFound
	}

	return cohort, nil
}

// AgeAt computes the whole-year age at the reference time for a birthday in
// YYYY[-MM[-DD]] form. Missing month and day default to 1. The year counts
// only once the birthday has occurred in the reference year.
func AgeAt(birthday string, now time.Time) (int, error) {
	year, month, day, err := parseBirthday(birthday)
	if err != nil {
		return 0, err
	}

	age := now.Year() - year
	if int(now.Month()) < month || (int(now.Month()) == month && now.Day() < day) {
		age--
	}
	return age, nil
}

func parseBirthday(birthday string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(birthday), "-")
	if len(parts) < 1 || len(parts) > 3 || parts[0] == "" {
		return 0, 0, 0, fmt.Errorf("invalid birthday %q", birthday)
	}

	month, day = 1, 1
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid birthday year %q", parts[0])
	}
	if len(parts) > 1 {
		if month, err = strconv.Atoi(parts[1]); err != nil || month < 1 || month > 12 {
			return 0, 0, 0, fmt.Errorf("invalid birthday month %q", parts[1])
		}
	}
	if len(parts) > 2 {
		if day, err = strconv.Atoi(parts[2]); err != nil || day < 1 || day > 31 {
			return 0, 0, 0, fmt.Errorf("invalid birthday day %q", parts[2])
		}
	}
	return year, month, day, nil
}
