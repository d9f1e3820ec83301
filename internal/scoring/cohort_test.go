package scoring_test

import (
	"testing"
	"time"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func testUser(birthday, gender string) *domain.User {
	u := &domain.User{Birthday: birthday}
	if gender != "" {
		u.Gender = &domain.Gender{Value: gender, Label: gender}
	}
	return u
}

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		want     int
	}{
		{"birthday already passed this year", "2000-03-10", 25},
		{"birthday later this year", "2000-11-02", 24},
		{"birthday today counts", "2000-06-15", 25},
		{"birthday tomorrow does not", "2000-06-16", 24},
		{"year only defaults to Jan 1", "2000", 25},
		{"year and month defaults day to 1", "2000-06", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := scoring.AgeAt(tt.birthday, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, age)
		})
	}
}

func TestAgeAt_Invalid(t *testing.T) {
	for _, birthday := range []string{"", "abcd", "2000-13", "2000-06-99", "2000-06-15-01"} {
		_, err := scoring.AgeAt(birthday, testNow)
		assert.Error(t, err, birthday)
	}
}

func TestResolveCohort(t *testing.T) {
	cat := catalog.Default()

	cohort, err := scoring.ResolveCohort(cat, testUser("2000-03-10", "male"), testNow)
	require.NoError(t, err)
	assert.Equal(t, "male_18_29", cohort.Key)
	assert.Equal(t, 18, cohort.Age.LowerBound)
	assert.Equal(t, 29, cohort.Age.UpperBound)

	cohort, err = scoring.ResolveCohort(cat, testUser("1980-01-01", "female"), testNow)
	require.NoError(t, err)
	assert.Equal(t, "female_40_49", cohort.Key)
}

func TestResolveCohort_Deterministic(t *testing.T) {
	cat := catalog.Default()
	user := testUser("1990-07-21", "female")

	first, err1 := scoring.ResolveCohort(cat, user, testNow)
	second, err2 := scoring.ResolveCohort(cat, user, testNow)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestResolveCohort_AgeGroupBoundaries(t *testing.T) {
	cat := catalog.Default()

	// Turned 30 yesterday: lands in 30-39, not 18-29.
	cohort, err := scoring.ResolveCohort(cat, testUser("1995-06-14", "male"), testNow)
	require.NoError(t, err)
	assert.Equal(t, "male_30_39", cohort.Key)

	// Turns 30 tomorrow: still 29, stays in 18-29.
	cohort, err = scoring.ResolveCohort(cat, testUser("1995-06-16", "male"), testNow)
	require.NoError(t, err)
	assert.Equal(t, "male_18_29", cohort.Key)
}

func TestResolveCohort_NotFound(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		user *domain.User
	}{
		{"nil user", nil},
		{"missing birthday", testUser("", "male")},
		{"missing gender", testUser("1990-01-01", "")},
		{"unparseable birthday", testUser("not-a-date", "male")},
		{"under the lowest age group", testUser("2010-01-01", "female")},
		{"over the highest age group", testUser("1920-01-01", "male")},
		{"gender not in directory", testUser("1990-01-01", "other")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoring.ResolveCohort(cat, tt.user, testNow)
			assert.ErrorIs(t, err, scoring.ErrCohortNotFound)
		})
	}
}
