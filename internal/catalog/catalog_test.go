package catalog_test

import (
	"testing"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	cat := catalog.Default()
	require.NoError(t, cat.Validate())
}

func TestDefault_CohortDirectoryIsCrossProduct(t *testing.T) {
	cat := catalog.Default()

	assert.Len(t, cat.Cohorts(), len(cat.Genders())*len(cat.AgeGroups()))

	cohort, ok := cat.CohortByKey("male_18_29")
	require.True(t, ok)
	assert.Equal(t, "male", cohort.Gender.Value)
	assert.Equal(t, 18, cohort.Age.LowerBound)
	assert.Equal(t, 29, cohort.Age.UpperBound)

	_, ok = cat.CohortByKey("male_17_29")
	assert.False(t, ok)
}

func TestDefault_EveryDomainHasEvents(t *testing.T) {
	cat := catalog.Default()

	eventsPerDomain := make(map[string]int)
	for _, e := range cat.Events() {
		eventsPerDomain[e.Domain.Value]++
	}
	for _, d := range cat.Domains() {
		assert.Greater(t, eventsPerDomain[d.Value], 0, "domain %s has no events", d.Value)
	}
}

func TestDefault_BenchmarkCoverage(t *testing.T) {
	cat := catalog.Default()

	// The shipped table covers every (event, cohort) combination.
	for _, e := range cat.Events() {
		for _, c := range cat.Cohorts() {
			level, ok := cat.Benchmark(e.Value, c.Key)
			require.True(t, ok, "missing benchmark for %s/%s", e.Value, c.Key)
			assert.NotEqual(t, level.Poor, level.Elite, "degenerate benchmark for %s/%s", e.Value, c.Key)

			if e.UnitType.Value == catalog.UnitTypeTime {
				assert.Greater(t, level.Poor, level.Elite, "time event %s/%s must have poor > elite", e.Value, c.Key)
			} else {
				assert.Less(t, level.Poor, level.Elite, "%s/%s must have poor < elite", e.Value, c.Key)
			}
		}
	}
}

func TestDefault_DeadliftAnchorPair(t *testing.T) {
	level, ok := catalog.Default().Benchmark("deadlift", "male_18_29")
	require.True(t, ok)
	assert.Equal(t, 173.0, level.Poor)
	assert.Equal(t, 552.0, level.Elite)
	assert.Equal(t, "pounds", level.Unit.Value)
}

func TestBenchmark_AbsentLookups(t *testing.T) {
	cat := catalog.Default()

	_, ok := cat.Benchmark("no-such-event", "male_18_29")
	assert.False(t, ok)
	_, ok = cat.Benchmark("deadlift", "no-such-cohort")
	assert.False(t, ok)
}

func TestAgeGroupFor(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		age       int
		wantLower int
		wantOK    bool
	}{
		{17, 0, false},
		{18, 18, true},
		{29, 18, true},
		{30, 30, true},
		{99, 90, true},
		{100, 0, false},
	}
	for _, tt := range tests {
		group, ok := cat.AgeGroupFor(tt.age)
		require.Equal(t, tt.wantOK, ok, "age %d", tt.age)
		if ok {
			assert.Equal(t, tt.wantLower, group.LowerBound, "age %d", tt.age)
		}
	}
}

func TestValidate_RejectsBadData(t *testing.T) {
	genders := []domain.Gender{{Label: "Male", Value: "male"}}
	domains := []domain.Domain{{Label: "Strength", Value: "strength", Logo: "x"}}
	unitPounds := domain.Unit{Label: "Pounds", Value: "pounds"}
	unitTypes := []domain.UnitType{{Label: "Weight", Value: "weight", Units: []domain.Unit{unitPounds}}}
	units := []domain.Unit{unitPounds}
	events := []domain.Event{{Label: "Deadlift", Value: "deadlift", UnitType: unitTypes[0], Domain: domains[0]}}

	t.Run("gap between age groups", func(t *testing.T) {
		cat := catalog.New(genders, []domain.AgeGroup{
			{LowerBound: 18, UpperBound: 29},
			{LowerBound: 31, UpperBound: 39}, // hole at 30
		}, domains, units, unitTypes, events, nil)
		assert.ErrorContains(t, cat.Validate(), "not contiguous")
	})

	t.Run("overlapping age groups", func(t *testing.T) {
		cat := catalog.New(genders, []domain.AgeGroup{
			{LowerBound: 18, UpperBound: 30},
			{LowerBound: 30, UpperBound: 39},
		}, domains, units, unitTypes, events, nil)
		assert.ErrorContains(t, cat.Validate(), "not contiguous")
	})

	t.Run("inverted age group bounds", func(t *testing.T) {
		cat := catalog.New(genders, []domain.AgeGroup{
			{LowerBound: 29, UpperBound: 18},
		}, domains, units, unitTypes, events, nil)
		assert.ErrorContains(t, cat.Validate(), "inverted bounds")
	})

	t.Run("benchmark references unknown event", func(t *testing.T) {
		cat := catalog.New(genders, []domain.AgeGroup{{LowerBound: 18, UpperBound: 29}},
			domains, units, unitTypes, events,
			map[string]map[string]domain.BenchmarkLevel{
				"bench-press": {"male_18_29": {Poor: 1, Elite: 2}},
			})
		assert.ErrorContains(t, cat.Validate(), "unknown event")
	})

	t.Run("benchmark references unknown cohort", func(t *testing.T) {
		cat := catalog.New(genders, []domain.AgeGroup{{LowerBound: 18, UpperBound: 29}},
			domains, units, unitTypes, events,
			map[string]map[string]domain.BenchmarkLevel{
				"deadlift": {"female_18_29": {Poor: 1, Elite: 2}},
			})
		assert.ErrorContains(t, cat.Validate(), "unknown cohort")
	})

	t.Run("event with unknown domain", func(t *testing.T) {
		badEvents := []domain.Event{{
			Label: "Deadlift", Value: "deadlift",
			UnitType: unitTypes[0],
			Domain:   domain.Domain{Value: "mystery"},
		}}
		cat := catalog.New(genders, []domain.AgeGroup{{LowerBound: 18, UpperBound: 29}},
			domains, units, unitTypes, badEvents, nil)
		assert.ErrorContains(t, cat.Validate(), "unknown domain")
	})
}
