package catalog

import (
	"fmt"
	"sort"

	"alcyxob/scalar-app/internal/domain"
)

// Unit type keys. Direction classification is keyed on these: time-based
// events are lower-is-better, everything else is higher-is-better.
const (
	UnitTypeCalories    = "calories"
	UnitTypeRepetitions = "repetitions"
	UnitTypeTime        = "time"
	UnitTypeWeight      = "weight"
)

var (
	unitCalories    = domain.Unit{Label: "Calories", Value: "calories"}
	unitFeet        = domain.Unit{Label: "Feet", Value: "feet"}
	unitInches      = domain.Unit{Label: "Inches", Value: "inches"}
	unitMinutes     = domain.Unit{Label: "Minutes", Value: "minutes"}
	unitPounds      = domain.Unit{Label: "Pounds", Value: "pounds"}
	unitRepetitions = domain.Unit{Label: "Repetitions", Value: "repetitions"}
	unitSeconds     = domain.Unit{Label: "Seconds", Value: "seconds"}
)

// Catalog holds the static entity tables (domains, events, units, genders,
// age groups), the precomputed cohort directory and the benchmark table.
// It is immutable after construction; build it once in main and share it.
type Catalog struct {
	genders    []domain.Gender
	ageGroups  []domain.AgeGroup
	domains    []domain.Domain
	units      []domain.Unit
	unitTypes  []domain.UnitType
	events     []domain.Event
	cohorts    []domain.Cohort
	benchmarks map[string]map[string]domain.BenchmarkLevel

	eventsByValue    map[string]domain.Event
	domainsByValue   map[string]domain.Domain
	unitTypesByValue map[string]domain.UnitType
	unitsByValue     map[string]domain.Unit
	gendersByValue   map[string]domain.Gender
	cohortsByKey     map[string]domain.Cohort
}

// New builds a Catalog from the given tables, precomputing the cohort
// directory as the full Gender × AgeGroup cross-product and indexing all
// entities by their value keys.
func New(
	genders []domain.Gender,
	ageGroups []domain.AgeGroup,
	domains []domain.Domain,
	units []domain.Unit,
	unitTypes []domain.UnitType,
	events []domain.Event,
	benchmarks map[string]map[string]domain.BenchmarkLevel,
) *Catalog {
	c := &Catalog{
		genders:    genders,
		ageGroups:  ageGroups,
		domains:    domains,
		units:      units,
		unitTypes:  unitTypes,
		events:     events,
		benchmarks: benchmarks,

		eventsByValue:    make(map[string]domain.Event, len(events)),
		domainsByValue:   make(map[string]domain.Domain, len(domains)),
		unitTypesByValue: make(map[string]domain.UnitType, len(unitTypes)),
		unitsByValue:     make(map[string]domain.Unit, len(units)),
		gendersByValue:   make(map[string]domain.Gender, len(genders)),
		cohortsByKey:     make(map[string]domain.Cohort, len(genders)*len(ageGroups)),
	}

	for _, e := range events {
		c.eventsByValue[e.Value] = e
	}
	for _, d := range domains {
		c.domainsByValue[d.Value] = d
	}
	for _, t := range unitTypes {
		c.unitTypesByValue[t.Value] = t
	}
	for _, u := range units {
		c.unitsByValue[u.Value] = u
	}
	for _, g := range genders {
		c.gendersByValue[g.Value] = g
	}

	// Cohort directory: the exact cross-product, in table order.
	for _, g := range genders {
		for _, ag := range ageGroups {
			cohort := domain.Cohort{
				Key:    domain.CohortKey(g.Value, ag),
				Gender: g,
				Age:    ag,
			}
			c.cohorts = append(c.cohorts, cohort)
			c.cohortsByKey[cohort.Key] = cohort
		}
	}

	return c
}

// Default returns the catalog shipped with the application.
func Default() *Catalog {
	genders := []domain.Gender{
		{Label: "Female", Value: "female"},
		{Label: "Male", Value: "male"},
	}

	ageGroups := []domain.AgeGroup{
		{LowerBound: 18, UpperBound: 29},
		{LowerBound: 30, UpperBound: 39},
		{LowerBound: 40, UpperBound: 49},
		{LowerBound: 50, UpperBound: 59},
		{LowerBound: 60, UpperBound: 69},
		{LowerBound: 70, UpperBound: 79},
		{LowerBound: 80, UpperBound: 89},
		{LowerBound: 90, UpperBound: 99},
	}

	domains := []domain.Domain{
		{Label: "Agility & Coordination", Value: "agility-coordination", MobileLabel: "Agility", Logo: "GiBodyBalance"},
		{Label: "Anaerobic Power/Speed", Value: "anaerobic-power-speed", MobileLabel: "Power", Logo: "GiSpeedometer"},
		{Label: "Muscular Endurance", Value: "muscular-endurance", MobileLabel: "Endurance", Logo: "GiStairsGoal"},
		{Label: "Muscular Strength", Value: "muscular-strength", MobileLabel: "Strength", Logo: "GiBiceps"},
		{Label: "Olympic Lifting", Value: "olympic-lifting", MobileLabel: "Olympic", Logo: "GiWeightLiftingUp"},
		{Label: "Steady State Endurance", Value: "steady-state-endurance", MobileLabel: "Cardio", Logo: "GiPathDistance"},
	}

	units := []domain.Unit{
		unitCalories, unitFeet, unitInches, unitMinutes,
		unitPounds, unitRepetitions, unitSeconds,
	}

	unitTypes := []domain.UnitType{
		{Label: "Calories", Value: UnitTypeCalories, Units: []domain.Unit{unitCalories}},
		{Label: "Repetitions", Value: UnitTypeRepetitions, Units: []domain.Unit{unitRepetitions}},
		{Label: "Time", Value: UnitTypeTime, Units: []domain.Unit{unitMinutes, unitSeconds}},
		{Label: "Weight", Value: UnitTypeWeight, Units: []domain.Unit{unitPounds}},
	}

	byValue := func(values []domain.Domain, v string) domain.Domain {
		for _, d := range values {
			if d.Value == v {
				return d
			}
		}
		panic(fmt.Sprintf("catalog: unknown domain %q", v))
	}
	typeByValue := func(types []domain.UnitType, v string) domain.UnitType {
		for _, t := range types {
			if t.Value == v {
				return t
			}
		}
		panic(fmt.Sprintf("catalog: unknown unit type %q", v))
	}

	events := []domain.Event{
		{Label: "Shuttle Run", Value: "shuttle-run", UnitType: typeByValue(unitTypes, UnitTypeTime), Domain: byValue(domains, "agility-coordination")},
		{Label: "T-Test", Value: "t-test", UnitType: typeByValue(unitTypes, UnitTypeTime), Domain: byValue(domains, "agility-coordination")},
		{Label: "400m Sprint", Value: "400m-sprint", UnitType: typeByValue(unitTypes, UnitTypeTime), Domain: byValue(domains, "anaerobic-power-speed")},
		{Label: "60-Second Assault Bike for Max Calories", Value: "assault-bike", UnitType: typeByValue(unitTypes, UnitTypeCalories), Domain: byValue(domains, "anaerobic-power-speed")},
		{Label: "Max Air Squats in 2 Minutes", Value: "air-squats", UnitType: typeByValue(unitTypes, UnitTypeRepetitions), Domain: byValue(domains, "muscular-endurance")},
		{Label: "Max Hanging Knee Raises in 2 Minutes", Value: "knee-raises", UnitType: typeByValue(unitTypes, UnitTypeRepetitions), Domain: byValue(domains, "muscular-endurance")},
		{Label: "Max Push-Ups in 2 Minutes", Value: "push-ups", UnitType: typeByValue(unitTypes, UnitTypeRepetitions), Domain: byValue(domains, "muscular-endurance")},
		{Label: "Max Strict Pull-Ups", Value: "pull-ups", UnitType: typeByValue(unitTypes, UnitTypeRepetitions), Domain: byValue(domains, "muscular-endurance")},
		{Label: "Back Squat", Value: "back-squat", UnitType: typeByValue(unitTypes, UnitTypeWeight), Domain: byValue(domains, "muscular-strength")},
		{Label: "Deadlift", Value: "deadlift", UnitType: typeByValue(unitTypes, UnitTypeWeight), Domain: byValue(domains, "muscular-strength")},
		{Label: "Military Press", Value: "military-press", UnitType: typeByValue(unitTypes, UnitTypeWeight), Domain: byValue(domains, "muscular-strength")},
		{Label: "Clean & Jerk", Value: "clean-and-jerk", UnitType: typeByValue(unitTypes, UnitTypeWeight), Domain: byValue(domains, "olympic-lifting")},
		{Label: "Snatch", Value: "snatch", UnitType: typeByValue(unitTypes, UnitTypeWeight), Domain: byValue(domains, "olympic-lifting")},
		{Label: "10K Row Time", Value: "10k-row", UnitType: typeByValue(unitTypes, UnitTypeTime), Domain: byValue(domains, "steady-state-endurance")},
		{Label: "5k Run", Value: "5k-run", UnitType: typeByValue(unitTypes, UnitTypeTime), Domain: byValue(domains, "steady-state-endurance")},
	}

	return New(genders, ageGroups, domains, units, unitTypes, events, defaultBenchmarks())
}

// --- Accessors ---

func (c *Catalog) Genders() []domain.Gender     { return c.genders }
func (c *Catalog) AgeGroups() []domain.AgeGroup { return c.ageGroups }
func (c *Catalog) Domains() []domain.Domain     { return c.domains }
func (c *Catalog) Units() []domain.Unit         { return c.units }
func (c *Catalog) UnitTypes() []domain.UnitType { return c.unitTypes }
func (c *Catalog) Events() []domain.Event       { return c.events }
func (c *Catalog) Cohorts() []domain.Cohort     { return c.cohorts }

// DomainValues returns the keys of all domains, in table order.
func (c *Catalog) DomainValues() []string {
	values := make([]string, len(c.domains))
	for i, d := range c.domains {
		values[i] = d.Value
	}
	return values
}

func (c *Catalog) EventByValue(value string) (domain.Event, bool) {
	e, ok := c.eventsByValue[value]
	return e, ok
}

func (c *Catalog) DomainByValue(value string) (domain.Domain, bool) {
	d, ok := c.domainsByValue[value]
	return d, ok
}

func (c *Catalog) UnitByValue(value string) (domain.Unit, bool) {
	u, ok := c.unitsByValue[value]
	return u, ok
}

func (c *Catalog) GenderByValue(value string) (domain.Gender, bool) {
	g, ok := c.gendersByValue[value]
	return g, ok
}

func (c *Catalog) CohortByKey(key string) (domain.Cohort, bool) {
	co, ok := c.cohortsByKey[key]
	return co, ok
}

// AgeGroupFor returns the age group whose bounds inclusively contain age.
func (c *Catalog) AgeGroupFor(age int) (domain.AgeGroup, bool) {
	for _, g := range c.ageGroups {
		if g.Contains(age) {
			return g, true
		}
	}
	return domain.AgeGroup{}, false
}

// Benchmark looks up the poor/elite pair for an (event, cohort) combination.
// Absence is a normal condition: the caller must skip the event, not score it 0.
func (c *Catalog) Benchmark(eventValue, cohortKey string) (domain.BenchmarkLevel, bool) {
	perCohort, ok := c.benchmarks[eventValue]
	if !ok {
		return domain.BenchmarkLevel{}, false
	}
	level, ok := perCohort[cohortKey]
	return level, ok
}

// Validate checks the catalog's data-integrity invariants. Run it once at
// startup and refuse to boot on failure; the scoring engine assumes all of
// these hold.
func (c *Catalog) Validate() error {
	if len(c.genders) == 0 {
		return fmt.Errorf("catalog: no genders defined")
	}
	if len(c.ageGroups) == 0 {
		return fmt.Errorf("catalog: no age groups defined")
	}

	// Age groups must be well-formed, non-overlapping and contiguous so
	// that any in-range age resolves to exactly one group.
	groups := make([]domain.AgeGroup, len(c.ageGroups))
	copy(groups, c.ageGroups)
	sort.Slice(groups, func(i, j int) bool { return groups[i].LowerBound < groups[j].LowerBound })
	for i, g := range groups {
		if g.LowerBound > g.UpperBound {
			return fmt.Errorf("catalog: age group %d-%d has inverted bounds", g.LowerBound, g.UpperBound)
		}
		if i == 0 {
			continue
		}
		prev := groups[i-1]
		if g.LowerBound != prev.UpperBound+1 {
			return fmt.Errorf("catalog: age groups %d-%d and %d-%d are not contiguous",
				prev.LowerBound, prev.UpperBound, g.LowerBound, g.UpperBound)
		}
	}

	// Cohort directory must be the exact Gender × AgeGroup cross-product.
	if len(c.cohorts) != len(c.genders)*len(c.ageGroups) {
		return fmt.Errorf("catalog: cohort directory has %d entries, want %d",
			len(c.cohorts), len(c.genders)*len(c.ageGroups))
	}
	for _, g := range c.genders {
		for _, ag := range c.ageGroups {
			key := domain.CohortKey(g.Value, ag)
			if _, ok := c.cohortsByKey[key]; !ok {
				return fmt.Errorf("catalog: missing cohort %q", key)
			}
		}
	}

	// Every event must reference a known domain and unit type, and every
	// unit of every unit type must exist in the unit table.
	for _, e := range c.events {
		if _, ok := c.domainsByValue[e.Domain.Value]; !ok {
			return fmt.Errorf("catalog: event %q references unknown domain %q", e.Value, e.Domain.Value)
		}
		if _, ok := c.unitTypesByValue[e.UnitType.Value]; !ok {
			return fmt.Errorf("catalog: event %q references unknown unit type %q", e.Value, e.UnitType.Value)
		}
	}
	for _, t := range c.unitTypes {
		for _, u := range t.Units {
			if _, ok := c.unitsByValue[u.Value]; !ok {
				return fmt.Errorf("catalog: unit type %q references unknown unit %q", t.Value, u.Value)
			}
		}
	}

	// Benchmark table keys must reference known events and cohorts.
	for eventValue, perCohort := range c.benchmarks {
		if _, ok := c.eventsByValue[eventValue]; !ok {
			return fmt.Errorf("catalog: benchmarks reference unknown event %q", eventValue)
		}
		for cohortKey := range perCohort {
			if _, ok := c.cohortsByKey[cohortKey]; !ok {
				return fmt.Errorf("catalog: benchmarks for event %q reference unknown cohort %q", eventValue, cohortKey)
			}
		}
	}

	return nil
}
