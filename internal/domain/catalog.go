package domain

// Gender is one of the fixed demographic genders used for cohort bucketing.
type Gender struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Value string `bson:"value" json:"value"` // unique key, e.g. "male"
	Label string `bson:"label" json:"label"` // display string, e.g. "Male"
}

// AgeGroup is an inclusive [LowerBound, UpperBound] age range in years.
// The configured set must be contiguous and non-overlapping.
type AgeGroup struct {
	ID         string `bson:"id,omitempty" json:"id,omitempty"`
	LowerBound int    `bson:"lowerBound" json:"lowerBound"`
	UpperBound int    `bson:"upperBound" json:"upperBound"`
}

// Contains reports whether age falls inside the group (bounds inclusive).
func (g AgeGroup) Contains(age int) bool {
	return age >= g.LowerBound && age <= g.UpperBound
}

// Domain is a logical fitness category, e.g. "Muscular Strength".
type Domain struct {
	ID          string `bson:"id,omitempty" json:"id,omitempty"`
	Label       string `bson:"label" json:"label"`
	Value       string `bson:"value" json:"value"` // unique key
	MobileLabel string `bson:"mobileLabel,omitempty" json:"mobileLabel,omitempty"`
	Logo        string `bson:"logo" json:"logo"` // icon reference for the UI
}

// Unit is a concrete measurement unit, e.g. pounds or seconds.
type Unit struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"` // unique key
}

// UnitType groups the units valid for one kind of measurement
// (weight, time, repetitions, calories).
type UnitType struct {
	ID    string `bson:"id,omitempty" json:"id,omitempty"`
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"` // unique key
	Units []Unit `bson:"units" json:"units"`
}

// HasUnit reports whether unitValue is one of the type's valid units.
func (t UnitType) HasUnit(unitValue string) bool {
	for _, u := range t.Units {
		if u.Value == unitValue {
			return true
		}
	}
	return false
}

// Event is a single measurable performance test. Every event belongs to
// exactly one Domain and has exactly one UnitType; identity is the Value key.
type Event struct {
	ID          string   `bson:"id,omitempty" json:"id,omitempty"`
	Label       string   `bson:"label" json:"label"`
	Value       string   `bson:"value" json:"value"` // unique key, e.g. "deadlift"
	UnitType    UnitType `bson:"unitType" json:"unitType"`
	Domain      Domain   `bson:"domain" json:"domain"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
}

// BenchmarkLevel anchors the normalized scale for one (event, cohort) pair.
// Poor maps to 0 and Elite to 100. For lower-is-better events Poor is
// numerically greater than Elite; the normalizer handles both orientations.
type BenchmarkLevel struct {
	Poor  float64 `bson:"poor" json:"poor"`
	Elite float64 `bson:"elite" json:"elite"`
	Unit  Unit    `bson:"unit" json:"unit"`
}
