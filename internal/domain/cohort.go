package domain

import "fmt"

// Cohort is one (gender, age range) bucket of the Gender × AgeGroup
// cross-product. Benchmark lookups are keyed by Cohort.Key.
type Cohort struct {
	Key    string   `bson:"key" json:"key"` // e.g. "male_18_29"
	Gender Gender   `bson:"gender" json:"gender"`
	Age    AgeGroup `bson:"age" json:"age"`
}

// CohortKey builds the stable lookup key for a gender value and age group.
func CohortKey(genderValue string, age AgeGroup) string {
	return fmt.Sprintf("%s_%d_%d", genderValue, age.LowerBound, age.UpperBound)
}

// Label returns a human-readable cohort description for display,
// e.g. "Male, 18–29".
func (c Cohort) Label() string {
	return fmt.Sprintf("%s, %d–%d", c.Gender.Label, c.Age.LowerBound, c.Age.UpperBound)
}
