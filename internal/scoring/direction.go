package scoring

import "alcyxob/scalar-app/internal/catalog"

// HigherIsBetter reports the comparison direction for a unit type: time-based
// events are won by lower raw values (faster), everything else (weight,
// repetitions, calories) by higher ones. The policy is keyed on unit type,
// not on event identity, so all events sharing a time unit type are
// lower-is-better.
func HigherIsBetter(unitTypeValue string) bool {
	return unitTypeValue != catalog.UnitTypeTime
}
