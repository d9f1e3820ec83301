package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one logged performance for one event. Submissions are
// immutable after creation; a user may log the same event any number of
// times and scoring picks the best qualifying one.
type Submission struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User     User               `bson:"user" json:"user"`   // denormalized snapshot at submit time
	Event    Event              `bson:"event" json:"event"` // fully hydrated, incl. domain and unit type
	RawValue string             `bson:"rawValue" json:"rawValue"` // literal user input, preserved for display
	// Value is the resolved business value: seconds for time-based events,
	// the numeric magnitude otherwise.
	Value     float64   `bson:"value" json:"value"`
	Unit      *Unit     `bson:"unit,omitempty" json:"unit,omitempty"` // nil for time-based events
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
