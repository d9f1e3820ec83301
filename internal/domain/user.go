package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an athlete tracking their own performance.
// Birthday and Gender are optional; both are required before a cohort
// (and therefore any score) can be resolved for the user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // never expose this via JSON
	Birthday     string             `bson:"birthday,omitempty" json:"birthday,omitempty"` // ISO date, YYYY[-MM[-DD]]
	Gender       *Gender            `bson:"gender,omitempty" json:"gender,omitempty"`
	AvatarKey    string             `bson:"avatarKey,omitempty" json:"-"` // object key in avatar storage
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasDemographics reports whether the profile carries everything cohort
// resolution needs.
func (u *User) HasDemographics() bool {
	return u.Birthday != "" && u.Gender != nil && u.Gender.Value != ""
}
