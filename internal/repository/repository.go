package repository

import (
	"context"

	"alcyxob/scalar-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, birthday string, gender *domain.Gender) error
	SetAvatarKey(ctx context.Context, id primitive.ObjectID, avatarKey string) error
}

// SubmissionRepository defines the interface for interacting with logged
// performances. Implementations must return fully hydrated submissions:
// the embedded Event carries its Domain and UnitType, and the user snapshot
// carries the demographics needed for cohort resolution. The scoring engine
// does no joins of its own.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Submission, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Submission, error)
}
