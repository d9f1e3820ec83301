package service

import (
	"context"
	"errors"
	"fmt"

	"time"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/repository"
	"alcyxob/scalar-app/internal/scoring"
	"alcyxob/scalar-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidGender   = errors.New("unknown gender value")
	ErrInvalidBirthday = errors.New("birthday must be an ISO date (YYYY, YYYY-MM or YYYY-MM-DD)")
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// ProfileService manages the demographic profile (the inputs to cohort
// resolution) and the user's avatar.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, birthday, genderValue string) (*domain.User, error)

	// RequestAvatarUpload allocates an object key for the user's avatar and
	// returns a presigned PUT URL the client uploads to directly.
	RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (uploadURL string, err error)
	// GetAvatarURL returns a presigned GET URL for the user's avatar.
	GetAvatarURL(ctx context.Context, userID primitive.ObjectID) (string, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	userRepo repository.UserRepository
	catalog  *catalog.Catalog
	storage  storage.FileStorage
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, cat *catalog.Catalog, fileStorage storage.FileStorage) ProfileService {
	return &profileService{
		userRepo: userRepo,
		catalog:  cat,
		storage:  fileStorage,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile sets birthday and gender. Either may be empty to clear it;
// non-empty values are validated against the catalog before persisting.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, birthday, genderValue string) (*domain.User, error) {
	if birthday != "" {
		if _, err := scoring.AgeAt(birthday, timeNow()); err != nil {
			return nil, ErrInvalidBirthday
		}
	}

	var gender *domain.Gender
	if genderValue != "" {
		g, ok := s.catalog.GenderByValue(genderValue)
		if !ok {
			return nil, ErrInvalidGender
		}
		gender = &g
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, birthday, gender); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

func (s *profileService) RequestAvatarUpload(ctx context.Context, userID primitive.ObjectID, contentType string) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	objectKey := fmt.Sprintf("avatars/%s/%s", user.ID.Hex(), uuid.NewString())
	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", err
	}

	// Record the key up front; an abandoned upload just leaves a dangling
	// key whose GET URL 404s, which the client treats as "no avatar".
	if err := s.userRepo.SetAvatarKey(ctx, userID, objectKey); err != nil {
		return "", err
	}

	// Best effort cleanup of the previous avatar object.
	if user.AvatarKey != "" {
		_ = s.storage.DeleteObject(ctx, user.AvatarKey)
	}

	return uploadURL, nil
}

func (s *profileService) GetAvatarURL(ctx context.Context, userID primitive.ObjectID) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if user.AvatarKey == "" {
		return "", ErrUserNotFound
	}
	return s.storage.GeneratePresignedDownloadURL(ctx, user.AvatarKey, storage.DefaultPresignedURLExpiry)
}
