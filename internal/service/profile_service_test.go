package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/scalar-app/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeFileStorage records presign and delete calls without touching S3.
type fakeFileStorage struct {
	uploadedKeys []string
	deletedKeys  []string
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	f.uploadedKeys = append(f.uploadedKeys, objectKey)
	return "https://storage.test/upload/" + objectKey, nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (f *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	f.deletedKeys = append(f.deletedKeys, objectKey)
	return nil
}

func TestUpdateProfile(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return scoringTestNow }
	defer func() { timeNow = restore }()

	user := cohortedUser()
	user.Birthday = ""
	user.Gender = nil
	userRepo := newFakeUserRepo(&user)
	svc := NewProfileService(userRepo, catalog.Default(), &fakeFileStorage{})

	updated, err := svc.UpdateProfile(context.Background(), user.ID, "1990-07-21", "female")
	require.NoError(t, err)
	assert.Equal(t, "1990-07-21", updated.Birthday)
	require.NotNil(t, updated.Gender)
	assert.Equal(t, "female", updated.Gender.Value)
}

func TestUpdateProfile_Validation(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return scoringTestNow }
	defer func() { timeNow = restore }()

	user := cohortedUser()
	svc := NewProfileService(newFakeUserRepo(&user), catalog.Default(), &fakeFileStorage{})
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, user.ID, "not-a-date", "male")
	assert.ErrorIs(t, err, ErrInvalidBirthday)

	_, err = svc.UpdateProfile(ctx, user.ID, "1990-07-21", "unspecified")
	assert.ErrorIs(t, err, ErrInvalidGender)

	_, err = svc.UpdateProfile(ctx, primitive.NewObjectID(), "1990-07-21", "male")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_ClearsFields(t *testing.T) {
	user := cohortedUser()
	userRepo := newFakeUserRepo(&user)
	svc := NewProfileService(userRepo, catalog.Default(), &fakeFileStorage{})

	updated, err := svc.UpdateProfile(context.Background(), user.ID, "", "")
	require.NoError(t, err)
	assert.Empty(t, updated.Birthday)
	assert.Nil(t, updated.Gender)
}

func TestRequestAvatarUpload(t *testing.T) {
	user := cohortedUser()
	user.AvatarKey = "avatars/old/previous"
	userRepo := newFakeUserRepo(&user)
	fs := &fakeFileStorage{}
	svc := NewProfileService(userRepo, catalog.Default(), fs)

	uploadURL, err := svc.RequestAvatarUpload(context.Background(), user.ID, "image/png")
	require.NoError(t, err)
	assert.Contains(t, uploadURL, "avatars/"+user.ID.Hex()+"/")

	// The new key is persisted and the previous object cleaned up.
	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.AvatarKey)
	assert.NotEqual(t, "avatars/old/previous", stored.AvatarKey)
	assert.Equal(t, []string{"avatars/old/previous"}, fs.deletedKeys)
}

func TestGetAvatarURL(t *testing.T) {
	user := cohortedUser()
	user.AvatarKey = "avatars/abc/key"
	svc := NewProfileService(newFakeUserRepo(&user), catalog.Default(), &fakeFileStorage{})

	url, err := svc.GetAvatarURL(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/download/avatars/abc/key", url)
}

func TestGetAvatarURL_NoAvatar(t *testing.T) {
	user := cohortedUser()
	svc := NewProfileService(newFakeUserRepo(&user), catalog.Default(), &fakeFileStorage{})

	_, err := svc.GetAvatarURL(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
