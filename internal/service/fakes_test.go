package service

import (
	"context"

	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	stored := *user // persist a snapshot, later caller mutations must not leak in
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, birthday string, gender *domain.Gender) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Birthday = birthday
	u.Gender = gender
	return nil
}

func (r *fakeUserRepo) SetAvatarKey(ctx context.Context, id primitive.ObjectID, avatarKey string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.AvatarKey = avatarKey
	return nil
}

// fakeSubmissionRepo is an in-memory SubmissionRepository. getByUserIDCalls
// counts fetches so tests can assert batch scoring hits storage only once.
type fakeSubmissionRepo struct {
	submissions []domain.Submission

	getByUserIDErr   error
	getByUserIDCalls int
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *domain.Submission) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	submission.ID = id
	r.submissions = append(r.submissions, *submission)
	return id, nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Submission, error) {
	for _, s := range r.submissions {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeSubmissionRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Submission, error) {
	r.getByUserIDCalls++
	if r.getByUserIDErr != nil {
		return nil, r.getByUserIDErr
	}
	var out []domain.Submission
	for _, s := range r.submissions {
		if s.User.ID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}
