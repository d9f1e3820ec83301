package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/domain"
	"alcyxob/scalar-app/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const submissionCollectionName = "submissions"

// submissionDoc is the persisted shape of a submission. Catalog entities are
// stored by their value keys only; the full Event/Unit objects are rebuilt
// from the catalog on read so stored documents never go stale against
// catalog updates. The user demographic snapshot is denormalized in full
// since cohort resolution needs it as of submit time.
type submissionDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"userId"`
	User       userSnapshot       `bson:"user"`
	EventValue string             `bson:"eventValue"`
	RawValue   string             `bson:"rawValue"`
	Value      float64            `bson:"value"`
	UnitValue  string             `bson:"unitValue,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

type userSnapshot struct {
	ID       primitive.ObjectID `bson:"id"`
	Name     string             `bson:"name,omitempty"`
	Birthday string             `bson:"birthday,omitempty"`
	Gender   *domain.Gender     `bson:"gender,omitempty"`
}

// mongoSubmissionRepository implements repository.SubmissionRepository.
// It is the single hydration boundary: raw documents become fully-typed
// domain.Submission values here and nowhere else.
type mongoSubmissionRepository struct {
	collection *mongo.Collection
	catalog    *catalog.Catalog
}

// NewMongoSubmissionRepository creates a new submission repository over the
// given database and catalog.
func NewMongoSubmissionRepository(db *mongo.Database, cat *catalog.Catalog) repository.SubmissionRepository {
	return &mongoSubmissionRepository{
		collection: db.Collection(submissionCollectionName),
		catalog:    cat,
	}
}

// Create inserts a new submission. Submissions are immutable after creation.
func (r *mongoSubmissionRepository) Create(ctx context.Context, submission *domain.Submission) (primitive.ObjectID, error) {
	if submission.Event.Value == "" || submission.User.ID.IsZero() {
		return primitive.NilObjectID, errors.New("submission event and user are required")
	}

	doc := submissionDoc{
		ID:     primitive.NewObjectID(),
		UserID: submission.User.ID,
		User: userSnapshot{
			ID:       submission.User.ID,
			Name:     submission.User.Name,
			Birthday: submission.User.Birthday,
			Gender:   submission.User.Gender,
		},
		EventValue: submission.Event.Value,
		RawValue:   submission.RawValue,
		Value:      submission.Value,
		CreatedAt:  time.Now().UTC(),
	}
	if submission.Unit != nil {
		doc.UnitValue = submission.Unit.Value
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	submission.ID = insertedID
	submission.CreatedAt = doc.CreatedAt
	return insertedID, nil
}

// GetByID retrieves and hydrates a single submission.
func (r *mongoSubmissionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Submission, error) {
	var doc submissionDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	submission, err := r.hydrate(doc)
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByUserID retrieves all submissions for a user, newest first. Documents
// referencing events no longer in the catalog are skipped with a warning;
// they cannot be scored and carry no event metadata to display.
func (r *mongoSubmissionRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []submissionDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	submissions := make([]domain.Submission, 0, len(docs))
	for _, doc := range docs {
		submission, err := r.hydrate(doc)
		if err != nil {
			logrus.WithField("submissionId", doc.ID.Hex()).
				WithField("event", doc.EventValue).
				Warnf("skipping submission: %v", err)
			continue
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// hydrate maps a persisted document to a fully-typed submission using the
// catalog. All reads funnel through here.
func (r *mongoSubmissionRepository) hydrate(doc submissionDoc) (domain.Submission, error) {
	event, ok := r.catalog.EventByValue(doc.EventValue)
	if !ok {
		return domain.Submission{}, errors.New("unknown event " + doc.EventValue)
	}

	submission := domain.Submission{
		ID: doc.ID,
		User: domain.User{
			ID:       doc.User.ID,
			Name:     doc.User.Name,
			Birthday: doc.User.Birthday,
			Gender:   doc.User.Gender,
		},
		Event:     event,
		RawValue:  doc.RawValue,
		Value:     doc.Value,
		CreatedAt: doc.CreatedAt,
	}

	if doc.UnitValue != "" {
		if unit, ok := r.catalog.UnitByValue(doc.UnitValue); ok {
			submission.Unit = &unit
		}
	}

	return submission, nil
}

// EnsureSubmissionIndexes creates necessary indexes for the submissions collection.
// Call this once during application startup.
func EnsureSubmissionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "eventValue", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
