// internal/app/store/lead/leadstore.go
package lead

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pearlpoint/clinicms/internal/app/store/storeutil"
	"github.com/pearlpoint/clinicms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound means no lead submission matches the given id.
var ErrNotFound = errors.New("lead submission not found")

// Store provides access to the lead_submissions collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new lead store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("lead_submissions"),
	}
}

// CreateInput contains the input for recording a lead submission.
type CreateInput struct {
	FormType  models.FormType
	FormData  bson.M
	IPAddress string
	UserAgent string
}

// Create records a new lead submission in status "new" and assigns it
// a reference id the caller can quote back to the patient.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.LeadSubmission, error) {
	now := time.Now().UTC()
	lead := models.LeadSubmission{
		ID:        primitive.NewObjectID(),
		Reference: uuid.NewString(),
		FormType:  input.FormType,
		FormData:  input.FormData,
		Status:    models.LeadNew,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.c.InsertOne(ctx, lead); err != nil {
		return nil, err
	}

	return &lead, nil
}

// ListFilter narrows List results. Zero values mean no filtering.
type ListFilter struct {
	FormType models.FormType
	Status   models.LeadStatus
}

// List returns lead submissions newest first with the total count of
// matches across all pages.
func (s *Store) List(ctx context.Context, filter ListFilter, limit, page int64) ([]models.LeadSubmission, int64, error) {
	q := bson.M{}
	if filter.FormType != "" {
		q["form_type"] = filter.FormType
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}

	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := storeutil.Paginate(limit, page).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var leads []models.LeadSubmission
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// GetByID retrieves a lead submission by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.LeadSubmission, error) {
	var lead models.LeadSubmission
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// UpdateInput contains the input for updating a lead submission. Nil
// fields are left unchanged.
type UpdateInput struct {
	Status     *models.LeadStatus
	Notes      *string
	AssignedTo *string
}

// Update updates the workflow fields of a lead submission.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.LeadSubmission, error) {
	set := bson.M{"updated_at": time.Now().UTC()}

	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}
	if input.AssignedTo != nil {
		set["assigned_to"] = *input.AssignedTo
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.LeadSubmission
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete deletes a lead submission.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
