// internal/app/store/category/categorystore.go
package category

import (
	"context"
	"errors"
	"time"

	"github.com/pearlpoint/clinicms/internal/app/system/slug"
	"github.com/pearlpoint/clinicms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound means no category matches the given id.
	ErrNotFound = errors.New("category not found")
	// ErrDuplicate means the name or slug is already taken.
	ErrDuplicate = errors.New("category name or slug already exists")
	// ErrDefaultProtected means the operation would delete or
	// deactivate a built-in category.
	ErrDefaultProtected = errors.New("default category is protected")
)

// Store provides access to the service_categories collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new category store.
func New(db *mongo.Database) *Store {
	return &Store{
		c: db.Collection("service_categories"),
	}
}

// List returns categories sorted by order then name. When
// includeInactive is false, deactivated categories are filtered out;
// this is the public navigation view.
func (s *Store) List(ctx context.Context, includeInactive bool) ([]models.ServiceCategory, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["is_active"] = true
	}

	cursor, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.ServiceCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetByID retrieves a category by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceCategory, error) {
	var cat models.ServiceCategory
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cat, nil
}

// CreateInput contains the input for creating a category.
type CreateInput struct {
	Name        string
	Slug        string
	DisplayName string
	Description string
	Color       string
	Icon        string
	Order       int
	CreatedBy   string
}

// Create creates a new category. An empty Slug is derived from Name.
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.ServiceCategory, error) {
	sl := input.Slug
	if sl == "" {
		sl = slug.Make(input.Name)
	}
	display := input.DisplayName
	if display == "" {
		display = input.Name
	}

	now := time.Now().UTC()
	cat := models.ServiceCategory{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Slug:        sl,
		DisplayName: display,
		Description: input.Description,
		Color:       input.Color,
		Icon:        input.Icon,
		Order:       input.Order,
		IsActive:    true,
		CreatedBy:   input.CreatedBy,
		UpdatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.c.InsertOne(ctx, cat); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return &cat, nil
}

// UpdateInput contains the input for updating a category. Nil fields
// are left unchanged.
type UpdateInput struct {
	Name        *string
	Slug        *string
	DisplayName *string
	Description *string
	Color       *string
	Icon        *string
	Order       *int
	IsActive    *bool
	UpdatedBy   string
}

// Update updates a category. Renaming re-derives the slug unless an
// explicit slug is supplied in the same call. Built-in categories
// cannot be deactivated.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, input UpdateInput) (*models.ServiceCategory, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.IsDefault && input.IsActive != nil && !*input.IsActive {
		return nil, ErrDefaultProtected
	}

	set := bson.M{
		"updated_at": time.Now().UTC(),
		"updated_by": input.UpdatedBy,
	}
	if input.Name != nil {
		set["name"] = *input.Name
		if input.Slug == nil {
			set["slug"] = slug.Make(*input.Name)
		}
	}
	if input.Slug != nil {
		set["slug"] = *input.Slug
	}
	if input.DisplayName != nil {
		set["display_name"] = *input.DisplayName
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Color != nil {
		set["color"] = *input.Color
	}
	if input.Icon != nil {
		set["icon"] = *input.Icon
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.ServiceCategory
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &out, nil
}

// Delete deletes a category. Built-in categories cannot be deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cur.IsDefault {
		return ErrDefaultProtected
	}

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DefaultCategory describes one built-in category seeded at startup.
type DefaultCategory struct {
	Name        string
	DisplayName string
	Description string
	Color       string
	Icon        string
	Order       int
}

// Defaults returns the built-in categories every deployment starts with.
func Defaults() []DefaultCategory {
	return []DefaultCategory{
		{
			Name:        "Preventive Care",
			DisplayName: "Preventive Care",
			Description: "Cleanings, exams, and treatments that stop problems before they start.",
			Color:       "#2e7d32",
			Icon:        "shield",
			Order:       1,
		},
		{
			Name:        "Restorative Dentistry",
			DisplayName: "Restorative Dentistry",
			Description: "Repairing damaged or missing teeth.",
			Color:       "#1565c0",
			Icon:        "tooth",
			Order:       2,
		},
		{
			Name:        "Cosmetic Dentistry",
			DisplayName: "Cosmetic Dentistry",
			Description: "Whitening, veneers, and smile improvements.",
			Color:       "#6a1b9a",
			Icon:        "sparkle",
			Order:       3,
		},
	}
}

// SeedDefaults inserts any built-in categories that do not exist yet,
// matching by slug. Existing categories are never modified, so the
// seed is safe to run on every startup. Returns the names created and
// the names skipped.
func (s *Store) SeedDefaults(ctx context.Context) (created, skipped []string, err error) {
	now := time.Now().UTC()

	for _, def := range Defaults() {
		sl := slug.Make(def.Name)

		n, err := s.c.CountDocuments(ctx, bson.M{"slug": sl})
		if err != nil {
			return created, skipped, err
		}
		if n > 0 {
			skipped = append(skipped, def.Name)
			continue
		}

		cat := models.ServiceCategory{
			ID:          primitive.NewObjectID(),
			Name:        def.Name,
			Slug:        sl,
			DisplayName: def.DisplayName,
			Description: def.Description,
			Color:       def.Color,
			Icon:        def.Icon,
			Order:       def.Order,
			IsDefault:   true,
			IsActive:    true,
			CreatedBy:   models.SeedActor,
			UpdatedBy:   models.SeedActor,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := s.c.InsertOne(ctx, cat); err != nil {
			// A concurrent seed won the race; treat as already present.
			if isDuplicateKeyError(err) {
				skipped = append(skipped, def.Name)
				continue
			}
			return created, skipped, err
		}
		created = append(created, def.Name)
	}

	return created, skipped, nil
}

// isDuplicateKeyError checks if the error is a duplicate key error.
func isDuplicateKeyError(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return false
}
