// internal/app/store/pagecontent/store.go

// Package pagecontent provides the generic page-document store. One
// Store serves every page type; operations take a content.PageType
// descriptor that names the collection, the section schema, and whether
// the draft/published/archived lifecycle applies.
package pagecontent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pearlpoint/clinicms/internal/domain/content"
	"github.com/pearlpoint/clinicms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound means no document satisfies the lookup (e.g. no
	// published copy exists on the public path).
	ErrNotFound = errors.New("page document not found")
	// ErrUnknownSection means a patch addressed a section name outside
	// the page type's schema.
	ErrUnknownSection = errors.New("unknown section")
	// ErrNoLifecycle means a lifecycle operation was applied to a page
	// type without a status machine.
	ErrNoLifecycle = errors.New("page type has no lifecycle")
)

// Store provides access to the per-page-type document collections.
type Store struct {
	db *mongo.Database
}

// New creates a new page-content store.
func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) coll(pt content.PageType) *mongo.Collection {
	return s.db.Collection(pt.Collection)
}

// singletonFilter addresses the one meaningful document of a
// non-lifecycle page type. The constant key carries a unique index, so
// two racing first reads cannot persist two documents.
func singletonFilter() bson.M {
	return bson.M{"singleton": true}
}

func latestFirst() bson.D {
	return bson.D{{Key: "created_at", Value: -1}}
}

// Get returns the page type's document, seeding the default content
// tree if none exists yet. For the lifecycle-bearing type it returns
// the most recently created document regardless of status; this is the
// admin read path.
func (s *Store) Get(ctx context.Context, pt content.PageType) (*models.PageDocument, error) {
	var doc models.PageDocument
	var err error
	if pt.Lifecycle {
		opts := options.FindOne().SetSort(latestFirst())
		err = s.coll(pt).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	} else {
		err = s.coll(pt).FindOne(ctx, singletonFilter()).Decode(&doc)
	}
	if err == mongo.ErrNoDocuments {
		return s.seed(ctx, pt)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// seed persists the default content tree and returns the stored
// document. Non-lifecycle types upsert on the singleton filter so a
// concurrent seed collapses to a single durable document; the
// lifecycle type inserts a fresh draft.
func (s *Store) seed(ctx context.Context, pt content.PageType) (*models.PageDocument, error) {
	now := time.Now().UTC()
	doc := models.PageDocument{
		ID:        primitive.NewObjectID(),
		PageType:  pt.Name,
		Sections:  content.DefaultSections(pt.Name),
		CreatedBy: models.SeedActor,
		UpdatedBy: models.SeedActor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if pt.Lifecycle {
		doc.Status = models.StatusDraft
		if _, err := s.coll(pt).InsertOne(ctx, doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}

	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        doc.ID,
			"singleton":  true,
			"page_type":  doc.PageType,
			"sections":   doc.Sections,
			"created_by": doc.CreatedBy,
			"updated_by": doc.UpdatedBy,
			"created_at": doc.CreatedAt,
			"updated_at": doc.UpdatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out models.PageDocument
	if err := s.coll(pt).FindOneAndUpdate(ctx, singletonFilter(), update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPublished returns the published document for the lifecycle type.
// There is no seeding on this path; a site with nothing published gets
// ErrNotFound, not a silently created draft.
func (s *Store) GetPublished(ctx context.Context, pt content.PageType) (*models.PageDocument, error) {
	if !pt.Lifecycle {
		return nil, ErrNoLifecycle
	}
	opts := options.FindOne().SetSort(latestFirst())
	var doc models.PageDocument
	err := s.coll(pt).FindOne(ctx, bson.M{"status": models.StatusPublished}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// IncrementViewCount bumps the view counter by one. Callers treat this
// as fire-and-forget relative to the read response; the counter is
// eventually consistent by design.
func (s *Store) IncrementViewCount(ctx context.Context, pt content.PageType, id primitive.ObjectID) error {
	_, err := s.coll(pt).UpdateByID(ctx, id, bson.M{"$inc": bson.M{"view_count": 1}})
	return err
}

// Replace applies a whole-document update with the page type's PUT
// semantics: Merge keeps sections absent from the payload, Replace
// swaps the entire sections tree. Section names outside the page
// schema are dropped. Creates the document if none exists.
func (s *Store) Replace(ctx context.Context, pt content.PageType, sections map[string]bson.M, actor string) (*models.PageDocument, error) {
	now := time.Now().UTC()

	known := make(map[string]bson.M, len(sections))
	for name, payload := range sections {
		if pt.HasSection(name) {
			known[name] = payload
		}
	}

	set := bson.M{
		"updated_at": now,
		"updated_by": actor,
	}
	if pt.Update == content.Replace {
		set["sections"] = known
	} else {
		for name, payload := range known {
			set["sections."+name] = payload
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	if pt.Lifecycle {
		cur, err := s.Get(ctx, pt)
		if err != nil {
			return nil, err
		}
		var out models.PageDocument
		if err := s.coll(pt).FindOneAndUpdate(ctx, bson.M{"_id": cur.ID}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"singleton":  true,
			"page_type":  pt.Name,
			"created_by": actor,
			"created_at": now,
		},
	}
	opts = opts.SetUpsert(true)
	var out models.PageDocument
	if err := s.coll(pt).FindOneAndUpdate(ctx, singletonFilter(), update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchSection merges payload into one named section, one level deep:
// each top-level payload key overwrites the matching key of the stored
// section, other keys are preserved, and list values are replaced
// wholesale. Seeds the default document first if none exists. Returns
// the updated section.
func (s *Store) PatchSection(ctx context.Context, pt content.PageType, section string, payload bson.M, actor string) (bson.M, error) {
	if !pt.HasSection(section) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	doc, err := s.Get(ctx, pt)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	set := bson.M{
		"updated_at": now,
		"updated_by": actor,
	}
	for key, value := range payload {
		set["sections."+section+"."+key] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.PageDocument
	if err := s.coll(pt).FindOneAndUpdate(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set}, opts).Decode(&out); err != nil {
		return nil, err
	}
	return out.Sections[section], nil
}

// TransitionStatus moves the newest document of the lifecycle type to
// the given status. Any state may move to any other; the one invariant
// is that published_at is written only on the first transition into
// published and never touched again.
func (s *Store) TransitionStatus(ctx context.Context, pt content.PageType, status models.PageStatus, actor string) (*models.PageDocument, error) {
	if !pt.Lifecycle {
		return nil, ErrNoLifecycle
	}

	opts := options.FindOne().SetSort(latestFirst())
	var doc models.PageDocument
	err := s.coll(pt).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	set := bson.M{
		"status":     status,
		"updated_at": now,
		"updated_by": actor,
	}
	if status == models.StatusPublished && doc.PublishedAt == nil {
		set["published_at"] = now
	}

	upOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.PageDocument
	if err := s.coll(pt).FindOneAndUpdate(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set}, upOpts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset deletes every document of the page type. The next Get reseeds
// from the default content provider.
func (s *Store) Reset(ctx context.Context, pt content.PageType) (int64, error) {
	res, err := s.coll(pt).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
