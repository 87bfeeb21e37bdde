// internal/domain/models/pagedocument.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageStatus is the lifecycle state of a page document.
// Only the dental-exams page type uses the lifecycle; every other page
// type has exactly one meaningful document and no status.
type PageStatus string

const (
	StatusDraft     PageStatus = "draft"
	StatusPublished PageStatus = "published"
	StatusArchived  PageStatus = "archived"
)

// IsValidPageStatus checks if a status value is one of the known states.
func IsValidPageStatus(s PageStatus) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// PageDocument is one marketing page's editable content tree.
//
// Sections maps a section name (hero, faq, cta, ...) to its content
// object. The set of valid section names is fixed per page type and
// lives in the content descriptor table, not in the document itself.
//
// JSON tags are camelCase: the admin front end consumes the legacy wire
// shape and must not see renamed fields.
type PageDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageType string             `bson:"page_type" json:"pageType"`
	Sections map[string]bson.M  `bson:"sections" json:"sections"`

	// Lifecycle fields (dental-exams only).
	Status PageStatus `bson:"status,omitempty" json:"status,omitempty"`
	// PublishedAt is set on the first transition into published and is
	// never overwritten by later transitions.
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	ViewCount   int64      `bson:"view_count,omitempty" json:"viewCount,omitempty"`

	// Audit fields.
	CreatedBy string    `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updatedBy,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// SeedActor is recorded as createdBy when a document is created by the
// seed-on-first-read path rather than by an authenticated editor.
const SeedActor = "system"
