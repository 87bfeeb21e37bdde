// internal/domain/models/category.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceCategory classifies clinic services ("Preventive Care",
// "Restorative Dentistry", ...). Pages and navigation reference
// categories by slug.
type ServiceCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	DisplayName string             `bson:"display_name" json:"displayName"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Order       int                `bson:"order" json:"order"`

	// IsDefault marks the built-in categories seeded at startup.
	// Default categories cannot be deleted or deactivated.
	IsDefault bool `bson:"is_default" json:"isDefault"`
	IsActive  bool `bson:"is_active" json:"isActive"`

	CreatedBy string    `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updatedBy,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
