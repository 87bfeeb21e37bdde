// internal/domain/models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormType identifies which public form produced a lead submission.
type FormType string

const (
	FormEmergency   FormType = "emergency"
	FormNewPatient  FormType = "new-patient"
	FormContact     FormType = "contact"
	FormAppointment FormType = "appointment"
)

// IsValidFormType checks if a form type is one of the public forms.
func IsValidFormType(t FormType) bool {
	switch t {
	case FormEmergency, FormNewPatient, FormContact, FormAppointment:
		return true
	}
	return false
}

// LeadStatus is the follow-up workflow state of a lead submission.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadScheduled LeadStatus = "scheduled"
	LeadCompleted LeadStatus = "completed"
	LeadCancelled LeadStatus = "cancelled"
)

// IsValidLeadStatus checks if a status is a known workflow state.
func IsValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadContacted, LeadScheduled, LeadCompleted, LeadCancelled:
		return true
	}
	return false
}

// LeadSubmission is one inbound form submission from the public site.
// FormData is stored as submitted; its shape is not validated beyond
// being present.
type LeadSubmission struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reference  string             `bson:"reference" json:"reference"`
	FormType   FormType           `bson:"form_type" json:"formType"`
	FormData   bson.M             `bson:"form_data" json:"formData"`
	Status     LeadStatus         `bson:"status" json:"status"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	AssignedTo string             `bson:"assigned_to,omitempty" json:"assignedTo,omitempty"`

	IPAddress string `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
	UserAgent string `bson:"user_agent,omitempty" json:"userAgent,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
