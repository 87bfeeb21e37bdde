// internal/domain/content/descriptors.go

// Package content defines the page-type descriptor table and the default
// content trees. Every marketing page the API serves is one row in this
// table; the generic page-content store and handlers are parameterized
// by a descriptor instead of being duplicated per page.
package content

// UpdateMode selects the PUT / semantics for a page type.
//
// Merge keeps sections that are absent from the payload; Replace swaps
// the whole sections tree for the payload. Both exist because the admin
// front end was built against both shapes and depends on them per page.
type UpdateMode int

const (
	Merge UpdateMode = iota
	Replace
)

// PageType describes one marketing page family.
type PageType struct {
	// Name is the URL identifier, e.g. "night-guards".
	Name string
	// Collection is the MongoDB collection holding this page's documents.
	Collection string
	// Sections is the closed set of patchable section names.
	Sections []string
	// Lifecycle enables the draft/published/archived status machine,
	// the public published-only read with view counting, and the
	// admin newest-document read. Only dental-exams carries it.
	Lifecycle bool
	// Update selects merge or whole-replace semantics for PUT /.
	Update UpdateMode
	// Wrapped selects the {success, data, message} response envelope;
	// false means the route returns the bare document.
	Wrapped bool
}

// HasSection checks a section name against the descriptor's closed set.
func (pt PageType) HasSection(name string) bool {
	for _, s := range pt.Sections {
		if s == name {
			return true
		}
	}
	return false
}

// Page type names.
const (
	DentalExams        = "dental-exams"
	TeethCleaning      = "teeth-cleaning"
	FluorideTreatments = "fluoride-treatments"
	DentalSealants     = "dental-sealants"
	NightGuards        = "night-guards"
	SportsMouthguards  = "sports-mouthguards"
	TMJConsult         = "tmj-consult"
	EmergencyCare      = "emergency-care"
	NewPatients        = "new-patients"
	About              = "about"
	Home               = "home"
)

var pageTypes = []PageType{
	{
		Name:       DentalExams,
		Collection: "dental_exam_pages",
		Sections:   []string{"hero", "overview", "steps", "faq", "cta"},
		Lifecycle:  true,
		Update:     Merge,
		Wrapped:    true,
	},
	{
		Name:       TeethCleaning,
		Collection: "teeth_cleaning_pages",
		Sections:   []string{"hero", "intro", "benefits", "faq", "cta"},
		Update:     Merge,
		Wrapped:    true,
	},
	{
		Name:       FluorideTreatments,
		Collection: "fluoride_treatment_pages",
		Sections:   []string{"hero", "intro", "benefits", "cta"},
		Update:     Merge,
	},
	{
		Name:       DentalSealants,
		Collection: "dental_sealant_pages",
		Sections:   []string{"hero", "intro", "candidates", "faq", "cta"},
		Update:     Merge,
	},
	{
		Name:       NightGuards,
		Collection: "night_guard_pages",
		Sections:   []string{"hero", "intro", "benefits", "care", "faq", "cta"},
		Update:     Merge,
		Wrapped:    true,
	},
	{
		Name:       SportsMouthguards,
		Collection: "sports_mouthguard_pages",
		Sections:   []string{"hero", "intro", "types", "faq", "cta"},
		Update:     Replace,
	},
	{
		Name:       TMJConsult,
		Collection: "tmj_consult_pages",
		Sections:   []string{"hero", "symptoms", "treatment", "faq", "cta"},
		Update:     Merge,
		Wrapped:    true,
	},
	{
		Name:       EmergencyCare,
		Collection: "emergency_care_pages",
		Sections:   []string{"hero", "situations", "steps", "cta"},
		Update:     Replace,
	},
	{
		Name:       NewPatients,
		Collection: "new_patient_pages",
		Sections:   []string{"hero", "expectations", "forms", "insurance", "cta"},
		Update:     Merge,
		Wrapped:    true,
	},
	{
		Name:       About,
		Collection: "about_pages",
		Sections:   []string{"hero", "team", "values", "cta"},
		Update:     Merge,
	},
	{
		Name:       Home,
		Collection: "home_pages",
		Sections:   []string{"hero", "services", "testimonials", "cta"},
		Update:     Replace,
		Wrapped:    true,
	},
}

// All returns every page-type descriptor in mount order.
func All() []PageType {
	return pageTypes
}

// Lookup resolves a page-type name to its descriptor.
func Lookup(name string) (PageType, bool) {
	for _, pt := range pageTypes {
		if pt.Name == name {
			return pt, true
		}
	}
	return PageType{}, false
}
