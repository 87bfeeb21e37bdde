package pagecontent

import (
	"errors"
	"sync"
	"testing"

	"github.com/pearlpoint/clinicms/internal/domain/content"
	"github.com/pearlpoint/clinicms/internal/domain/models"
	"github.com/pearlpoint/clinicms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func mustLookup(t *testing.T, name string) content.PageType {
	t.Helper()
	pt, ok := content.Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q) did not find descriptor", name)
	}
	return pt
}

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	if store == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStore_Get_SeedsDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.TeethCleaning)

	doc, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if doc.ID.IsZero() {
		t.Error("ID should not be zero")
	}
	if doc.PageType != content.TeethCleaning {
		t.Errorf("PageType = %q, want %q", doc.PageType, content.TeethCleaning)
	}
	if doc.CreatedBy != models.SeedActor {
		t.Errorf("CreatedBy = %q, want %q", doc.CreatedBy, models.SeedActor)
	}
	for _, section := range pt.Sections {
		if _, ok := doc.Sections[section]; !ok {
			t.Errorf("seeded document missing section %q", section)
		}
	}

	hero := doc.Sections["hero"]
	if hero["title"] != "Professional Teeth Cleaning" {
		t.Errorf("hero title = %v, want seed content", hero["title"])
	}
}

func TestStore_Get_SeedsOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.About)

	first, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("first Get() error = %v", err)
	}
	second, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("second Get() error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("second Get() returned a different document: %v vs %v", first.ID, second.ID)
	}

	count, err := db.Collection(pt.Collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments() error = %v", err)
	}
	if count != 1 {
		t.Errorf("collection has %d documents, want 1", count)
	}
}

func TestStore_Get_ConcurrentSeed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)

	pt := mustLookup(t, content.DentalSealants)

	// Racing first reads must all come back with the full default
	// tree, and the singleton index keeps the collection at one
	// document no matter how the upserts interleave.
	const callers = 8
	var wg sync.WaitGroup
	docs := make([]*models.PageDocument, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx, cancel := testutil.TestContext()
			defer cancel()
			docs[i], errs[i] = store.Get(ctx, pt)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("Get() #%d error = %v", i, errs[i])
		}
		for _, section := range pt.Sections {
			if _, ok := docs[i].Sections[section]; !ok {
				t.Errorf("Get() #%d missing section %q", i, section)
			}
		}
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	count, err := db.Collection(pt.Collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments() error = %v", err)
	}
	if count != 1 {
		t.Errorf("collection has %d documents, want 1", count)
	}
}

func TestStore_Get_LifecycleSeedsDraft(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.DentalExams)

	doc, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if doc.Status != models.StatusDraft {
		t.Errorf("Status = %q, want %q", doc.Status, models.StatusDraft)
	}
	if doc.PublishedAt != nil {
		t.Error("PublishedAt should be nil on a fresh draft")
	}
}

func TestStore_GetPublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.DentalExams)

	// Only a draft exists: public read must not see it.
	if _, err := store.Get(ctx, pt); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	_, err := store.GetPublished(ctx, pt)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetPublished() with only a draft error = %v, want ErrNotFound", err)
	}

	if _, err := store.TransitionStatus(ctx, pt, models.StatusPublished, "editor"); err != nil {
		t.Fatalf("TransitionStatus() error = %v", err)
	}

	doc, err := store.GetPublished(ctx, pt)
	if err != nil {
		t.Fatalf("GetPublished() error = %v", err)
	}
	if doc.Status != models.StatusPublished {
		t.Errorf("Status = %q, want %q", doc.Status, models.StatusPublished)
	}
}

func TestStore_GetPublished_NoLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.Home)
	_, err := store.GetPublished(ctx, pt)
	if !errors.Is(err, ErrNoLifecycle) {
		t.Errorf("GetPublished() on non-lifecycle type error = %v, want ErrNoLifecycle", err)
	}
}

func TestStore_IncrementViewCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.DentalExams)

	doc, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.IncrementViewCount(ctx, pt, doc.ID); err != nil {
			t.Fatalf("IncrementViewCount() error = %v", err)
		}
	}

	doc, err = store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() after increments error = %v", err)
	}
	if doc.ViewCount != 3 {
		t.Errorf("ViewCount = %d, want 3", doc.ViewCount)
	}
}

func TestStore_Replace_MergeMode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.TeethCleaning)

	if _, err := store.Get(ctx, pt); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	payload := map[string]bson.M{
		"hero": {"title": "Gentle Cleanings", "subtitle": "Updated"},
	}
	doc, err := store.Replace(ctx, pt, payload, "editor")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if doc.Sections["hero"]["title"] != "Gentle Cleanings" {
		t.Errorf("hero title = %v, want 'Gentle Cleanings'", doc.Sections["hero"]["title"])
	}
	// Merge mode keeps sections absent from the payload.
	if _, ok := doc.Sections["faq"]; !ok {
		t.Error("merge update should preserve the faq section")
	}
	if _, ok := doc.Sections["cta"]; !ok {
		t.Error("merge update should preserve the cta section")
	}
	if doc.UpdatedBy != "editor" {
		t.Errorf("UpdatedBy = %q, want 'editor'", doc.UpdatedBy)
	}
}

func TestStore_Replace_ReplaceMode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.Home)

	if _, err := store.Get(ctx, pt); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	payload := map[string]bson.M{
		"hero": {"title": "A New Home Page"},
	}
	doc, err := store.Replace(ctx, pt, payload, "editor")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	if doc.Sections["hero"]["title"] != "A New Home Page" {
		t.Errorf("hero title = %v, want 'A New Home Page'", doc.Sections["hero"]["title"])
	}
	// Replace mode swaps the whole tree: omitted sections are gone.
	if _, ok := doc.Sections["services"]; ok {
		t.Error("replace update should drop the services section")
	}
	if len(doc.Sections) != 1 {
		t.Errorf("sections count = %d, want 1", len(doc.Sections))
	}
}

func TestStore_Replace_DropsUnknownSections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.About)

	payload := map[string]bson.M{
		"hero":       {"title": "About Us"},
		"nonsection": {"junk": true},
	}
	doc, err := store.Replace(ctx, pt, payload, "editor")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if _, ok := doc.Sections["nonsection"]; ok {
		t.Error("unknown section should not be persisted")
	}
	if doc.Sections["hero"]["title"] != "About Us" {
		t.Errorf("hero title = %v, want 'About Us'", doc.Sections["hero"]["title"])
	}
}

func TestStore_Replace_CreatesWhenMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.EmergencyCare)

	// No Get first: PUT against an empty collection must upsert.
	payload := map[string]bson.M{
		"hero": {"title": "Emergencies Welcome"},
	}
	doc, err := store.Replace(ctx, pt, payload, "editor")
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if doc.ID.IsZero() {
		t.Error("ID should be set on upsert")
	}
	if doc.PageType != content.EmergencyCare {
		t.Errorf("PageType = %q, want %q", doc.PageType, content.EmergencyCare)
	}
	if doc.CreatedBy != "editor" {
		t.Errorf("CreatedBy = %q, want 'editor'", doc.CreatedBy)
	}

	count, err := db.Collection(pt.Collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments() error = %v", err)
	}
	if count != 1 {
		t.Errorf("collection has %d documents, want 1", count)
	}
}

func TestStore_PatchSection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.NightGuards)

	seeded, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	origSubtitle := seeded.Sections["hero"]["subtitle"]

	section, err := store.PatchSection(ctx, pt, "hero", bson.M{"title": "Night Guards That Fit"}, "editor")
	if err != nil {
		t.Fatalf("PatchSection() error = %v", err)
	}

	if section["title"] != "Night Guards That Fit" {
		t.Errorf("patched title = %v, want 'Night Guards That Fit'", section["title"])
	}
	// Shallow merge: sibling keys inside the section survive.
	if section["subtitle"] != origSubtitle {
		t.Errorf("subtitle = %v, want %v (sibling keys preserved)", section["subtitle"], origSubtitle)
	}

	// Other sections untouched.
	doc, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() after patch error = %v", err)
	}
	if _, ok := doc.Sections["care"]; !ok {
		t.Error("patch should not touch other sections")
	}
	if doc.UpdatedBy != "editor" {
		t.Errorf("UpdatedBy = %q, want 'editor'", doc.UpdatedBy)
	}
}

func TestStore_PatchSection_ReplacesLists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.NightGuards)

	payload := bson.M{
		"items": bson.A{"Rinse nightly"},
	}
	section, err := store.PatchSection(ctx, pt, "care", payload, "editor")
	if err != nil {
		t.Fatalf("PatchSection() error = %v", err)
	}

	items, ok := section["items"].(bson.A)
	if !ok {
		t.Fatalf("items has type %T, want bson.A", section["items"])
	}
	// Lists are replaced wholesale, never element-merged.
	if len(items) != 1 {
		t.Errorf("items length = %d, want 1", len(items))
	}
	// Section title is outside the payload and must survive.
	if section["title"] != "Caring for Your Guard" {
		t.Errorf("title = %v, want seed title", section["title"])
	}
}

func TestStore_PatchSection_UnknownSection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.About)

	_, err := store.PatchSection(ctx, pt, "pricing", bson.M{"title": "x"}, "editor")
	if !errors.Is(err, ErrUnknownSection) {
		t.Errorf("PatchSection() with unknown section error = %v, want ErrUnknownSection", err)
	}
}

func TestStore_PatchSection_SeedsWhenMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.TMJConsult)

	// Patch against an empty collection seeds first, then applies.
	section, err := store.PatchSection(ctx, pt, "hero", bson.M{"title": "Jaw Pain Relief"}, "editor")
	if err != nil {
		t.Fatalf("PatchSection() error = %v", err)
	}
	if section["title"] != "Jaw Pain Relief" {
		t.Errorf("title = %v, want 'Jaw Pain Relief'", section["title"])
	}
	if section["subtitle"] == nil {
		t.Error("seed content should be present under the patch")
	}
}

func TestStore_TransitionStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.DentalExams)

	if _, err := store.Get(ctx, pt); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	doc, err := store.TransitionStatus(ctx, pt, models.StatusPublished, "editor")
	if err != nil {
		t.Fatalf("TransitionStatus(published) error = %v", err)
	}
	if doc.Status != models.StatusPublished {
		t.Errorf("Status = %q, want %q", doc.Status, models.StatusPublished)
	}
	if doc.PublishedAt == nil {
		t.Fatal("PublishedAt should be set on first publish")
	}
	firstPublished := *doc.PublishedAt

	// Archive and republish: published_at must not move.
	if _, err := store.TransitionStatus(ctx, pt, models.StatusArchived, "editor"); err != nil {
		t.Fatalf("TransitionStatus(archived) error = %v", err)
	}
	doc, err = store.TransitionStatus(ctx, pt, models.StatusPublished, "editor")
	if err != nil {
		t.Fatalf("TransitionStatus(published) second error = %v", err)
	}
	if doc.PublishedAt == nil || !doc.PublishedAt.Equal(firstPublished) {
		t.Errorf("PublishedAt = %v, want unchanged %v", doc.PublishedAt, firstPublished)
	}
}

func TestStore_TransitionStatus_NoDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.DentalExams)

	_, err := store.TransitionStatus(ctx, pt, models.StatusPublished, "editor")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("TransitionStatus() on empty collection error = %v, want ErrNotFound", err)
	}
}

func TestStore_TransitionStatus_NoLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.Home)

	_, err := store.TransitionStatus(ctx, pt, models.StatusPublished, "editor")
	if !errors.Is(err, ErrNoLifecycle) {
		t.Errorf("TransitionStatus() on non-lifecycle type error = %v, want ErrNoLifecycle", err)
	}
}

func TestStore_Reset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pt := mustLookup(t, content.About)

	before, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, err := store.PatchSection(ctx, pt, "hero", bson.M{"title": "Edited"}, "editor"); err != nil {
		t.Fatalf("PatchSection() error = %v", err)
	}

	deleted, err := store.Reset(ctx, pt)
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("Reset() deleted = %d, want 1", deleted)
	}

	// Next read reseeds from defaults.
	after, err := store.Get(ctx, pt)
	if err != nil {
		t.Fatalf("Get() after reset error = %v", err)
	}
	if after.ID == before.ID {
		t.Error("reseeded document should have a new ID")
	}
	if after.Sections["hero"]["title"] != "About Our Practice" {
		t.Errorf("hero title = %v, want seed content", after.Sections["hero"]["title"])
	}
}
