// Package pageapi provides the page-content API endpoints.
//
// One Handler serves one page type; bootstrap mounts a handler per
// descriptor under /api/pages/<name>. The route set and the response
// shape (enveloped or bare) come from the descriptor, so the legacy
// front-end contract of each page survives the shared implementation.
package pageapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pearlpoint/clinicms/internal/app/store/pagecontent"
	"github.com/pearlpoint/clinicms/internal/app/system/auth"
	"github.com/pearlpoint/clinicms/internal/app/system/htmlsanitize"
	"github.com/pearlpoint/clinicms/internal/app/system/jsonutil"
	"github.com/pearlpoint/clinicms/internal/domain/content"
	"github.com/pearlpoint/clinicms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Handler handles page-content API requests for one page type.
type Handler struct {
	store  *pagecontent.Store
	logger *zap.Logger
	pt     content.PageType
}

// NewHandler creates a new pageapi handler for the given page type.
func NewHandler(store *pagecontent.Store, logger *zap.Logger, pt content.PageType) *Handler {
	return &Handler{
		store:  store,
		logger: logger.With(zap.String("page_type", pt.Name)),
		pt:     pt,
	}
}

// respond writes data in the response shape this page type's front-end
// consumer was built against.
func (h *Handler) respond(w http.ResponseWriter, status int, data any) {
	if h.pt.Wrapped {
		jsonutil.Wrapped(w, status, data)
		return
	}
	jsonutil.JSON(w, status, data)
}

// GetHandler handles GET / requests, the public site read.
//
// For the lifecycle page type only published content is served and a
// view is counted; everything else returns the current document,
// creating it from the default content tree on first read.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if h.pt.Lifecycle {
		doc, err := h.store.GetPublished(r.Context(), h.pt)
		if errors.Is(err, pagecontent.ErrNotFound) {
			jsonutil.NotFound(w, "No published content")
			return
		}
		if err != nil {
			h.logger.Error("failed to load published page", zap.Error(err))
			jsonutil.InternalError(w, "Failed to load page content")
			return
		}

		// Count the view off the request path; a failed increment
		// must not affect the response.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.store.IncrementViewCount(ctx, h.pt, doc.ID); err != nil {
				h.logger.Warn("failed to increment view count", zap.Error(err))
			}
		}()

		h.respond(w, http.StatusOK, doc)
		return
	}

	doc, err := h.store.Get(r.Context(), h.pt)
	if err != nil {
		h.logger.Error("failed to load page", zap.Error(err))
		jsonutil.InternalError(w, "Failed to load page content")
		return
	}
	h.respond(w, http.StatusOK, doc)
}

// AdminGetHandler handles GET /admin requests on the lifecycle page
// type. It returns the newest document regardless of status so the
// dashboard can edit drafts before publishing.
func (h *Handler) AdminGetHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), h.pt)
	if err != nil {
		h.logger.Error("failed to load page for admin", zap.Error(err))
		jsonutil.InternalError(w, "Failed to load page content")
		return
	}
	h.respond(w, http.StatusOK, doc)
}

// ReplaceHandler handles PUT / requests.
//
// The body is either {"sections": {...}} or the sections object
// itself; both shapes are in use by the dashboard. Whether absent
// sections survive depends on the page type's update mode.
func (h *Handler) ReplaceHandler(w http.ResponseWriter, r *http.Request) {
	sections, err := decodeSections(r)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	for name, payload := range sections {
		sections[name] = htmlsanitize.SanitizeTree(payload)
	}

	actor := auth.CurrentActor(r)
	doc, err := h.store.Replace(r.Context(), h.pt, sections, actor.ID)
	if err != nil {
		h.logger.Error("failed to update page",
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to update page content")
		return
	}

	h.logger.Info("page content updated",
		zap.String("actor", actor.ID),
		zap.Int("sections", len(sections)))
	h.respond(w, http.StatusOK, doc)
}

// PatchSectionHandler handles PUT /{section} requests. Each top-level
// key of the payload overwrites the matching key of the stored
// section; other keys are preserved and list values are replaced
// wholesale. Responds with the updated section.
func (h *Handler) PatchSectionHandler(w http.ResponseWriter, r *http.Request) {
	section := sectionParam(r)

	var payload bson.M
	if err := jsonutil.Decode(r, &payload); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	payload = htmlsanitize.SanitizeTree(payload)

	actor := auth.CurrentActor(r)
	updated, err := h.store.PatchSection(r.Context(), h.pt, section, payload, actor.ID)
	if errors.Is(err, pagecontent.ErrUnknownSection) {
		jsonutil.BadRequest(w, "Unknown section: "+section)
		return
	}
	if err != nil {
		h.logger.Error("failed to patch section",
			zap.String("section", section),
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to update section")
		return
	}

	h.logger.Info("page section updated",
		zap.String("section", section),
		zap.String("actor", actor.ID))
	h.respond(w, http.StatusOK, updated)
}

// PublishHandler handles PATCH /publish requests on the lifecycle page type.
func (h *Handler) PublishHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.StatusPublished)
}

// ArchiveHandler handles PATCH /archive requests on the lifecycle page type.
func (h *Handler) ArchiveHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.StatusArchived)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, status models.PageStatus) {
	actor := auth.CurrentActor(r)

	doc, err := h.store.TransitionStatus(r.Context(), h.pt, status, actor.ID)
	if errors.Is(err, pagecontent.ErrNotFound) {
		jsonutil.NotFound(w, "No page content to transition")
		return
	}
	if err != nil {
		h.logger.Error("failed to transition page status",
			zap.String("to", string(status)),
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to update page status")
		return
	}

	h.logger.Info("page status transitioned",
		zap.String("to", string(status)),
		zap.String("actor", actor.ID))
	h.respond(w, http.StatusOK, doc)
}

// ResetHandler handles DELETE /reset and POST /reset requests. All documents
// for the page type are removed; the next read reseeds the defaults.
func (h *Handler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	actor := auth.CurrentActor(r)

	deleted, err := h.store.Reset(r.Context(), h.pt)
	if err != nil {
		h.logger.Error("failed to reset page content",
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to reset page content")
		return
	}

	h.logger.Info("page content reset",
		zap.String("actor", actor.ID),
		zap.Int64("deleted", deleted))

	result := map[string]any{"deleted": deleted}
	if h.pt.Wrapped {
		jsonutil.WrappedMessage(w, http.StatusOK, result, "Page content reset to defaults")
		return
	}
	jsonutil.JSON(w, http.StatusOK, result)
}

// decodeSections reads a PUT / body. The dashboard sends either the
// sections object bare or wrapped under a "sections" key; non-object
// values are dropped the same way unknown section names are.
func decodeSections(r *http.Request) (map[string]bson.M, error) {
	var raw map[string]any
	if err := jsonutil.Decode(r, &raw); err != nil {
		return nil, err
	}
	if inner, ok := raw["sections"].(map[string]any); ok {
		raw = inner
	}

	out := make(map[string]bson.M, len(raw))
	for name, v := range raw {
		if obj, ok := v.(map[string]any); ok {
			out[name] = bson.M(obj)
		}
	}
	return out, nil
}
