// Package categoryapi provides the service-category API endpoints.
//
// Categories classify clinic services for site navigation. The public
// site reads the active set anonymously; creating, editing, and
// deleting require API key auth.
package categoryapi

import (
	"errors"
	"net/http"

	categorystore "github.com/pearlpoint/clinicms/internal/app/store/category"
	"github.com/pearlpoint/clinicms/internal/app/system/auth"
	"github.com/pearlpoint/clinicms/internal/app/system/jsonutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler handles category API requests.
type Handler struct {
	store  *categorystore.Store
	logger *zap.Logger
}

// NewHandler creates a new categoryapi handler.
func NewHandler(store *categorystore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// ListHandler handles GET / requests, the public navigation read.
// Active categories are returned sorted by order then name;
// ?includeInactive=true widens the list to the full set.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	categories, err := h.store.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		jsonutil.InternalError(w, "Failed to load categories")
		return
	}
	jsonutil.OK(w, categories)
}

// GetHandler handles GET /{id} requests.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParamValue(w, r)
	if !ok {
		return
	}

	cat, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, categorystore.ErrNotFound) {
		jsonutil.NotFound(w, "Category not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to load category",
			zap.String("id", id.Hex()),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to load category")
		return
	}
	jsonutil.OK(w, cat)
}

// AdminListHandler handles GET /admin requests. Inactive categories
// are included so the dashboard can reactivate them.
func (h *Handler) AdminListHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.List(r.Context(), true)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		jsonutil.InternalError(w, "Failed to load categories")
		return
	}
	jsonutil.Wrapped(w, http.StatusOK, categories)
}

// CreateHandler handles POST / requests.
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		DisplayName string `json:"displayName"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Icon        string `json:"icon"`
		Order       int    `json:"order"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Name == "" {
		jsonutil.ValidationError(w, map[string]string{"name": "required"})
		return
	}

	actor := auth.CurrentActor(r)
	cat, err := h.store.Create(r.Context(), categorystore.CreateInput{
		Name:        in.Name,
		Slug:        in.Slug,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		Order:       in.Order,
		CreatedBy:   actor.ID,
	})
	if errors.Is(err, categorystore.ErrDuplicate) {
		jsonutil.Conflict(w, "A category with that name or slug already exists")
		return
	}
	if err != nil {
		h.logger.Error("failed to create category",
			zap.String("name", in.Name),
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to create category")
		return
	}

	h.logger.Info("category created",
		zap.String("name", cat.Name),
		zap.String("slug", cat.Slug),
		zap.String("actor", actor.ID))
	jsonutil.Wrapped(w, http.StatusCreated, cat)
}

// UpdateHandler handles PUT /{id} requests. Absent fields are left
// unchanged; renaming re-derives the slug unless one is supplied.
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParamValue(w, r)
	if !ok {
		return
	}

	var in struct {
		Name        *string `json:"name"`
		Slug        *string `json:"slug"`
		DisplayName *string `json:"displayName"`
		Description *string `json:"description"`
		Color       *string `json:"color"`
		Icon        *string `json:"icon"`
		Order       *int    `json:"order"`
		IsActive    *bool   `json:"isActive"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	actor := auth.CurrentActor(r)
	cat, err := h.store.Update(r.Context(), id, categorystore.UpdateInput{
		Name:        in.Name,
		Slug:        in.Slug,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		Order:       in.Order,
		IsActive:    in.IsActive,
		UpdatedBy:   actor.ID,
	})
	switch {
	case errors.Is(err, categorystore.ErrNotFound):
		jsonutil.NotFound(w, "Category not found")
		return
	case errors.Is(err, categorystore.ErrDuplicate):
		jsonutil.Conflict(w, "A category with that name or slug already exists")
		return
	case errors.Is(err, categorystore.ErrDefaultProtected):
		jsonutil.Forbidden(w, "Default categories cannot be deactivated")
		return
	case err != nil:
		h.logger.Error("failed to update category",
			zap.String("id", id.Hex()),
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to update category")
		return
	}

	h.logger.Info("category updated",
		zap.String("id", id.Hex()),
		zap.String("actor", actor.ID))
	jsonutil.Wrapped(w, http.StatusOK, cat)
}

// DeleteHandler handles DELETE /{id} requests.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParamValue(w, r)
	if !ok {
		return
	}

	actor := auth.CurrentActor(r)
	err := h.store.Delete(r.Context(), id)
	switch {
	case errors.Is(err, categorystore.ErrNotFound):
		jsonutil.NotFound(w, "Category not found")
		return
	case errors.Is(err, categorystore.ErrDefaultProtected):
		jsonutil.Forbidden(w, "Default categories cannot be deleted")
		return
	case err != nil:
		h.logger.Error("failed to delete category",
			zap.String("id", id.Hex()),
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to delete category")
		return
	}

	h.logger.Info("category deleted",
		zap.String("id", id.Hex()),
		zap.String("actor", actor.ID))
	jsonutil.NoContent(w)
}

// InitializeHandler handles POST /initialize requests. The built-in
// categories missing from the database are created; existing ones are
// never modified, so the call is safe to repeat.
func (h *Handler) InitializeHandler(w http.ResponseWriter, r *http.Request) {
	actor := auth.CurrentActor(r)

	created, skipped, err := h.store.SeedDefaults(r.Context())
	if err != nil {
		h.logger.Error("failed to initialize default categories",
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to initialize default categories")
		return
	}

	h.logger.Info("default categories initialized",
		zap.Strings("created", created),
		zap.Strings("skipped", skipped),
		zap.String("actor", actor.ID))
	jsonutil.Wrapped(w, http.StatusOK, map[string]any{
		"created": created,
		"skipped": skipped,
	})
}

// idParamValue parses the {id} URL parameter, writing a 400 response
// on malformed input.
func idParamValue(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(idParam(r))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid category id")
		return primitive.NilObjectID, false
	}
	return id, true
}
