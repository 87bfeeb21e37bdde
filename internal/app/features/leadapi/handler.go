// Package leadapi provides the lead-submission API endpoints.
//
// The public site posts form submissions here; the dashboard works the
// resulting queue (contact, schedule, complete). Form payloads are
// stored as submitted so the forms can evolve without a migration.
package leadapi

import (
	"errors"
	"net/http"
	"strconv"

	leadstore "github.com/pearlpoint/clinicms/internal/app/store/lead"
	"github.com/pearlpoint/clinicms/internal/app/system/auth"
	"github.com/pearlpoint/clinicms/internal/app/system/jsonutil"
	"github.com/pearlpoint/clinicms/internal/app/system/network"
	"github.com/pearlpoint/clinicms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler handles lead-submission API requests.
type Handler struct {
	store  *leadstore.Store
	logger *zap.Logger
}

// NewHandler creates a new leadapi handler.
func NewHandler(store *leadstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// SubmitHandler handles POST /submit requests from the public site.
//
// Request body:
//
//	{
//	    "formType": "new-patient",
//	    "formData": { ... whatever the form collected ... }
//	}
//
// Response (201 Created):
//
//	{
//	    "success": true,
//	    "data": {"reference": "..."},
//	    "message": "Thank you! We received your request and will be in touch shortly."
//	}
func (h *Handler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FormType models.FormType `json:"formType"`
		FormData bson.M          `json:"formData"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if !models.IsValidFormType(in.FormType) {
		jsonutil.ValidationError(w, map[string]string{"formType": "must be one of: emergency, new-patient, contact, appointment"})
		return
	}
	if len(in.FormData) == 0 {
		jsonutil.ValidationError(w, map[string]string{"formData": "required"})
		return
	}

	lead, err := h.store.Create(r.Context(), leadstore.CreateInput{
		FormType:  in.FormType,
		FormData:  in.FormData,
		IPAddress: network.ClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.logger.Error("failed to record lead submission",
			zap.String("form_type", string(in.FormType)),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to submit form")
		return
	}

	h.logger.Info("lead submitted",
		zap.String("form_type", string(lead.FormType)),
		zap.String("reference", lead.Reference))
	jsonutil.WrappedMessage(w, http.StatusCreated,
		map[string]string{"reference": lead.Reference},
		"Thank you! We received your request and will be in touch shortly.")
}

// ListHandler handles GET / requests. Supports formType, status,
// limit, and page query parameters; results come back newest first.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	filter := leadstore.ListFilter{}

	if ft := r.URL.Query().Get("formType"); ft != "" {
		if !models.IsValidFormType(models.FormType(ft)) {
			jsonutil.BadRequest(w, "Invalid formType filter")
			return
		}
		filter.FormType = models.FormType(ft)
	}
	if st := r.URL.Query().Get("status"); st != "" {
		if !models.IsValidLeadStatus(models.LeadStatus(st)) {
			jsonutil.BadRequest(w, "Invalid status filter")
			return
		}
		filter.Status = models.LeadStatus(st)
	}

	limit := queryInt(r, "limit", 20)
	page := queryInt(r, "page", 1)

	leads, total, err := h.store.List(r.Context(), filter, limit, page)
	if err != nil {
		h.logger.Error("failed to list lead submissions", zap.Error(err))
		jsonutil.InternalError(w, "Failed to load submissions")
		return
	}

	jsonutil.OK(w, map[string]any{
		"leads": leads,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetHandler handles GET /{id} requests.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParamValue(w, r)
	if !ok {
		return
	}

	lead, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, leadstore.ErrNotFound) {
		jsonutil.NotFound(w, "Submission not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to load lead submission",
			zap.String("id", id.Hex()),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to load submission")
		return
	}
	jsonutil.OK(w, lead)
}

// UpdateHandler handles PUT /{id} requests. Only the workflow fields
// (status, notes, assignedTo) can change; the submitted form data is
// immutable.
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParamValue(w, r)
	if !ok {
		return
	}

	var in struct {
		Status     *models.LeadStatus `json:"status"`
		Notes      *string            `json:"notes"`
		AssignedTo *string            `json:"assignedTo"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Status != nil && !models.IsValidLeadStatus(*in.Status) {
		jsonutil.ValidationError(w, map[string]string{"status": "must be one of: new, contacted, scheduled, completed, cancelled"})
		return
	}

	actor := auth.CurrentActor(r)
	lead, err := h.store.Update(r.Context(), id, leadstore.UpdateInput{
		Status:     in.Status,
		Notes:      in.Notes,
		AssignedTo: in.AssignedTo,
	})
	if errors.Is(err, leadstore.ErrNotFound) {
		jsonutil.NotFound(w, "Submission not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update lead submission",
			zap.String("id", id.Hex()),
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to update submission")
		return
	}

	h.logger.Info("lead submission updated",
		zap.String("id", id.Hex()),
		zap.String("status", string(lead.Status)),
		zap.String("actor", actor.ID))
	jsonutil.OK(w, lead)
}

// DeleteHandler handles DELETE /{id} requests.
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParamValue(w, r)
	if !ok {
		return
	}

	actor := auth.CurrentActor(r)
	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, leadstore.ErrNotFound) {
		jsonutil.NotFound(w, "Submission not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to delete lead submission",
			zap.String("id", id.Hex()),
			zap.String("actor", actor.ID),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to delete submission")
		return
	}

	h.logger.Info("lead submission deleted",
		zap.String("id", id.Hex()),
		zap.String("actor", actor.ID))
	jsonutil.NoContent(w)
}

func queryInt(r *http.Request, key string, def int64) int64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// idParamValue parses the {id} URL parameter, writing a 400 response
// on malformed input.
func idParamValue(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(idParam(r))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid submission id")
		return primitive.NilObjectID, false
	}
	return id, true
}
