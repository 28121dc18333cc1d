/*
handlers.go - HTTP handler implementations

PURPOSE:
  Implements the API endpoints over the roster engine and the sqlite
  store. The engine is pure; every handler re-derives its inputs from
  the stored plan, so concurrent requests never share mutable state
  beyond the store itself.

ENDPOINTS:
  GET  /api/initial-data        Stored plan payload, verbatim
  POST /api/plan                Upload/replace the plan (validated)
  POST /api/coverage-report     Need/actual breakdown + shortage list
  POST /api/validate-schedule   Labor-rule validation
  POST /api/save-draft          Versioned draft save
  POST /api/finalize-schedule   Validate, save, and lock the month

DRAFT LIFECYCLE:
  Saves are optimistically versioned: a request carrying a stale
  baseVersion is rejected with 409 VERSION_CONFLICT and the cell-level
  differences against the server copy, so the client can re-base instead
  of clobbering someone else's edits. A finalized month is locked; any
  further save gets 423 LOCKED.

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Routing
  - factory: Plan parsing and validation
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/darumasanaz/v5-shift-creation-tool/factory"
	"github.com/darumasanaz/v5-shift-creation-tool/roster"
	"github.com/darumasanaz/v5-shift-creation-tool/store/sqlite"
)

// Handler holds the API dependencies.
type Handler struct {
	store *sqlite.Store
}

// NewHandler creates an API handler backed by the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{store: store}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	writeJSON(w, status, resp)
}

// loadPlan fetches and re-parses the stored plan. The parse cost is
// trivial next to a request round-trip and keeps the handlers stateless.
func (h *Handler) loadPlan(r *http.Request) (*factory.Plan, error) {
	payload, err := h.store.LoadPlan(r.Context())
	if err != nil {
		return nil, err
	}
	return factory.ParsePlan(payload)
}

// =============================================================================
// PLAN ENDPOINTS
// =============================================================================

// GetInitialData serves the stored plan payload verbatim.
func (h *Handler) GetInitialData(w http.ResponseWriter, r *http.Request) {
	payload, err := h.store.LoadPlan(r.Context())
	if errors.Is(err, sqlite.ErrPlanNotFound) {
		writeError(w, http.StatusNotFound, ErrorResponse{Reason: ReasonNotFound, Message: "Initial data not found."})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrorResponse{Reason: ReasonInternal, Message: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// SavePlan validates and stores a plan payload.
func (h *Handler) SavePlan(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonBadRequest, Message: "failed to read request body"})
		return
	}

	if _, err := factory.ParsePlan(payload); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonInvalidPlan, Message: err.Error()})
		return
	}

	if err := h.store.SavePlan(r.Context(), payload); err != nil {
		writeError(w, http.StatusInternalServerError, ErrorResponse{Reason: ReasonInternal, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// ENGINE ENDPOINTS
// =============================================================================

// CoverageReport computes the need/actual breakdown and shortage list
// for a candidate schedule, reconciling any externally supplied values.
func (h *Handler) CoverageReport(w http.ResponseWriter, r *http.Request) {
	var req CoverageReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonBadRequest, Message: err.Error()})
		return
	}

	plan, err := h.loadPlan(r)
	if err != nil {
		h.planError(w, err)
		return
	}

	breakdown, _, err := plan.CoverageReport(req.Schedule)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonBadRequest, Message: err.Error()})
		return
	}

	// An externally supplied breakdown wins per (day, bucket); computed
	// values fill the buckets it did not cover.
	if len(req.CoverageBreakdown) > 0 {
		breakdown = roster.MergeBreakdowns(req.CoverageBreakdown, breakdown)
	}

	shortages := roster.Shortages(breakdown)
	if len(req.Shortages) > 0 {
		shortages = roster.MergeShortages(req.Shortages, breakdown)
	}

	writeJSON(w, http.StatusOK, CoverageReportResponse{
		CoverageBreakdown: breakdown,
		Shortages:         shortages,
	})
}

// ValidateSchedule runs labor-rule validation for a candidate schedule.
func (h *Handler) ValidateSchedule(w http.ResponseWriter, r *http.Request) {
	var req ValidateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonBadRequest, Message: err.Error()})
		return
	}

	plan, err := h.loadPlan(r)
	if err != nil {
		h.planError(w, err)
		return
	}

	violations, err := plan.Violations(req.Schedule)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonBadRequest, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ValidateScheduleResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

// =============================================================================
// DRAFT ENDPOINTS
// =============================================================================

// SaveDraft persists a new draft version of the schedule.
func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	h.saveSchedule(w, r, false)
}

// FinalizeSchedule validates, persists, and locks the schedule.
func (h *Handler) FinalizeSchedule(w http.ResponseWriter, r *http.Request) {
	h.saveSchedule(w, r, true)
}

func (h *Handler) saveSchedule(w http.ResponseWriter, r *http.Request, finalize bool) {
	var req ScheduleSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonBadRequest, Message: err.Error()})
		return
	}

	current, err := h.store.LoadScheduleState(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrorResponse{Reason: ReasonInternal, Message: err.Error()})
		return
	}

	if current.Locked {
		writeError(w, http.StatusLocked, ErrorResponse{
			Reason:         ReasonLocked,
			Message:        "Schedule is locked and cannot be modified.",
			CurrentVersion: &current.Version,
		})
		return
	}

	if req.BaseVersion != nil && *req.BaseVersion != current.Version {
		writeError(w, http.StatusConflict, ErrorResponse{
			Reason:         ReasonVersionConflict,
			Message:        "Draft is based on an older version.",
			CurrentVersion: &current.Version,
			Changes:        ComputeScheduleChanges(req.Schedule, current.Schedule),
		})
		return
	}

	if finalize {
		plan, err := h.loadPlan(r)
		if err != nil {
			h.planError(w, err)
			return
		}
		violations, err := plan.Violations(req.Schedule)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorResponse{Reason: ReasonBadRequest, Message: err.Error()})
			return
		}
		if len(violations) > 0 {
			writeError(w, http.StatusBadRequest, ErrorResponse{
				Reason:     ReasonRuleViolation,
				Message:    "Schedule violates staffing rules.",
				Violations: violations,
			})
			return
		}
	}

	next := sqlite.ScheduleState{
		Version:  current.Version + 1,
		Locked:   finalize,
		Schedule: req.Schedule,
	}
	if err := h.store.SaveScheduleState(r.Context(), next); err != nil {
		writeError(w, http.StatusInternalServerError, ErrorResponse{Reason: ReasonInternal, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ScheduleSaveResponse{
		Version: next.Version,
		Locked:  next.Locked,
		Changes: ComputeScheduleChanges(current.Schedule, req.Schedule),
	})
}

// planError maps plan-loading failures to responses.
func (h *Handler) planError(w http.ResponseWriter, err error) {
	if errors.Is(err, sqlite.ErrPlanNotFound) {
		writeError(w, http.StatusNotFound, ErrorResponse{Reason: ReasonNotFound, Message: "Initial data not found."})
		return
	}
	writeError(w, http.StatusInternalServerError, ErrorResponse{Reason: ReasonInternal, Message: err.Error()})
}
