/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The breakdown and
  shortage shapes reuse the engine's own types so the wire keys
  (day / time_range / shortage / need / actual) stay exactly what the
  grid frontend expects.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response: Response wrappers returned to clients

ERROR BODIES:
  Structured failures reuse one envelope with a machine-readable reason:
    LOCKED            423  the finalized month cannot be modified
    VERSION_CONFLICT  409  draft is based on an older version; carries
                           the cell-level differences against the server
    RULE_VIOLATION    400  finalize refused; carries the violations

SEE ALSO:
  - handlers.go: Uses these types
  - roster/types.go: CoverageBreakdown, ShortageInfo, RuleViolation
*/
package api

import "github.com/darumasanaz/v5-shift-creation-tool/roster"

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CoverageReportRequest asks for the need/actual comparison of a
// candidate schedule. A client may pass along a previously computed
// breakdown and/or shortage list (e.g. returned by the assignment
// producer); those are reconciled with the freshly computed values.
type CoverageReportRequest struct {
	Schedule          roster.Schedule          `json:"schedule"`
	CoverageBreakdown roster.CoverageBreakdown `json:"coverageBreakdown,omitempty"`
	Shortages         []roster.ShortageInfo    `json:"shortages,omitempty"`
}

// CoverageReportResponse carries the reconciled report.
type CoverageReportResponse struct {
	CoverageBreakdown roster.CoverageBreakdown `json:"coverageBreakdown"`
	Shortages         []roster.ShortageInfo    `json:"shortages"`
}

// ValidateScheduleRequest asks for labor-rule validation of a schedule.
type ValidateScheduleRequest struct {
	Schedule roster.Schedule `json:"schedule"`
}

// ValidateScheduleResponse reports the outcome; Violations is empty when
// the schedule is clean.
type ValidateScheduleResponse struct {
	Valid      bool                   `json:"valid"`
	Violations []roster.RuleViolation `json:"violations"`
}

// ScheduleSaveRequest is the body of save-draft and finalize-schedule.
// BaseVersion is the draft version the client edited; nil skips the
// optimistic-concurrency check.
type ScheduleSaveRequest struct {
	Schedule    roster.Schedule `json:"schedule"`
	BaseVersion *int            `json:"baseVersion,omitempty"`
}

// ScheduleSaveResponse confirms a save with the new version and the
// cell-level changes it applied.
type ScheduleSaveResponse struct {
	Version int              `json:"version"`
	Locked  bool             `json:"locked"`
	Changes []ScheduleChange `json:"changes"`
}

// ScheduleChange is one cell-level difference between two schedules.
// Previous/Updated are nil for unassigned cells.
type ScheduleChange struct {
	PersonID string  `json:"personId"`
	DayIndex int     `json:"dayIndex"`
	Previous *string `json:"previous"`
	Updated  *string `json:"updated"`
}

// ErrorResponse is the structured error envelope.
type ErrorResponse struct {
	Reason         string                 `json:"reason"`
	Message        string                 `json:"message"`
	CurrentVersion *int                   `json:"currentVersion,omitempty"`
	Changes        []ScheduleChange       `json:"changes,omitempty"`
	Violations     []roster.RuleViolation `json:"violations,omitempty"`
}

// Error reason codes.
const (
	ReasonLocked          = "LOCKED"
	ReasonVersionConflict = "VERSION_CONFLICT"
	ReasonRuleViolation   = "RULE_VIOLATION"
	ReasonInvalidPlan     = "INVALID_PLAN"
	ReasonBadRequest      = "BAD_REQUEST"
	ReasonNotFound        = "NOT_FOUND"
	ReasonInternal        = "INTERNAL"
)
