/*
Package factory provides JSON to Go plan conversion.

PURPOSE:
  Converts a JSON plan payload - the monthly planning input the frontend
  edits and persists - into validated engine inputs: a coverage mapper
  built from the shift catalogue, an aligned day-type calendar, and the
  roster of people. Facility admins maintain the plan as JSON; nothing
  here requires a code change when the catalogue or template changes.

JSON SCHEMA (abridged):
  {
    "year": 2026, "month": 9, "days": 30, "weekdayOfDay1": 3,
    "shifts": [{"code": "NA", "name": "夜勤", "start": 16, "end": 31}, ...],
    "needTemplate": {"月": {"7-9": 2, "9-15": 1, "18-24": 1, "0-7": 1}, ...},
    "dayTypeByDate": ["火", "水", ...],
    "people": [{"id": "p1", "canWork": ["EA","NA"], "weeklyMax": 40, ...}],
    "previousMonthNightCarry": {"NA": ["p3"]},
    "wishOffs": {"p1": [4, 12]},
    "paidLeaves": {"p2": [20]}
  }

VALIDATION LAYERS:
  1. Shape: go-playground/validator struct tags (ranges, required fields).
  2. Structure: the engine's own invariants - shift end > start, unique
     codes, person hour bounds - surfaced as roster sentinel errors.
  Day-type labels and need-template keys are deliberately NOT validated:
  unknown labels degrade to zero requirements by design.

USAGE:
  plan, err := factory.ParsePlan(payload)
  violations, err := roster.ValidateLaborRules(
      plan.Mapper, schedule, plan.People, plan.Days, plan.WeekdayOfDay1)

SEE ALSO:
  - roster: The engine the parsed plan feeds
  - api/handlers.go: Parses uploaded plans with this package
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/darumasanaz/v5-shift-creation-tool/roster"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PlanJSON is the wire representation of a monthly plan.
type PlanJSON struct {
	Year          int            `json:"year" validate:"required,min=2000,max=2999"`
	Month         int            `json:"month" validate:"required,min=1,max=12"`
	Days          int            `json:"days" validate:"required,min=1,max=31"`
	WeekdayOfDay1 int            `json:"weekdayOfDay1"`
	Shifts        []roster.Shift `json:"shifts" validate:"required,min=1"`
	NeedTemplate  roster.NeedTemplate `json:"needTemplate" validate:"required"`
	DayTypeByDate []string            `json:"dayTypeByDate" validate:"required"`
	People        []roster.Person     `json:"people" validate:"required,min=1"`

	PreviousMonthNightCarry roster.NightCarryMap `json:"previousMonthNightCarry,omitempty"`
	WishOffs                map[string][]int     `json:"wishOffs,omitempty"`
	PaidLeaves              map[string][]int     `json:"paidLeaves,omitempty"`
}

// Plan is a parsed, validated plan with its engine inputs prepared.
type Plan struct {
	PlanJSON

	// Mapper is the coverage mapper for the plan's shift catalogue.
	Mapper *roster.CoverageMapper

	// AlignedDayTypes is the day-type calendar after offset correction.
	AlignedDayTypes []string

	// Alignment records the evidence behind the correction (or refusal).
	Alignment roster.AlignmentReport
}

// ParsePlan parses and validates a plan payload.
func ParsePlan(data []byte) (*Plan, error) {
	var pj PlanJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}
	return BuildPlan(pj)
}

// BuildPlan validates an already-decoded plan and prepares its engine
// inputs.
func BuildPlan(pj PlanJSON) (*Plan, error) {
	if err := validate.Struct(pj); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	for _, p := range pj.People {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid plan: %w", err)
		}
	}

	mapper, err := roster.NewCoverageMapper(pj.Shifts)
	if err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	aligned, report := roster.AlignDayTypes(pj.DayTypeByDate, pj.WeekdayOfDay1)

	return &Plan{
		PlanJSON:        pj,
		Mapper:          mapper,
		AlignedDayTypes: aligned,
		Alignment:       report,
	}, nil
}

// SanitizedCarry returns the previous-month night carry filtered to the
// plan's current night-shift codes and roster.
func (p *Plan) SanitizedCarry() roster.NightCarryMap {
	return p.Mapper.SanitizeNightCarry(p.PreviousMonthNightCarry, p.People)
}

// CoverageReport runs the full need/actual comparison for a candidate
// schedule against this plan.
func (p *Plan) CoverageReport(schedule roster.Schedule) (roster.CoverageBreakdown, []roster.ShortageInfo, error) {
	actual, err := roster.AggregateCoverage(p.Mapper, schedule, p.Days, p.People, p.PreviousMonthNightCarry)
	if err != nil {
		return nil, nil, err
	}
	breakdown, err := roster.ComputeBreakdown(p.NeedTemplate, p.AlignedDayTypes, actual, p.Days)
	if err != nil {
		return nil, nil, err
	}
	return breakdown, roster.Shortages(breakdown), nil
}

// Violations runs labor-rule validation for a candidate schedule against
// this plan.
func (p *Plan) Violations(schedule roster.Schedule) ([]roster.RuleViolation, error) {
	return roster.ValidateLaborRules(p.Mapper, schedule, p.People, p.Days, p.WeekdayOfDay1)
}
