// Package planner implements the deterministic rule-based planning engine:
// phase partitioning, weekday- and conflict-aware task placement, and the
// Strategy implementation that ties them to the template catalog.
package planner

import (
	"time"

	"github.com/stridehq/stride/internal/catalog"
)

// defaultHorizonMonths is used when a goal has no target date.
const defaultHorizonMonths = 3

// PlannedPhase is a date-bounded phase before tasks are placed into it.
type PlannedPhase struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// TotalDays computes the planning horizon in days: from today to the
// goal's target date, or three months out when no target is set. Floored
// at one week so degenerate targets still yield a valid plan.
func TotalDays(now time.Time, targetDate *time.Time) int {
	target := now.AddDate(0, defaultHorizonMonths, 0)
	if targetDate != nil {
		target = *targetDate
	}
	days := int(target.Sub(now).Hours() / 24)
	if days < 7 {
		return 7
	}
	return days
}

// TotalWeeks converts a day count to whole weeks, floored at one.
func TotalWeeks(totalDays int) int {
	weeks := totalDays / 7
	if weeks < 1 {
		return 1
	}
	return weeks
}

// phaseCountFor maps the horizon to a phase count: very short plans get
// two phases, medium plans three, everything longer four, capped at the
// template's available blueprints.
func phaseCountFor(totalWeeks, available int) int {
	var n int
	switch {
	case totalWeeks <= 2:
		n = 2
	case totalWeeks <= 6:
		n = 3
	default:
		n = 4
	}
	if n > available {
		n = available
	}
	return n
}

// PlanPhases partitions the horizon into consecutive date-bounded phases.
// Each phase spans weeksPerPhase weeks; the next phase starts one day
// past the previous phase's end date.
func PlanPhases(tmpl catalog.GoalTemplate, totalWeeks int, startDate time.Time) []PlannedPhase {
	count := phaseCountFor(totalWeeks, len(tmpl.Phases))
	weeksPerPhase := totalWeeks / count
	if weeksPerPhase < 1 {
		weeksPerPhase = 1
	}

	phases := make([]PlannedPhase, 0, count)
	start := dateOnly(startDate)
	for i := 0; i < count; i++ {
		bp := tmpl.Phases[i]
		end := start.AddDate(0, 0, weeksPerPhase*7)
		phases = append(phases, PlannedPhase{
			Title:       bp.Title,
			Description: bp.Description,
			StartDate:   start,
			EndDate:     end,
		})
		start = end.AddDate(0, 0, 1)
	}
	return phases
}

// dateOnly truncates a time to midnight in its location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
