package goal

import (
	"math"
	"time"

	"skillpath/internal/domain/scoring"
)

// Recompute refreshes the goal's progress and status from the career path's
// requirement set and the user's current skills, writes both back onto the
// goal, and returns them. Identical inputs always produce an identical
// (progress, status) pair.
func Recompute(g *Goal, reqs []scoring.Requirement, skills []scoring.UserSkill) (int, Status) {
	progress := scoring.Coverage(reqs, skills)
	status := NextStatus(g.Status, progress)

	g.Progress = progress
	g.Status = status
	return progress, status
}

// EstimateCompletionDate linearly extrapolates the goal's progress rate
// since creation to project a completion date. It is an estimate, not a
// guarantee.
//
// Returns nil for completed goals. Returns the target date unchanged when
// there is no usable rate yet: zero progress, missing created_at or target
// date, or less than a full day elapsed.
func EstimateCompletionDate(g Goal, now time.Time) *time.Time {
	if g.Status == StatusCompleted {
		return nil
	}
	if g.Progress <= 0 || g.TargetDate == nil || g.CreatedAt.IsZero() {
		return g.TargetDate
	}

	daysElapsed := int(now.Sub(g.CreatedAt).Hours() / 24)
	if daysElapsed <= 0 {
		return g.TargetDate
	}

	rate := float64(g.Progress) / float64(daysElapsed)
	if rate <= 0 {
		return g.TargetDate
	}

	daysRemaining := int(math.Round(float64(100-g.Progress) / rate))
	estimate := now.AddDate(0, 0, daysRemaining)
	return &estimate
}

// IsOverdue reports whether the goal's target date has passed without the
// goal completing.
func IsOverdue(g Goal, now time.Time) bool {
	if g.TargetDate == nil {
		return false
	}
	if g.Status == StatusCompleted {
		return false
	}
	return g.TargetDate.Before(now)
}
