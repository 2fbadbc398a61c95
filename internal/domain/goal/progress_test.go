package goal

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"skillpath/internal/domain/scoring"
)

func TestRecompute_WritesBack(t *testing.T) {
	skillA := uuid.New()
	skillB := uuid.New()
	reqs := []scoring.Requirement{
		{SkillID: skillA, Weight: 2, RecommendedLevel: 2},
		{SkillID: skillB, Weight: 1, RecommendedLevel: 1},
	}
	skills := []scoring.UserSkill{{SkillID: skillA, CurrentLevel: 4}}

	g := Goal{ID: uuid.New(), Status: StatusNotStarted}
	progress, status := Recompute(&g, reqs, skills)

	if progress != 53 {
		t.Fatalf("expected progress 53, got %d", progress)
	}
	if status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s", status)
	}
	if g.Progress != progress || g.Status != status {
		t.Fatalf("expected recompute to write back onto the goal")
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	skillA := uuid.New()
	reqs := []scoring.Requirement{{SkillID: skillA, Weight: 3}}
	skills := []scoring.UserSkill{{SkillID: skillA, CurrentLevel: 2}}

	g := Goal{Status: StatusInProgress}
	p1, s1 := Recompute(&g, reqs, skills)
	p2, s2 := Recompute(&g, reqs, skills)

	if p1 != p2 || s1 != s2 {
		t.Fatalf("recompute not idempotent: (%d,%s) then (%d,%s)", p1, s1, p2, s2)
	}
}

func TestRecompute_OnHoldSticky(t *testing.T) {
	skillA := uuid.New()
	reqs := []scoring.Requirement{{SkillID: skillA, Weight: 1}}
	skills := []scoring.UserSkill{{SkillID: skillA, CurrentLevel: 2}} // 40%

	g := Goal{Status: StatusOnHold}
	progress, status := Recompute(&g, reqs, skills)
	if progress != 40 {
		t.Fatalf("expected progress 40, got %d", progress)
	}
	if status != StatusOnHold {
		t.Fatalf("expected on_hold to stick, got %s", status)
	}
}

func TestRecompute_EmptyRequirementSet(t *testing.T) {
	g := Goal{Status: StatusInProgress}
	progress, status := Recompute(&g, nil, nil)
	if progress != 0 {
		t.Fatalf("expected 0 progress for empty set, got %d", progress)
	}
	if status != StatusNotStarted {
		t.Fatalf("expected not_started, got %s", status)
	}
}

func TestEstimateCompletionDate_Completed(t *testing.T) {
	target := time.Now().AddDate(0, 1, 0)
	g := Goal{Status: StatusCompleted, Progress: 100, TargetDate: &target, CreatedAt: time.Now().AddDate(0, -1, 0)}
	if got := EstimateCompletionDate(g, time.Now()); got != nil {
		t.Fatalf("expected nil for completed goal, got %v", got)
	}
}

func TestEstimateCompletionDate_ZeroProgressReturnsTargetDate(t *testing.T) {
	target := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	g := Goal{
		Status:     StatusNotStarted,
		Progress:   0,
		TargetDate: &target,
		CreatedAt:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	got := EstimateCompletionDate(g, time.Now())
	if got == nil || !got.Equal(target) {
		t.Fatalf("expected target date unchanged, got %v", got)
	}
}

func TestEstimateCompletionDate_SameDayCreation(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	target := now.AddDate(0, 3, 0)
	g := Goal{
		Status:     StatusInProgress,
		Progress:   25,
		TargetDate: &target,
		CreatedAt:  now,
	}
	// days_elapsed == 0: rate undefined, fall back to target date, no panic.
	got := EstimateCompletionDate(g, now)
	if got == nil || !got.Equal(target) {
		t.Fatalf("expected target date fallback on zero elapsed days, got %v", got)
	}
}

func TestEstimateCompletionDate_LinearExtrapolation(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	target := now.AddDate(1, 0, 0)
	g := Goal{
		Status:     StatusInProgress,
		Progress:   40,
		TargetDate: &target,
		CreatedAt:  now.AddDate(0, 0, -20), // 2% per day
	}

	got := EstimateCompletionDate(g, now)
	if got == nil {
		t.Fatalf("expected an estimate")
	}
	want := now.AddDate(0, 0, 30) // (100-40)/2
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEstimateCompletionDate_NilTargetDate(t *testing.T) {
	g := Goal{Status: StatusInProgress, Progress: 50, CreatedAt: time.Now().AddDate(0, 0, -10)}
	if got := EstimateCompletionDate(g, time.Now()); got != nil {
		t.Fatalf("expected nil when target date is missing, got %v", got)
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	if !IsOverdue(Goal{Status: StatusInProgress, TargetDate: &past}, now) {
		t.Fatalf("expected overdue for past target date")
	}
	if IsOverdue(Goal{Status: StatusCompleted, TargetDate: &past}, now) {
		t.Fatalf("completed goal must not be overdue")
	}
	if IsOverdue(Goal{Status: StatusInProgress, TargetDate: &future}, now) {
		t.Fatalf("future target date must not be overdue")
	}
	if IsOverdue(Goal{Status: StatusInProgress}, now) {
		t.Fatalf("goal without target date must not be overdue")
	}
}
