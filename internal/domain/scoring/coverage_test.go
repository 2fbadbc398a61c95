package scoring

import (
	"testing"

	"github.com/google/uuid"
)

func TestCoverage_WeightedAverage(t *testing.T) {
	skillA := uuid.New()
	skillB := uuid.New()

	reqs := []Requirement{
		{SkillID: skillA, SkillName: "Go", Weight: 2, RecommendedLevel: 2},
		{SkillID: skillB, SkillName: "PostgreSQL", Weight: 1, RecommendedLevel: 1},
	}
	skills := []UserSkill{
		{SkillID: skillA, SkillName: "Go", CurrentLevel: 4},
	}

	// ((4/5)*2 + 0*1) / 3 * 100 = 53.33 -> 53
	if got := Coverage(reqs, skills); got != 53 {
		t.Fatalf("expected 53, got %d", got)
	}
}

func TestCoverage_EmptyRequirementSet(t *testing.T) {
	skills := []UserSkill{{SkillID: uuid.New(), CurrentLevel: 5}}
	if got := Coverage(nil, skills); got != 0 {
		t.Fatalf("expected 0 for empty set, got %d", got)
	}
	if got := Coverage([]Requirement{}, skills); got != 0 {
		t.Fatalf("expected 0 for empty set, got %d", got)
	}
}

func TestCoverage_FullCoverage(t *testing.T) {
	skillA := uuid.New()
	reqs := []Requirement{{SkillID: skillA, Weight: 3, RecommendedLevel: 3}}
	skills := []UserSkill{{SkillID: skillA, CurrentLevel: 5}}

	if got := Coverage(reqs, skills); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCoverage_OrderIndependent(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	reqs := []Requirement{
		{SkillID: ids[0], Weight: 3},
		{SkillID: ids[1], Weight: 1},
		{SkillID: ids[2], Weight: 2},
		{SkillID: ids[3], Weight: 2},
	}
	skills := []UserSkill{
		{SkillID: ids[0], CurrentLevel: 2},
		{SkillID: ids[2], CurrentLevel: 5},
		{SkillID: ids[3], CurrentLevel: 1},
	}

	want := Coverage(reqs, skills)
	permuted := []Requirement{reqs[2], reqs[0], reqs[3], reqs[1]}
	if got := Coverage(permuted, skills); got != want {
		t.Fatalf("permuted requirement order changed score: %d vs %d", got, want)
	}
}

func TestCoverage_MonotoneInLevel(t *testing.T) {
	skillA := uuid.New()
	skillB := uuid.New()
	reqs := []Requirement{
		{SkillID: skillA, Weight: 2},
		{SkillID: skillB, Weight: 5},
	}

	prev := -1
	for lvl := 0; lvl <= 5; lvl++ {
		skills := []UserSkill{
			{SkillID: skillA, CurrentLevel: lvl},
			{SkillID: skillB, CurrentLevel: 2},
		}
		got := Coverage(reqs, skills)
		if got < prev {
			t.Fatalf("raising level %d decreased score: %d -> %d", lvl, prev, got)
		}
		if got < 0 || got > 100 {
			t.Fatalf("score out of bounds: %d", got)
		}
		prev = got
	}
}

func TestCoverage_DuplicateRequirementsSum(t *testing.T) {
	skillA := uuid.New()
	reqs := []Requirement{
		{SkillID: skillA, Weight: 1},
		{SkillID: skillA, Weight: 1},
	}
	skills := []UserSkill{{SkillID: skillA, CurrentLevel: 5}}

	if got := Coverage(reqs, skills); got != 100 {
		t.Fatalf("expected duplicates to sum to 100, got %d", got)
	}
}

func TestCoverage_UserLevelClamped(t *testing.T) {
	skillA := uuid.New()
	reqs := []Requirement{{SkillID: skillA, Weight: 2}}
	skills := []UserSkill{{SkillID: skillA, CurrentLevel: 9}}

	if got := Coverage(reqs, skills); got != 100 {
		t.Fatalf("expected clamp to keep score at 100, got %d", got)
	}
}
