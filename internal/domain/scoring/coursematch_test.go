package scoring

import (
	"testing"

	"github.com/google/uuid"
)

func TestMatchScore_StretchScoresHighest(t *testing.T) {
	skillA := uuid.New()
	skills := []UserSkill{{SkillID: skillA, CurrentLevel: 1}}

	course := CourseCandidate{
		CourseID: uuid.New(),
		Skills:   []CourseSkill{{SkillID: skillA, LevelGained: 3}}, // diff=2
	}
	if got := MatchScore(course, skills); got != 100 {
		t.Fatalf("expected 100 for diff=2, got %d", got)
	}
}

func TestMatchScore_TooAdvanced(t *testing.T) {
	skillA := uuid.New()
	skills := []UserSkill{{SkillID: skillA, CurrentLevel: 1}}

	course := CourseCandidate{
		CourseID: uuid.New(),
		Skills:   []CourseSkill{{SkillID: skillA, LevelGained: 5}}, // diff=4
	}
	if got := MatchScore(course, skills); got != 50 {
		t.Fatalf("expected 50 for diff=4, got %d", got)
	}
}

func TestMatchScore_RedundantAndUnknownSkill(t *testing.T) {
	skillA := uuid.New()
	skills := []UserSkill{{SkillID: skillA, CurrentLevel: 4}}

	redundant := CourseCandidate{
		CourseID: uuid.New(),
		Skills:   []CourseSkill{{SkillID: skillA, LevelGained: 3}}, // diff=-1
	}
	if got := MatchScore(redundant, skills); got != 25 {
		t.Fatalf("expected 25 for redundant course, got %d", got)
	}

	// Skill the user lacks entirely counts from level 0.
	newSkill := CourseCandidate{
		CourseID: uuid.New(),
		Skills:   []CourseSkill{{SkillID: uuid.New(), LevelGained: 2}}, // diff=2
	}
	if got := MatchScore(newSkill, skills); got != 100 {
		t.Fatalf("expected 100 for brand-new reachable skill, got %d", got)
	}
}

func TestMatchScore_MeanAndBounds(t *testing.T) {
	skillA := uuid.New()
	skillB := uuid.New()
	skills := []UserSkill{
		{SkillID: skillA, CurrentLevel: 1},
		{SkillID: skillB, CurrentLevel: 5},
	}

	course := CourseCandidate{
		CourseID: uuid.New(),
		Skills: []CourseSkill{
			{SkillID: skillA, LevelGained: 2}, // 100
			{SkillID: skillB, LevelGained: 3}, // 25
		},
	}
	// mean(100, 25) = 62.5 -> 63
	if got := MatchScore(course, skills); got != 63 {
		t.Fatalf("expected 63, got %d", got)
	}

	empty := CourseCandidate{CourseID: uuid.New()}
	if got := MatchScore(empty, skills); got != 0 {
		t.Fatalf("expected 0 for untagged course, got %d", got)
	}
}

func TestRankCourses_OrderingAndLimit(t *testing.T) {
	skillA := uuid.New()
	skills := []UserSkill{{SkillID: skillA, CurrentLevel: 1}}

	idLow := uuid.MustParse("00000000-0000-0000-0000-0000000000b1")
	idHigh := uuid.MustParse("ffffffff-0000-0000-0000-0000000000b1")

	candidates := []CourseCandidate{
		{CourseID: uuid.New(), Rating: 3.0, Skills: []CourseSkill{{SkillID: skillA, LevelGained: 5}}},  // 50
		{CourseID: idHigh, Rating: 4.0, Skills: []CourseSkill{{SkillID: skillA, LevelGained: 2}}},      // 100
		{CourseID: idLow, Rating: 4.0, Skills: []CourseSkill{{SkillID: skillA, LevelGained: 3}}},       // 100
		{CourseID: uuid.New(), Rating: 4.8, Skills: []CourseSkill{{SkillID: skillA, LevelGained: 1}}},  // 25... diff=0 -> 25
	}

	ranked := RankCourses(candidates, skills, 2)
	if len(ranked) != 2 {
		t.Fatalf("expected limit 2, got %d", len(ranked))
	}
	if ranked[0].MatchScore != 100 || ranked[1].MatchScore != 100 {
		t.Fatalf("expected both top scores 100, got %d and %d", ranked[0].MatchScore, ranked[1].MatchScore)
	}
	// Equal score and rating: lowest id first.
	if ranked[0].CourseID != idLow || ranked[1].CourseID != idHigh {
		t.Fatalf("unexpected tie-break order: %v then %v", ranked[0].CourseID, ranked[1].CourseID)
	}

	for _, r := range RankCourses(candidates, skills, 0) {
		if len(r.Skills) > 0 && (r.MatchScore < 25 || r.MatchScore > 100) {
			t.Fatalf("tagged course score out of [25,100]: %d", r.MatchScore)
		}
	}
}
