package scoring

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

type CourseSkill struct {
	SkillID     uuid.UUID
	SkillName   string
	LevelGained int
}

type CourseCandidate struct {
	CourseID    uuid.UUID
	Title       string
	Description string
	Provider    string
	URL         string
	Rating      float64
	Skills      []CourseSkill
}

type ScoredCourse struct {
	CourseCandidate
	MatchScore int
}

// Per-skill points for the learning-value score. diff is the level the
// course teaches minus the user's current level.
const (
	pointsStretch   = 100 // 0 < diff <= 2: the right amount of challenge
	pointsAdvanced  = 50  // diff > 2: too far above current level
	pointsRedundant = 25  // diff <= 0: already at or past what it teaches
)

// MatchScore rates a course by learning value for the user, not coverage:
// teaching slightly above the current level scores highest, teaching far
// above or at/below scores lower. The result is the rounded mean of the
// per-skill points, or 0 for a course with no tagged skills.
func MatchScore(course CourseCandidate, skills []UserSkill) int {
	if len(course.Skills) == 0 {
		return 0
	}

	byID := skillsByID(skills)

	var sum float64
	for _, cs := range course.Skills {
		current := 0
		if us, ok := byID[cs.SkillID]; ok {
			current = clampInt(us.CurrentLevel, 0, 5)
		}

		diff := cs.LevelGained - current
		switch {
		case diff > 0 && diff <= 2:
			sum += pointsStretch
		case diff > 2:
			sum += pointsAdvanced
		default:
			sum += pointsRedundant
		}
	}

	return int(math.Round(sum / float64(len(course.Skills))))
}

// RankCourses scores every candidate and returns the top limit courses,
// ordered by match score desc, rating desc, course id asc.
func RankCourses(candidates []CourseCandidate, skills []UserSkill, limit int) []ScoredCourse {
	out := make([]ScoredCourse, 0, len(candidates))
	for _, c := range candidates {
		if c.CourseID == uuid.Nil {
			continue
		}
		out = append(out, ScoredCourse{CourseCandidate: c, MatchScore: MatchScore(c, skills)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return lessUUID(out[i].CourseID, out[j].CourseID)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
