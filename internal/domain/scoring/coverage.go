package scoring

import (
	"bytes"
	"math"

	"github.com/google/uuid"
)

// Requirement is one weighted skill demand inside a requirement set.
// Weight drives score aggregation; RecommendedLevel drives gap analysis.
// Callers may fill both from the same catalog column, but the engine never
// assumes they are equal.
type Requirement struct {
	SkillID          uuid.UUID
	SkillName        string
	Weight           int
	RecommendedLevel int
}

// UserSkill is the engine's view of one skill record. TargetLevel may be
// below CurrentLevel; the engine tolerates that.
type UserSkill struct {
	SkillID      uuid.UUID
	SkillName    string
	CurrentLevel int
	TargetLevel  int
}

// Coverage computes how much of a weighted requirement set the user's
// current skills satisfy, normalized to [0, 100].
//
// Each requirement contributes (level/5)*weight; a skill the user does not
// have contributes 0. The result is round(100 * sum / total_weight), or 0
// for an empty (or zero-weight) set. Duplicate skill ids in reqs simply sum;
// deduplication is the catalog layer's job.
func Coverage(reqs []Requirement, skills []UserSkill) int {
	if len(reqs) == 0 {
		return 0
	}

	byID := skillsByID(skills)

	var raw float64
	var totalWeight float64
	for _, r := range reqs {
		if r.SkillID == uuid.Nil {
			continue
		}
		w := float64(r.Weight)
		if w <= 0 {
			continue
		}
		totalWeight += w

		us, ok := byID[r.SkillID]
		if !ok {
			continue
		}
		lvl := clampInt(us.CurrentLevel, 0, 5)
		raw += (float64(lvl) / 5.0) * w
	}

	if totalWeight <= 0 {
		return 0
	}

	score := int(math.Round(100 * raw / totalWeight))
	return clampInt(score, 0, 100)
}

func skillsByID(skills []UserSkill) map[uuid.UUID]UserSkill {
	byID := make(map[uuid.UUID]UserSkill, len(skills))
	for _, us := range skills {
		if us.SkillID == uuid.Nil {
			continue
		}
		byID[us.SkillID] = us
	}
	return byID
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// lessUUID is the deterministic "ascending id" order used for tie-breaks.
func lessUUID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
