package scoring

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

type PathCandidate struct {
	PathID       uuid.UUID
	Title        string
	Description  string
	Requirements []Requirement
}

// SkillAlignment is the per-skill detail carried with a prediction:
// current vs required level for each requirement the user actually holds.
type SkillAlignment struct {
	SkillID       uuid.UUID
	SkillName     string
	CurrentLevel  int
	RequiredLevel int
}

type PathPrediction struct {
	PathID         uuid.UUID
	Title          string
	Description    string
	Confidence     float64
	MatchingSkills []SkillAlignment
}

// Confidence scores how well the user's skills align with a career path.
//
// This is deliberately not the Coverage formula: each matching skill adds
// (current_level / importance) * 100 and the sum is divided by the number of
// requirements (floored at 1). The two scales coexist on purpose; callers
// pick the one whose semantics they need.
func Confidence(path PathCandidate, skills []UserSkill) (float64, []SkillAlignment) {
	byID := skillsByID(skills)

	matching := make([]SkillAlignment, 0, len(path.Requirements))
	var skillScore float64
	for _, r := range path.Requirements {
		if r.SkillID == uuid.Nil {
			continue
		}
		us, ok := byID[r.SkillID]
		if !ok {
			continue
		}

		lvl := clampInt(us.CurrentLevel, 0, 5)
		importance := r.Weight
		if importance > 0 {
			skillScore += (float64(lvl) / float64(importance)) * 100
		}

		matching = append(matching, SkillAlignment{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			CurrentLevel:  lvl,
			RequiredLevel: r.RecommendedLevel,
		})
	}

	total := len(path.Requirements)
	if total < 1 {
		total = 1
	}

	confidence := math.Round(skillScore/float64(total)*100) / 100
	return confidence, matching
}

// PredictPaths ranks candidate career paths by confidence desc, path id asc,
// and returns the top limit entries.
func PredictPaths(candidates []PathCandidate, skills []UserSkill, limit int) []PathPrediction {
	out := make([]PathPrediction, 0, len(candidates))
	for _, p := range candidates {
		if p.PathID == uuid.Nil {
			continue
		}
		conf, matching := Confidence(p, skills)
		out = append(out, PathPrediction{
			PathID:         p.PathID,
			Title:          p.Title,
			Description:    p.Description,
			Confidence:     conf,
			MatchingSkills: matching,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return lessUUID(out[i].PathID, out[j].PathID)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
