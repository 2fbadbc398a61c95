package scoring

import (
	"sort"

	"github.com/google/uuid"
)

// Gap is one skill deficit: how far the user's current proficiency sits
// below a requirement's recommended level. Produced fresh on every call,
// never cached here.
type Gap struct {
	SkillID          uuid.UUID
	SkillName        string
	CurrentLevel     int
	RecommendedLevel int
	Importance       int
	Gap              int
}

type MissingSkill struct {
	SkillID   uuid.UUID
	SkillName string
}

// AnalyzeGaps returns the per-skill deficit list for a requirement set,
// ordered by severity: gap desc, importance desc, skill id asc.
func AnalyzeGaps(reqs []Requirement, skills []UserSkill) []Gap {
	byID := skillsByID(skills)

	out := make([]Gap, 0, len(reqs))
	for _, r := range reqs {
		if r.SkillID == uuid.Nil {
			continue
		}

		current := 0
		if us, ok := byID[r.SkillID]; ok {
			current = clampInt(us.CurrentLevel, 0, 5)
		}

		gap := r.RecommendedLevel - current
		if gap < 0 {
			gap = 0
		}

		out = append(out, Gap{
			SkillID:          r.SkillID,
			SkillName:        r.SkillName,
			CurrentLevel:     current,
			RecommendedLevel: r.RecommendedLevel,
			Importance:       r.Weight,
			Gap:              gap,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Gap != out[j].Gap {
			return out[i].Gap > out[j].Gap
		}
		if out[i].Importance != out[j].Importance {
			return out[i].Importance > out[j].Importance
		}
		return lessUUID(out[i].SkillID, out[j].SkillID)
	})

	return out
}

// MissingSkills lists required skills the user has no record for, or holds
// below levelThreshold. A threshold <= 0 means "use the requirement's
// recommended level, or 3 when the set does not encode levels".
func MissingSkills(reqs []Requirement, skills []UserSkill, levelThreshold int) []MissingSkill {
	byID := skillsByID(skills)

	out := make([]MissingSkill, 0)
	for _, r := range reqs {
		if r.SkillID == uuid.Nil {
			continue
		}

		threshold := levelThreshold
		if threshold <= 0 {
			threshold = r.RecommendedLevel
			if threshold <= 0 {
				threshold = 3
			}
		}

		us, ok := byID[r.SkillID]
		if ok && clampInt(us.CurrentLevel, 0, 5) >= threshold {
			continue
		}
		out = append(out, MissingSkill{SkillID: r.SkillID, SkillName: r.SkillName})
	}
	return out
}

// NextRecommendedCourse picks the best course to close the given missing
// skills: among candidates teaching at least one missing skill and not
// already enrolled, the highest-rated wins; ties go to the lowest course id.
// The second return is false when no candidate qualifies.
func NextRecommendedCourse(missing map[uuid.UUID]struct{}, enrolled map[uuid.UUID]struct{}, candidates []CourseCandidate) (CourseCandidate, bool) {
	var best CourseCandidate
	found := false

	for _, c := range candidates {
		if c.CourseID == uuid.Nil {
			continue
		}
		if _, ok := enrolled[c.CourseID]; ok {
			continue
		}

		teachesMissing := false
		for _, cs := range c.Skills {
			if _, ok := missing[cs.SkillID]; ok {
				teachesMissing = true
				break
			}
		}
		if !teachesMissing {
			continue
		}

		if !found {
			best = c
			found = true
			continue
		}
		if c.Rating > best.Rating {
			best = c
			continue
		}
		if c.Rating == best.Rating && lessUUID(c.CourseID, best.CourseID) {
			best = c
		}
	}

	return best, found
}
