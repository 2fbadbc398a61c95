package usecase

import (
	"errors"

	"skillpath/internal/domain/scoring"
	"skillpath/internal/domain/skill"
	"skillpath/internal/repository"
)

// ErrUnresolvedSkill signals catalog drift: a requirement or course row
// points at a skill the skills table no longer resolves by name.
var ErrUnresolvedSkill = errors.New("unresolved skill reference")

// pathRequirements maps catalog rows into engine requirements. The catalog
// stores a single importance_level per path skill, so it fills both the
// weight and the recommended level. Scoring keys on skill ids only, so a
// missing display name never blocks it.
func pathRequirements(rows []repository.PathRequirement) []scoring.Requirement {
	out := make([]scoring.Requirement, 0, len(rows))
	for _, r := range rows {
		out = append(out, scoring.Requirement{
			SkillID:          r.SkillID,
			SkillName:        r.SkillName,
			Weight:           r.ImportanceLevel,
			RecommendedLevel: r.ImportanceLevel,
		})
	}
	return out
}

// resolvedPathRequirements is pathRequirements for responses that surface
// skill names to the client; it rejects rows whose name no longer resolves.
func resolvedPathRequirements(rows []repository.PathRequirement) ([]scoring.Requirement, error) {
	for _, r := range rows {
		if r.SkillName == "" {
			return nil, ErrUnresolvedSkill
		}
	}
	return pathRequirements(rows), nil
}

func engineSkills(records []skill.Record) []scoring.UserSkill {
	out := make([]scoring.UserSkill, 0, len(records))
	for _, rec := range records {
		out = append(out, scoring.UserSkill{
			SkillID:      rec.SkillID,
			SkillName:    rec.SkillName,
			CurrentLevel: rec.CurrentLevel,
			TargetLevel:  rec.TargetLevel,
		})
	}
	return out
}

func courseCandidate(c repository.Course, skills []repository.CourseSkillRow) scoring.CourseCandidate {
	cand := scoring.CourseCandidate{
		CourseID:    c.ID,
		Title:       c.Title,
		Description: c.Description,
		Provider:    c.Provider,
		URL:         c.URL,
		Rating:      c.Rating,
		Skills:      make([]scoring.CourseSkill, 0, len(skills)),
	}
	for _, cs := range skills {
		cand.Skills = append(cand.Skills, scoring.CourseSkill{
			SkillID:     cs.SkillID,
			SkillName:   cs.SkillName,
			LevelGained: cs.LevelGained,
		})
	}
	return cand
}
