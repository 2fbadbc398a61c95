package catalog

import (
	"context"
	"strings"

	"skillpath/internal/domain/skill"
	"skillpath/internal/repository"
)

// aliases maps tag spellings seen on provider sites to canonical catalog
// skill names. Lookup keys are lowercase with surrounding punctuation
// stripped.
var aliases = map[string]string{
	"golang":              "Go",
	"go-lang":             "Go",
	"go":                  "Go",
	"js":                  "JavaScript",
	"javascript":          "JavaScript",
	"node":                "Node.js",
	"nodejs":              "Node.js",
	"node.js":             "Node.js",
	"ts":                  "TypeScript",
	"typescript":          "TypeScript",
	"py":                  "Python",
	"python":              "Python",
	"python3":             "Python",
	"postgres":            "PostgreSQL",
	"postgresql":          "PostgreSQL",
	"psql":                "PostgreSQL",
	"k8s":                 "Kubernetes",
	"kubernetes":          "Kubernetes",
	"docker":              "Docker",
	"react":               "React",
	"reactjs":             "React",
	"react.js":            "React",
	"aws":                 "AWS",
	"amazon-web-services": "AWS",
	"sql":                 "SQL",
	"ml":                  "Machine Learning",
	"machine-learning":    "Machine Learning",
	"ci-cd":               "CI/CD",
	"cicd":                "CI/CD",
	"redis":               "Redis",
	"english":             "English",
	"communication":       "Communication",
	"teamwork":            "Teamwork",
}

// CanonicalSkillName maps a provider tag to a catalog skill name. Unknown
// tags pass through trimmed, so exact catalog names still resolve.
func CanonicalSkillName(tag string) string {
	t := strings.TrimSpace(tag)
	t = strings.Trim(t, "#.,;")
	if t == "" {
		return ""
	}
	if v, ok := aliases[strings.ToLower(t)]; ok {
		return v
	}
	return t
}

// SkillResolver matches normalized tags against the skill catalog. When
// createMissing is set, unmatched tags become new technical skills.
type SkillResolver struct {
	skills        repository.SkillRepository
	createMissing bool
}

func NewSkillResolver(skills repository.SkillRepository, createMissing bool) *SkillResolver {
	return &SkillResolver{skills: skills, createMissing: createMissing}
}

func (r *SkillResolver) Resolve(ctx context.Context, tags []string) ([]skill.Skill, error) {
	names := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, t := range tags {
		name := CanonicalSkillName(t)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, nil
	}

	found, err := r.skills.GetSkillsByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	out := make([]skill.Skill, 0, len(names))
	for _, name := range names {
		if s, ok := found[name]; ok {
			out = append(out, s)
			continue
		}
		if !r.createMissing {
			continue
		}
		s, err := r.skills.CreateSkill(ctx, name, skill.CategoryTechnical)
		if err != nil {
			// Lost a create race or bad name; skip the tag rather than
			// failing the whole course.
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
