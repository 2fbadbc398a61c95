package skill

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryTechnical = "technical"
	CategorySoftSkill = "soft_skill"
	CategoryLanguage  = "language"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryTechnical, CategorySoftSkill, CategoryLanguage:
		return true
	}
	return false
}

// Skill is a catalog entry. Immutable once referenced by scores; created and
// edited only through catalog management.
type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

// Record is a user's relationship to one skill. TargetLevel >= CurrentLevel
// is enforced at creation but may invert later as the catalog changes;
// consumers must tolerate that.
type Record struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SkillID         uuid.UUID
	SkillName       string
	CurrentLevel    int
	TargetLevel     int
	LastPracticedAt *time.Time
	Verified        bool
	CreatedAt       time.Time
}
