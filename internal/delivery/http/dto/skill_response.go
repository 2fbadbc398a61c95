package dto

import (
	"time"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type UserSkillResponse struct {
	ID              uuid.UUID  `json:"id"`
	SkillID         uuid.UUID  `json:"skill_id"`
	SkillName       string     `json:"skill_name"`
	CurrentLevel    int        `json:"current_level"`
	TargetLevel     int        `json:"target_level"`
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	Verified        bool       `json:"verified"`
}
