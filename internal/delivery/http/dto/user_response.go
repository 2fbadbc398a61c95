package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserProfileResponse struct {
	UserResponse
	SkillCount int `json:"skill_count"`
	GoalCount  int `json:"goal_count"`
}
