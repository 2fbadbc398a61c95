package dto

import "github.com/google/uuid"

type PathRequirementResponse struct {
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	Importance       int       `json:"importance"`
	RecommendedLevel int       `json:"recommended_level"`
}

type CareerPathResponse struct {
	ID           uuid.UUID                 `json:"id"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description,omitempty"`
	Requirements []PathRequirementResponse `json:"requirements,omitempty"`
}

type SkillAlignmentResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	CurrentLevel  int       `json:"current_level"`
	RequiredLevel int       `json:"required_level"`
}

type PathPredictionResponse struct {
	PathID         uuid.UUID                `json:"path_id"`
	Title          string                   `json:"title"`
	Description    string                   `json:"description,omitempty"`
	Confidence     float64                  `json:"confidence"`
	MatchingSkills []SkillAlignmentResponse `json:"matching_skills"`
}
