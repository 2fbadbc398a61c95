package dto

import "github.com/google/uuid"

type CourseSkillResponse struct {
	SkillID     uuid.UUID `json:"skill_id"`
	SkillName   string    `json:"skill_name"`
	LevelGained int       `json:"level_gained"`
}

type CourseResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Provider    string                `json:"provider,omitempty"`
	URL         string                `json:"url,omitempty"`
	Rating      float64               `json:"rating"`
	Skills      []CourseSkillResponse `json:"skills,omitempty"`
}

type ScoredCourseResponse struct {
	CourseResponse
	MatchScore int `json:"match_score"`
}
