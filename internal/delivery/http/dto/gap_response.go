package dto

import "github.com/google/uuid"

type SkillGapResponse struct {
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	CurrentLevel     int       `json:"current_level"`
	RecommendedLevel int       `json:"recommended_level"`
	Importance       int       `json:"importance"`
	Gap              int       `json:"gap"`
}

type GapReportResponse struct {
	CareerPathID uuid.UUID          `json:"career_path_id"`
	Coverage     int                `json:"coverage"`
	Gaps         []SkillGapResponse `json:"gaps"`
}

type MissingSkillResponse struct {
	SkillID   uuid.UUID `json:"skill_id"`
	SkillName string    `json:"skill_name"`
}
