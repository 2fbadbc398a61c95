package dto

import (
	"time"

	"github.com/google/uuid"
)

type GoalResponse struct {
	ID            uuid.UUID  `json:"id"`
	CareerPathID  uuid.UUID  `json:"career_path_id"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
	EstimatedDate *time.Time `json:"estimated_completion_date,omitempty"`
	Overdue       bool       `json:"overdue"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BatchRecomputeResponse struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}
