package goal

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Goal tracks a user's progress toward one career path. Progress and Status
// are written only by Recompute (and the explicit hold/resume path); all
// other fields are owned by the caller.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CareerPathID uuid.UUID
	Status       Status
	Progress     int
	TargetDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
