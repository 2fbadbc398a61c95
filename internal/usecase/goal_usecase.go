package usecase

import (
	"context"
	"errors"
	"time"

	"skillpath/internal/domain/goal"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrGoalNotFound        = errors.New("goal not found")
	ErrGoalAlreadyExists   = errors.New("goal already exists for career path")
	ErrCareerPathNotFound  = errors.New("career path not found")
	ErrInvalidGoalStatus   = errors.New("invalid goal status")
	ErrGoalStatusForbidden = errors.New("goal status transition not allowed")
)

// GoalProgressEvent fans out to websocket subscribers after a recompute
// changes a goal.
type GoalProgressEvent struct {
	GoalID   uuid.UUID `json:"goal_id"`
	UserID   uuid.UUID `json:"user_id"`
	Progress int       `json:"progress"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}

type GoalNotifier interface {
	GoalProgressChanged(ev GoalProgressEvent)
}

type CreateGoalInput struct {
	CareerPathID uuid.UUID
	TargetDate   *time.Time
}

// GoalItem is a goal plus the derived fields every read returns.
type GoalItem struct {
	Goal          goal.Goal
	EstimatedDate *time.Time
	Overdue       bool
}

type GoalUsecase interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]GoalItem, error)
	GetGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (GoalItem, error)
	CreateGoal(ctx context.Context, userID uuid.UUID, in CreateGoalInput) (GoalItem, error)
	DeleteGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error
	RecomputeGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (GoalItem, error)
	SetGoalStatus(ctx context.Context, userID uuid.UUID, goalID uuid.UUID, status goal.Status) (GoalItem, error)
}

type Goal struct {
	goals      repository.GoalRepository
	paths      repository.CareerPathRepository
	userSkills repository.UserSkillRepository
	notifier   GoalNotifier

	now func() time.Time
}

func NewGoalUsecase(goals repository.GoalRepository, paths repository.CareerPathRepository, userSkills repository.UserSkillRepository, notifier GoalNotifier) *Goal {
	return &Goal{
		goals:      goals,
		paths:      paths,
		userSkills: userSkills,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (u *Goal) ListGoals(ctx context.Context, userID uuid.UUID) ([]GoalItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	goals, err := u.goals.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	now := u.now()
	out := make([]GoalItem, 0, len(goals))
	for _, g := range goals {
		out = append(out, u.item(g, now))
	}
	return out, nil
}

func (u *Goal) GetGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (GoalItem, error) {
	g, err := u.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return GoalItem{}, err
	}
	return u.item(g, u.now()), nil
}

func (u *Goal) CreateGoal(ctx context.Context, userID uuid.UUID, in CreateGoalInput) (GoalItem, error) {
	if userID == uuid.Nil {
		return GoalItem{}, ErrUnauthorized
	}
	if in.CareerPathID == uuid.Nil {
		return GoalItem{}, ErrInvalidInput
	}

	exists, err := u.paths.ExistsByID(ctx, in.CareerPathID)
	if err != nil {
		return GoalItem{}, ErrInternal
	}
	if !exists {
		return GoalItem{}, ErrCareerPathNotFound
	}

	created, err := u.goals.Create(ctx, goal.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		CareerPathID: in.CareerPathID,
		Status:       goal.StatusNotStarted,
		Progress:     0,
		TargetDate:   in.TargetDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrGoalAlreadyExists) {
			return GoalItem{}, ErrGoalAlreadyExists
		}
		return GoalItem{}, ErrInternal
	}

	// A new goal immediately reflects the skills the user already holds.
	return u.recompute(ctx, created)
}

func (u *Goal) DeleteGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if goalID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.goals.Delete(ctx, goalID, userID); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Goal) RecomputeGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (GoalItem, error) {
	g, err := u.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return GoalItem{}, err
	}
	return u.recompute(ctx, g)
}

// SetGoalStatus handles the explicit transitions recomputation never makes:
// putting a goal on hold, resuming it, and reverting a completed goal. A
// revert or resume goes straight back through recompute so progress and
// status stay consistent.
func (u *Goal) SetGoalStatus(ctx context.Context, userID uuid.UUID, goalID uuid.UUID, status goal.Status) (GoalItem, error) {
	if !status.Valid() {
		return GoalItem{}, ErrInvalidGoalStatus
	}

	g, err := u.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return GoalItem{}, err
	}

	switch status {
	case goal.StatusOnHold:
		if g.Status == goal.StatusCompleted {
			return GoalItem{}, ErrGoalStatusForbidden
		}
		if err := u.goals.UpdateStatus(ctx, g.ID, goal.StatusOnHold); err != nil {
			return GoalItem{}, ErrInternal
		}
		g.Status = goal.StatusOnHold
		return u.item(g, u.now()), nil
	case goal.StatusInProgress:
		// Resume from hold, or explicitly reopen a completed goal.
		if g.Status != goal.StatusOnHold && g.Status != goal.StatusCompleted {
			return GoalItem{}, ErrGoalStatusForbidden
		}
		g.Status = goal.StatusInProgress
		return u.recompute(ctx, g)
	default:
		// not_started and completed are derived, never set directly.
		return GoalItem{}, ErrGoalStatusForbidden
	}
}

func (u *Goal) recompute(ctx context.Context, g goal.Goal) (GoalItem, error) {
	rows, err := u.paths.FindRequirementsByPathID(ctx, g.CareerPathID)
	if err != nil {
		return GoalItem{}, ErrInternal
	}
	reqs := pathRequirements(rows)

	records, err := u.userSkills.FindByUserID(ctx, g.UserID)
	if err != nil {
		return GoalItem{}, ErrInternal
	}

	progress, status := goal.Recompute(&g, reqs, engineSkills(records))

	if err := u.goals.UpdateProgress(ctx, g.ID, progress, status); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return GoalItem{}, ErrGoalNotFound
		}
		return GoalItem{}, ErrInternal
	}

	now := u.now()
	if u.notifier != nil {
		u.notifier.GoalProgressChanged(GoalProgressEvent{
			GoalID:   g.ID,
			UserID:   g.UserID,
			Progress: progress,
			Status:   string(status),
			At:       now.UTC(),
		})
	}

	return u.item(g, now), nil
}

func (u *Goal) ownedGoal(ctx context.Context, userID uuid.UUID, goalID uuid.UUID) (goal.Goal, error) {
	if userID == uuid.Nil {
		return goal.Goal{}, ErrUnauthorized
	}
	if goalID == uuid.Nil {
		return goal.Goal{}, ErrInvalidInput
	}

	g, err := u.goals.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return goal.Goal{}, ErrGoalNotFound
		}
		return goal.Goal{}, ErrInternal
	}
	if g.UserID != userID {
		return goal.Goal{}, ErrGoalNotFound
	}
	return g, nil
}

func (u *Goal) item(g goal.Goal, now time.Time) GoalItem {
	return GoalItem{
		Goal:          g,
		EstimatedDate: goal.EstimateCompletionDate(g, now),
		Overdue:       goal.IsOverdue(g, now),
	}
}
