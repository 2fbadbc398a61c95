package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillpath/internal/database"
	"skillpath/internal/domain/goal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrGoalAlreadyExists = errors.New("goal already exists for career path")
)

type GoalRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]goal.Goal, error)
	FindByID(ctx context.Context, id uuid.UUID) (goal.Goal, error)
	Create(ctx context.Context, g goal.Goal) (goal.Goal, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, progress int, status goal.Status) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status goal.Status) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	// ListAll pages over every goal for batch recomputation.
	ListAll(ctx context.Context, limit, offset int) ([]goal.Goal, error)
}

type PostgresGoalRepository struct {
	db database.DB
}

func NewPostgresGoalRepository(db database.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

const goalColumns = `id, user_id, career_path_id, status, COALESCE(progress, 0), target_date, created_at, updated_at`

func scanGoal(row database.Row) (goal.Goal, error) {
	var g goal.Goal
	var status string
	err := row.Scan(&g.ID, &g.UserID, &g.CareerPathID, &status, &g.Progress, &g.TargetDate, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return goal.Goal{}, err
	}
	g.Status = goal.Status(status)
	return g, nil
}

func (r *PostgresGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]goal.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]goal.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresGoalRepository) FindByID(ctx context.Context, id uuid.UUID) (goal.Goal, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = $1`,
		id,
	)

	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return goal.Goal{}, ErrGoalNotFound
		}
		return goal.Goal{}, err
	}
	return g, nil
}

func (r *PostgresGoalRepository) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO goals (id, user_id, career_path_id, status, progress, target_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, career_path_id) DO NOTHING
		 RETURNING `+goalColumns,
		g.ID, g.UserID, g.CareerPathID, string(g.Status), g.Progress, g.TargetDate,
	)

	created, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return goal.Goal{}, ErrGoalAlreadyExists
		}
		return goal.Goal{}, err
	}
	return created, nil
}

func (r *PostgresGoalRepository) UpdateProgress(ctx context.Context, id uuid.UUID, progress int, status goal.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE goals SET progress = $1, status = $2, updated_at = now() WHERE id = $3`,
		progress, string(status), id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *PostgresGoalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status goal.Status) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE goals SET status = $1, updated_at = now() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *PostgresGoalRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *PostgresGoalRepository) ListAll(ctx context.Context, limit, offset int) ([]goal.Goal, error) {
	if limit <= 0 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+goalColumns+` FROM goals ORDER BY created_at ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]goal.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
