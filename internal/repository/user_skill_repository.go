package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillpath/internal/database"
	"skillpath/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSkillRecordNotFound = errors.New("skill record not found")
)

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Record, error)
	FindByUserAndSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skill.Record, error)
	Create(ctx context.Context, rec skill.Record) (skill.Record, error)
	Update(ctx context.Context, rec skill.Record) (skill.Record, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

const skillRecordColumns = `us.id, us.user_id, us.skill_id, s.name,
	COALESCE(us.current_level, 0), COALESCE(us.target_level, 0),
	us.last_practiced_at, us.verified, us.created_at`

func scanSkillRecord(row database.Row) (skill.Record, error) {
	var rec skill.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.SkillID, &rec.SkillName,
		&rec.CurrentLevel, &rec.TargetLevel,
		&rec.LastPracticedAt, &rec.Verified, &rec.CreatedAt,
	)
	return rec, err
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillRecordColumns+`
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Record, 0)
	for rows.Next() {
		rec, err := scanSkillRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) FindByUserAndSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (skill.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillRecordColumns+`
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1 AND us.skill_id = $2`,
		userID, skillID,
	)

	rec, err := scanSkillRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return skill.Record{}, ErrSkillRecordNotFound
		}
		return skill.Record{}, err
	}
	return rec, nil
}

func (r *PostgresUserSkillRepository) Create(ctx context.Context, rec skill.Record) (skill.Record, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, current_level, target_level, last_practiced_at, verified)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, rec.SkillID, rec.CurrentLevel, rec.TargetLevel, rec.LastPracticedAt, rec.Verified,
	)
	if err != nil {
		return skill.Record{}, err
	}
	return r.findByID(ctx, rec.ID, rec.UserID)
}

func (r *PostgresUserSkillRepository) Update(ctx context.Context, rec skill.Record) (skill.Record, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE user_skills
		 SET current_level = $1, target_level = $2, last_practiced_at = $3, verified = $4
		 WHERE id = $5 AND user_id = $6`,
		rec.CurrentLevel, rec.TargetLevel, rec.LastPracticedAt, rec.Verified, rec.ID, rec.UserID,
	)
	if err != nil {
		return skill.Record{}, err
	}
	if affected == 0 {
		return skill.Record{}, ErrSkillRecordNotFound
	}
	return r.findByID(ctx, rec.ID, rec.UserID)
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM user_skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillRecordNotFound
	}
	return nil
}

func (r *PostgresUserSkillRepository) findByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (skill.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillRecordColumns+`
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.id = $1 AND us.user_id = $2`,
		id, userID,
	)

	rec, err := scanSkillRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return skill.Record{}, ErrSkillRecordNotFound
		}
		return skill.Record{}, err
	}
	return rec, nil
}
