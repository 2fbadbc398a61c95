package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillpath/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCareerPathNotFound = errors.New("career path not found")

type CareerPath struct {
	ID          uuid.UUID
	Title       string
	Description string
}

// PathRequirement is one career_path_skills row: the importance weight
// doubles as the recommended level on the catalog's current schema.
type PathRequirement struct {
	SkillID         uuid.UUID
	SkillName       string
	ImportanceLevel int
}

type CareerPathRepository interface {
	ListPaths(ctx context.Context) ([]CareerPath, error)
	GetPath(ctx context.Context, id uuid.UUID) (CareerPath, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindRequirementsByPathID(ctx context.Context, pathID uuid.UUID) ([]PathRequirement, error)
	FindRequirementsByPathIDs(ctx context.Context, pathIDs []uuid.UUID) (map[uuid.UUID][]PathRequirement, error)
}

type PostgresCareerPathRepository struct {
	db database.DB
}

func NewPostgresCareerPathRepository(db database.DB) *PostgresCareerPathRepository {
	return &PostgresCareerPathRepository{db: db}
}

func (r *PostgresCareerPathRepository) ListPaths(ctx context.Context) ([]CareerPath, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, '') FROM career_paths ORDER BY title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CareerPath, 0)
	for rows.Next() {
		var p CareerPath
		if err := rows.Scan(&p.ID, &p.Title, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCareerPathRepository) GetPath(ctx context.Context, id uuid.UUID) (CareerPath, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, '') FROM career_paths WHERE id = $1`,
		id,
	)

	var p CareerPath
	if err := row.Scan(&p.ID, &p.Title, &p.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return CareerPath{}, ErrCareerPathNotFound
		}
		return CareerPath{}, err
	}
	return p, nil
}

func (r *PostgresCareerPathRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM career_paths WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCareerPathRepository) FindRequirementsByPathID(ctx context.Context, pathID uuid.UUID) ([]PathRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT cps.skill_id, COALESCE(s.name, ''), COALESCE(cps.importance_level, 0)
		 FROM career_path_skills cps
		 LEFT JOIN skills s ON s.id = cps.skill_id
		 WHERE cps.career_path_id = $1`,
		pathID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PathRequirement, 0)
	for rows.Next() {
		var pr PathRequirement
		if err := rows.Scan(&pr.SkillID, &pr.SkillName, &pr.ImportanceLevel); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCareerPathRepository) FindRequirementsByPathIDs(ctx context.Context, pathIDs []uuid.UUID) (map[uuid.UUID][]PathRequirement, error) {
	out := make(map[uuid.UUID][]PathRequirement, len(pathIDs))
	if len(pathIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT cps.career_path_id, cps.skill_id, COALESCE(s.name, ''), COALESCE(cps.importance_level, 0)
		 FROM career_path_skills cps
		 LEFT JOIN skills s ON s.id = cps.skill_id
		 WHERE cps.career_path_id = ANY($1)`,
		pathIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pathID uuid.UUID
		var pr PathRequirement
		if err := rows.Scan(&pathID, &pr.SkillID, &pr.SkillName, &pr.ImportanceLevel); err != nil {
			return nil, err
		}
		out[pathID] = append(out[pathID], pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
