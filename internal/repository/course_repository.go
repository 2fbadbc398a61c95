package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skillpath/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCourseNotFound = errors.New("course not found")

type Course struct {
	ID          uuid.UUID
	Title       string
	Description string
	Provider    string
	URL         string
	Rating      float64
	CreatedAt   time.Time
}

type CourseSkillRow struct {
	SkillID     uuid.UUID
	SkillName   string
	LevelGained int
}

// CourseUpsert is the importer's write shape; matched on (provider,
// external_id) so re-imports refresh rather than duplicate.
type CourseUpsert struct {
	Provider    string
	ExternalID  string
	Title       string
	Description string
	URL         string
	Rating      float64
	Skills      map[uuid.UUID]int // skill id -> level gained
}

type CourseRepository interface {
	ListCourses(ctx context.Context, limit, offset int) ([]Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (Course, error)
	FindSkillsByCourseIDs(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID][]CourseSkillRow, error)
	UpsertCourse(ctx context.Context, c CourseUpsert) (uuid.UUID, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) ListCourses(ctx context.Context, limit, offset int) ([]Course, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(provider, ''), COALESCE(url, ''), COALESCE(rating, 0), created_at
		 FROM courses
		 ORDER BY rating DESC, title ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Course, 0)
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Provider, &c.URL, &c.Rating, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) GetCourse(ctx context.Context, id uuid.UUID) (Course, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(provider, ''), COALESCE(url, ''), COALESCE(rating, 0), created_at
		 FROM courses WHERE id = $1`,
		id,
	)

	var c Course
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Provider, &c.URL, &c.Rating, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Course{}, ErrCourseNotFound
		}
		return Course{}, err
	}
	return c, nil
}

func (r *PostgresCourseRepository) FindSkillsByCourseIDs(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID][]CourseSkillRow, error) {
	out := make(map[uuid.UUID][]CourseSkillRow, len(courseIDs))
	if len(courseIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT cs.course_id, cs.skill_id, COALESCE(s.name, ''), COALESCE(cs.level_gained, 0)
		 FROM course_skills cs
		 LEFT JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.course_id = ANY($1)`,
		courseIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courseID uuid.UUID
		var csr CourseSkillRow
		if err := rows.Scan(&courseID, &csr.SkillID, &csr.SkillName, &csr.LevelGained); err != nil {
			return nil, err
		}
		out[courseID] = append(out[courseID], csr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) UpsertCourse(ctx context.Context, c CourseUpsert) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO courses (id, title, description, provider, url, external_id, rating)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		 ON CONFLICT (provider, external_id) DO UPDATE
		 SET title = EXCLUDED.title, description = EXCLUDED.description,
		     url = EXCLUDED.url, rating = EXCLUDED.rating
		 RETURNING id`,
		c.Title, c.Description, c.Provider, c.URL, c.ExternalID, c.Rating,
	)

	var courseID uuid.UUID
	if err := row.Scan(&courseID); err != nil {
		return uuid.Nil, err
	}

	for skillID, level := range c.Skills {
		if skillID == uuid.Nil || level < 1 {
			continue
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO course_skills (id, course_id, skill_id, level_gained)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (course_id, skill_id) DO UPDATE SET level_gained = EXCLUDED.level_gained`,
			courseID, skillID, level,
		); err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}
	return courseID, nil
}
