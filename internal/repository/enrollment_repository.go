package repository

import (
	"context"
	"errors"

	"skillpath/internal/database"

	"github.com/google/uuid"
)

var ErrAlreadyEnrolled = errors.New("already enrolled")

type EnrollmentRepository interface {
	FindCourseIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Enroll(ctx context.Context, userID, courseID uuid.UUID) error
	Unenroll(ctx context.Context, userID, courseID uuid.UUID) error
}

type PostgresEnrollmentRepository struct {
	db database.DB
}

func NewPostgresEnrollmentRepository(db database.DB) *PostgresEnrollmentRepository {
	return &PostgresEnrollmentRepository{db: db}
}

func (r *PostgresEnrollmentRepository) FindCourseIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT course_id FROM enrollments WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEnrollmentRepository) Enroll(ctx context.Context, userID, courseID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO enrollments (id, user_id, course_id)
		 VALUES (gen_random_uuid(), $1, $2)
		 ON CONFLICT (user_id, course_id) DO NOTHING`,
		userID, courseID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlreadyEnrolled
	}
	return nil
}

func (r *PostgresEnrollmentRepository) Unenroll(ctx context.Context, userID, courseID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`,
		userID, courseID,
	)
	return err
}
