package seeder

import (
	"context"
	"fmt"

	"skillpath/internal/database"
)

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses", "id", "title", "provider", "rating"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "course_skills", "id", "course_id", "skill_id", "level_gained"); err != nil {
		return err
	}

	courses := []struct {
		Title    string
		Provider string
		Rating   float64
		Skills   map[string]int // skill name -> level gained
	}{
		{
			Title:    "Go for Working Engineers",
			Provider: "seed",
			Rating:   4.7,
			Skills:   map[string]int{"Go": 3, "SQL": 2},
		},
		{
			Title:    "Kubernetes in Production",
			Provider: "seed",
			Rating:   4.5,
			Skills:   map[string]int{"Kubernetes": 4, "Docker": 3},
		},
		{
			Title:    "Practical Machine Learning",
			Provider: "seed",
			Rating:   4.6,
			Skills:   map[string]int{"Machine Learning": 3, "Python": 3, "Data Analysis": 2},
		},
		{
			Title:    "Leading Engineering Teams",
			Provider: "seed",
			Rating:   4.3,
			Skills:   map[string]int{"Leadership": 3, "Mentoring": 2, "Communication": 2},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range courses {
		if _, err := tx.Exec(ctx,
			`INSERT INTO courses (id, title, provider, external_id, rating)
			 VALUES (gen_random_uuid(), $1, $2, $1, $3)
			 ON CONFLICT (provider, external_id) DO NOTHING`,
			c.Title, c.Provider, c.Rating,
		); err != nil {
			return err
		}

		for skillName, level := range c.Skills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO course_skills (id, course_id, skill_id, level_gained)
				 SELECT gen_random_uuid(), co.id, s.id, $3
				 FROM courses co, skills s
				 WHERE co.provider = $4 AND co.external_id = $1 AND s.name = $2
				 ON CONFLICT (course_id, skill_id) DO NOTHING`,
				c.Title, skillName, level, c.Provider,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
