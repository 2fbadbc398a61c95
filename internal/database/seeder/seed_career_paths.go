package seeder

import (
	"context"
	"fmt"

	"skillpath/internal/database"
)

type CareerPathsSeeder struct{}

func (CareerPathsSeeder) Name() string { return "career_paths" }

// Seeds a few default paths with their weighted skill requirements.
// importance_level is 1-3 per path requirement.
func (CareerPathsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "career_paths", "id", "title", "description"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "career_path_skills", "id", "career_path_id", "skill_id", "importance_level"); err != nil {
		return err
	}

	paths := []struct {
		Title       string
		Description string
		Skills      map[string]int
	}{
		{
			Title:       "Backend Engineer",
			Description: "Designs and operates server-side systems.",
			Skills:      map[string]int{"Go": 3, "SQL": 3, "Docker": 2, "System Design": 2, "Communication": 1},
		},
		{
			Title:       "Platform Engineer",
			Description: "Builds internal infrastructure and deployment platforms.",
			Skills:      map[string]int{"Kubernetes": 3, "Docker": 3, "Go": 2, "System Design": 3},
		},
		{
			Title:       "Data Scientist",
			Description: "Turns data into decisions and models.",
			Skills:      map[string]int{"Python": 3, "Data Analysis": 3, "Machine Learning": 3, "SQL": 2, "Communication": 2},
		},
		{
			Title:       "Engineering Manager",
			Description: "Leads and grows an engineering team.",
			Skills:      map[string]int{"Leadership": 3, "Mentoring": 3, "Communication": 3, "System Design": 1},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range paths {
		if _, err := tx.Exec(ctx,
			`INSERT INTO career_paths (id, title, description) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (title) DO NOTHING`,
			p.Title, p.Description,
		); err != nil {
			return err
		}

		for skillName, importance := range p.Skills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO career_path_skills (id, career_path_id, skill_id, importance_level)
				 SELECT gen_random_uuid(), cp.id, s.id, $3
				 FROM career_paths cp, skills s
				 WHERE cp.title = $1 AND s.name = $2
				 ON CONFLICT (career_path_id, skill_id) DO NOTHING`,
				p.Title, skillName, importance,
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
