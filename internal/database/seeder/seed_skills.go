package seeder

import (
	"context"
	"fmt"

	"skillpath/internal/database"
	"skillpath/internal/domain/skill"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name     string
		Category string
	}{
		{Name: "Go", Category: skill.CategoryTechnical},
		{Name: "Python", Category: skill.CategoryTechnical},
		{Name: "SQL", Category: skill.CategoryTechnical},
		{Name: "Docker", Category: skill.CategoryTechnical},
		{Name: "Kubernetes", Category: skill.CategoryTechnical},
		{Name: "System Design", Category: skill.CategoryTechnical},
		{Name: "Data Analysis", Category: skill.CategoryTechnical},
		{Name: "Machine Learning", Category: skill.CategoryTechnical},
		{Name: "Communication", Category: skill.CategorySoftSkill},
		{Name: "Leadership", Category: skill.CategorySoftSkill},
		{Name: "Mentoring", Category: skill.CategorySoftSkill},
		{Name: "English", Category: skill.CategoryLanguage},
		{Name: "Japanese", Category: skill.CategoryLanguage},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
