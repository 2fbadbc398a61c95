package usecase

import (
	"context"
	"errors"
	"testing"

	"skillpath/internal/domain/skill"
)

func TestCreateSkillTrimsNameAndStores(t *testing.T) {
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo)

	s, err := uc.CreateSkill(context.Background(), CreateSkillInput{
		Name:     "  Kubernetes  ",
		Category: skill.CategoryTechnical,
	})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	if s.Name != "Kubernetes" {
		t.Fatalf("name = %q, want trimmed", s.Name)
	}
	if len(repo.skills) != 1 {
		t.Fatalf("stored %d skills, want 1", len(repo.skills))
	}
}

func TestCreateSkillRejectsBadCategory(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{})

	_, err := uc.CreateSkill(context.Background(), CreateSkillInput{Name: "Go", Category: "hobby"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	_, err = uc.CreateSkill(context.Background(), CreateSkillInput{Name: "   ", Category: skill.CategoryTechnical})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestListSkillsWrapsRepoError(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{err: errors.New("boom")})

	if _, err := uc.ListSkills(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
