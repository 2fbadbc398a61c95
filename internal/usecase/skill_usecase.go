package usecase

import (
	"context"
	"errors"
	"strings"

	"skillpath/internal/domain/skill"
	"skillpath/internal/repository"
)

var ErrSkillAlreadyExists = errors.New("skill already exists")

type CreateSkillInput struct {
	Name     string
	Category string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error)
}

type Skill struct {
	repo repository.SkillRepository
}

func NewSkillUsecase(repo repository.SkillRepository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	skills, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return skills, nil
}

func (u *Skill) CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !skill.ValidCategory(in.Category) {
		return skill.Skill{}, ErrInvalidInput
	}

	s, err := u.repo.CreateSkill(ctx, name, in.Category)
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Skill{}, ErrSkillAlreadyExists
		}
		return skill.Skill{}, ErrInternal
	}
	return s, nil
}
