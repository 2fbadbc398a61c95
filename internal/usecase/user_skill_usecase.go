package usecase

import (
	"context"
	"errors"
	"time"

	"skillpath/internal/domain/skill"
	"skillpath/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSkillAlreadyAdded = errors.New("skill already added")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrInvalidLevel      = errors.New("invalid proficiency level")
	ErrInvalidInput      = errors.New("invalid input")
)

type AddUserSkillInput struct {
	SkillID      uuid.UUID
	CurrentLevel int
	TargetLevel  int
}

type UpdateUserSkillInput struct {
	CurrentLevel    int
	TargetLevel     int
	LastPracticedAt *time.Time
	Verified        bool
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.Record, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (skill.Record, error)
	UpdateUserSkill(ctx context.Context, userID uuid.UUID, recordID uuid.UUID, in UpdateUserSkillInput) (skill.Record, error)
	DeleteUserSkill(ctx context.Context, userID uuid.UUID, recordID uuid.UUID) error
}

type UserSkill struct {
	records repository.UserSkillRepository
	skills  repository.SkillRepository
}

func NewUserSkillUsecase(records repository.UserSkillRepository, skills repository.SkillRepository) *UserSkill {
	return &UserSkill{records: records, skills: skills}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	records, err := u.records.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return records, nil
}

func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (skill.Record, error) {
	if userID == uuid.Nil {
		return skill.Record{}, ErrUnauthorized
	}
	if in.SkillID == uuid.Nil {
		return skill.Record{}, ErrInvalidInput
	}
	if !isValidLevel(in.CurrentLevel) || !isValidLevel(in.TargetLevel) {
		return skill.Record{}, ErrInvalidLevel
	}
	// target may drift below current later as catalogs change, but a new
	// record must start with target >= current.
	if in.TargetLevel < in.CurrentLevel {
		return skill.Record{}, ErrInvalidInput
	}

	exists, err := u.skills.ExistsByID(ctx, in.SkillID)
	if err != nil {
		return skill.Record{}, ErrInternal
	}
	if !exists {
		return skill.Record{}, ErrSkillNotFound
	}

	_, err = u.records.FindByUserAndSkill(ctx, userID, in.SkillID)
	if err == nil {
		return skill.Record{}, ErrSkillAlreadyAdded
	}
	if !errors.Is(err, repository.ErrSkillRecordNotFound) {
		return skill.Record{}, ErrInternal
	}

	created, err := u.records.Create(ctx, skill.Record{
		ID:           uuid.New(),
		UserID:       userID,
		SkillID:      in.SkillID,
		CurrentLevel: in.CurrentLevel,
		TargetLevel:  in.TargetLevel,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return skill.Record{}, ErrSkillAlreadyAdded
		}
		if isForeignKeyViolation(err) {
			return skill.Record{}, ErrSkillNotFound
		}
		return skill.Record{}, ErrInternal
	}
	return created, nil
}

func (u *UserSkill) UpdateUserSkill(ctx context.Context, userID uuid.UUID, recordID uuid.UUID, in UpdateUserSkillInput) (skill.Record, error) {
	if userID == uuid.Nil {
		return skill.Record{}, ErrUnauthorized
	}
	if recordID == uuid.Nil {
		return skill.Record{}, ErrInvalidInput
	}
	if !isValidLevel(in.CurrentLevel) || !isValidLevel(in.TargetLevel) {
		return skill.Record{}, ErrInvalidLevel
	}

	updated, err := u.records.Update(ctx, skill.Record{
		ID:              recordID,
		UserID:          userID,
		CurrentLevel:    in.CurrentLevel,
		TargetLevel:     in.TargetLevel,
		LastPracticedAt: in.LastPracticedAt,
		Verified:        in.Verified,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillRecordNotFound) {
			return skill.Record{}, ErrSkillNotFound
		}
		return skill.Record{}, ErrInternal
	}
	return updated, nil
}

func (u *UserSkill) DeleteUserSkill(ctx context.Context, userID uuid.UUID, recordID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if recordID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.records.Delete(ctx, recordID, userID); err != nil {
		if errors.Is(err, repository.ErrSkillRecordNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}

func isValidLevel(v int) bool {
	return v >= 1 && v <= 5
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
