package usecase

import (
	"context"
	"errors"

	"skillpath/internal/domain/user"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserProfile struct {
	User       user.User
	SkillCount int
	GoalCount  int
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (UserProfile, error)
}

type User struct {
	users      user.Repository
	userSkills repository.UserSkillRepository
	goals      repository.GoalRepository
}

func NewUserUsecase(users user.Repository, userSkills repository.UserSkillRepository, goals repository.GoalRepository) *User {
	return &User{users: users, userSkills: userSkills, goals: goals}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (UserProfile, error) {
	if userID == uuid.Nil {
		return UserProfile{}, ErrUnauthorized
	}

	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return UserProfile{}, ErrUserNotFound
		}
		return UserProfile{}, ErrInternal
	}
	usr.PasswordHash = ""

	records, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return UserProfile{}, ErrInternal
	}
	goals, err := u.goals.FindByUserID(ctx, userID)
	if err != nil {
		return UserProfile{}, ErrInternal
	}

	return UserProfile{
		User:       usr,
		SkillCount: len(records),
		GoalCount:  len(goals),
	}, nil
}
