package handler

import (
	"errors"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me", h.Me)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	profile, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}

	res := dto.UserProfileResponse{
		UserResponse: dto.UserResponse{
			ID:        profile.User.ID,
			Email:     profile.User.Email,
			CreatedAt: profile.User.CreatedAt,
		},
		SkillCount: profile.SkillCount,
		GoalCount:  profile.GoalCount,
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}
