package handler

import (
	"errors"
	"time"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/domain/skill"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type addUserSkillRequest struct {
	SkillID      uuid.UUID `json:"skill_id"`
	CurrentLevel int       `json:"current_level"`
	TargetLevel  int       `json:"target_level"`
}

type updateUserSkillRequest struct {
	CurrentLevel    int        `json:"current_level"`
	TargetLevel     int        `json:"target_level"`
	LastPracticedAt *time.Time `json:"last_practiced_at"`
	Verified        bool       `json:"verified"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	records, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	res := make([]dto.UserSkillResponse, 0, len(records))
	for _, rec := range records {
		res = append(res, userSkillResponse(rec))
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req addUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	created, err := h.uc.AddUserSkill(c.Context(), userID, usecase.AddUserSkillInput{
		SkillID:      req.SkillID,
		CurrentLevel: req.CurrentLevel,
		TargetLevel:  req.TargetLevel,
	})
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, userSkillResponse(created))
}

func (h *UserSkillHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	var req updateUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	updated, err := h.uc.UpdateUserSkill(c.Context(), userID, id, usecase.UpdateUserSkillInput{
		CurrentLevel:    req.CurrentLevel,
		TargetLevel:     req.TargetLevel,
		LastPracticedAt: req.LastPracticedAt,
		Verified:        req.Verified,
	})
	if err != nil {
		return mapUserSkillUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageSuccess, userSkillResponse(updated))
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := h.uc.DeleteUserSkill(c.Context(), userID, id); err != nil {
		return mapUserSkillUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, nil)
}

func userSkillResponse(rec skill.Record) dto.UserSkillResponse {
	return dto.UserSkillResponse{
		ID:              rec.ID,
		SkillID:         rec.SkillID,
		SkillName:       rec.SkillName,
		CurrentLevel:    rec.CurrentLevel,
		TargetLevel:     rec.TargetLevel,
		LastPracticedAt: rec.LastPracticedAt,
		Verified:        rec.Verified,
	}
}

func mapUserSkillUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", err)
	case errors.Is(err, usecase.ErrSkillAlreadyAdded):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already added", err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}
}
