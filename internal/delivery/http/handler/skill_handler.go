package handler

import (
	"errors"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type createSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.List)
	r.Post("/skills", h.Create)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}

	res := make([]dto.SkillResponse, 0, len(skills))
	for _, s := range skills {
		res = append(res, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	s, err := h.uc.CreateSkill(c.Context(), usecase.CreateSkillInput{
		Name:     req.Name,
		Category: req.Category,
	})
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill name or category", err)
	case errors.Is(err, usecase.ErrSkillAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated,
		dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
}
