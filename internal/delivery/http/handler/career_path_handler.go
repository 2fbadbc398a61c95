package handler

import (
	"errors"
	"strconv"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CareerPathHandler struct {
	uc usecase.CareerPathUsecase
}

func NewCareerPathHandler(uc usecase.CareerPathUsecase) *CareerPathHandler {
	return &CareerPathHandler{uc: uc}
}

func (h *CareerPathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/career-paths")
	grp.Get("/", h.List)
	grp.Get("/predictions", h.Predict)
	grp.Get("/:id", h.Get)
}

func (h *CareerPathHandler) List(c fiber.Ctx) error {
	paths, err := h.uc.ListPaths(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}

	res := make([]dto.CareerPathResponse, 0, len(paths))
	for _, p := range paths {
		res = append(res, dto.CareerPathResponse{ID: p.ID, Title: p.Title, Description: p.Description})
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *CareerPathHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	p, reqs, err := h.uc.GetPath(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCareerPathNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Career path not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}

	res := dto.CareerPathResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Requirements: make([]dto.PathRequirementResponse, 0, len(reqs)),
	}
	for _, req := range reqs {
		res.Requirements = append(res.Requirements, dto.PathRequirementResponse{
			SkillID:          req.SkillID,
			SkillName:        req.SkillName,
			Importance:       req.ImportanceLevel,
			RecommendedLevel: req.ImportanceLevel,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *CareerPathHandler) Predict(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	limit := queryInt(c, "limit", 0)
	predictions, err := h.uc.PredictPaths(c.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrNoCareerPathsFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "No career paths found", err)
		}
		if errors.Is(err, usecase.ErrUnresolvedSkill) {
			return middleware.NewAppError(fiber.StatusConflict, "Career path references an unknown skill", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}

	res := make([]dto.PathPredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		item := dto.PathPredictionResponse{
			PathID:         p.PathID,
			Title:          p.Title,
			Description:    p.Description,
			Confidence:     p.Confidence,
			MatchingSkills: make([]dto.SkillAlignmentResponse, 0, len(p.MatchingSkills)),
		}
		for _, m := range p.MatchingSkills {
			item.MatchingSkills = append(item.MatchingSkills, dto.SkillAlignmentResponse{
				SkillID:       m.SkillID,
				SkillName:     m.SkillName,
				CurrentLevel:  m.CurrentLevel,
				RequiredLevel: m.RequiredLevel,
			})
		}
		res = append(res, item)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
