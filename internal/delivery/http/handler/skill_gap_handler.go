package handler

import (
	"errors"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/domain/scoring"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/career-paths/:id")
	grp.Get("/gaps", h.Gaps)
	grp.Get("/missing-skills", h.MissingSkills)
	grp.Get("/next-course", h.NextCourse)
}

func (h *SkillGapHandler) Gaps(c fiber.Ctx) error {
	userID, pathID, appErr := h.authAndPath(c)
	if appErr != nil {
		return appErr
	}

	report, err := h.uc.AnalyzeCareerPathGaps(c.Context(), userID, pathID)
	if err != nil {
		return mapSkillGapUsecaseError(err)
	}

	res := dto.GapReportResponse{
		CareerPathID: report.CareerPathID,
		Coverage:     report.Coverage,
		Gaps:         make([]dto.SkillGapResponse, 0, len(report.Gaps)),
	}
	for _, g := range report.Gaps {
		res.Gaps = append(res.Gaps, dto.SkillGapResponse{
			SkillID:          g.SkillID,
			SkillName:        g.SkillName,
			CurrentLevel:     g.CurrentLevel,
			RecommendedLevel: g.RecommendedLevel,
			Importance:       g.Importance,
			Gap:              g.Gap,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *SkillGapHandler) MissingSkills(c fiber.Ctx) error {
	userID, pathID, appErr := h.authAndPath(c)
	if appErr != nil {
		return appErr
	}

	threshold := queryInt(c, "level_threshold", 0)
	missing, err := h.uc.MissingSkills(c.Context(), userID, pathID, threshold)
	if err != nil {
		return mapSkillGapUsecaseError(err)
	}

	res := make([]dto.MissingSkillResponse, 0, len(missing))
	for _, m := range missing {
		res = append(res, dto.MissingSkillResponse{SkillID: m.SkillID, SkillName: m.SkillName})
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *SkillGapHandler) NextCourse(c fiber.Ctx) error {
	userID, pathID, appErr := h.authAndPath(c)
	if appErr != nil {
		return appErr
	}

	best, err := h.uc.NextCourse(c.Context(), userID, pathID)
	if err != nil {
		return mapSkillGapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, courseResponse(best))
}

func (h *SkillGapHandler) authAndPath(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	pathID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	return userID, pathID, nil
}

func courseResponse(c scoring.CourseCandidate) dto.CourseResponse {
	res := dto.CourseResponse{
		ID:          c.CourseID,
		Title:       c.Title,
		Description: c.Description,
		Provider:    c.Provider,
		URL:         c.URL,
		Rating:      c.Rating,
		Skills:      make([]dto.CourseSkillResponse, 0, len(c.Skills)),
	}
	for _, cs := range c.Skills {
		res.Skills = append(res.Skills, dto.CourseSkillResponse{
			SkillID:     cs.SkillID,
			SkillName:   cs.SkillName,
			LevelGained: cs.LevelGained,
		})
	}
	return res
}

func mapSkillGapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrCareerPathNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career path not found", err)
	case errors.Is(err, usecase.ErrNoCourseAvailable):
		return middleware.NewAppError(fiber.StatusNotFound, "No suitable course available", err)
	case errors.Is(err, usecase.ErrUnresolvedSkill):
		return middleware.NewAppError(fiber.StatusConflict, "Career path references an unknown skill", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}
}
