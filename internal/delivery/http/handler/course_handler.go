package handler

import (
	"errors"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/pkg/response"
	"skillpath/internal/repository"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CourseHandler struct {
	uc usecase.CourseRecommendationUsecase
}

func NewCourseHandler(uc usecase.CourseRecommendationUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

func (h *CourseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/courses")
	grp.Get("/recommendations", h.Recommendations)
	grp.Post("/:id/enroll", h.Enroll)
	grp.Delete("/:id/enroll", h.Unenroll)
}

func (h *CourseHandler) Recommendations(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	limit := queryInt(c, "limit", 0)
	ranked, err := h.uc.GetRecommendations(c.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrNoCoursesFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "No courses found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}

	res := make([]dto.ScoredCourseResponse, 0, len(ranked))
	for _, sc := range ranked {
		res = append(res, dto.ScoredCourseResponse{
			CourseResponse: courseResponse(sc.CourseCandidate),
			MatchScore:     sc.MatchScore,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *CourseHandler) Enroll(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := h.uc.Enroll(c.Context(), userID, courseID); err != nil {
		switch {
		case errors.Is(err, repository.ErrCourseNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Course not found", err)
		case errors.Is(err, repository.ErrAlreadyEnrolled):
			return middleware.NewAppError(fiber.StatusConflict, "Already enrolled", err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
		}
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, nil)
}

func (h *CourseHandler) Unenroll(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := h.uc.Unenroll(c.Context(), userID, courseID); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, nil)
}
