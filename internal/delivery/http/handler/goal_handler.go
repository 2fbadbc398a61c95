package handler

import (
	"errors"
	"time"

	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/domain/goal"
	"skillpath/internal/pkg/response"
	"skillpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GoalHandler struct {
	uc usecase.GoalUsecase
}

type createGoalRequest struct {
	CareerPathID uuid.UUID  `json:"career_path_id"`
	TargetDate   *time.Time `json:"target_date"`
}

type setGoalStatusRequest struct {
	Status string `json:"status"`
}

func NewGoalHandler(uc usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

func (h *GoalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/goals")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Delete("/:id", h.Delete)
	grp.Post("/:id/recompute", h.Recompute)
	grp.Patch("/:id/status", h.SetStatus)
}

func (h *GoalHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	items, err := h.uc.ListGoals(c.Context(), userID)
	if err != nil {
		return mapGoalUsecaseError(err)
	}

	res := make([]dto.GoalResponse, 0, len(items))
	for _, it := range items {
		res = append(res, goalResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, res)
}

func (h *GoalHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req createGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	item, err := h.uc.CreateGoal(c.Context(), userID, usecase.CreateGoalInput{
		CareerPathID: req.CareerPathID,
		TargetDate:   req.TargetDate,
	})
	if err != nil {
		return mapGoalUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, goalResponse(item))
}

func (h *GoalHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	item, err := h.uc.GetGoal(c.Context(), userID, id)
	if err != nil {
		return mapGoalUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, goalResponse(item))
}

func (h *GoalHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := h.uc.DeleteGoal(c.Context(), userID, id); err != nil {
		return mapGoalUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, nil)
}

func (h *GoalHandler) Recompute(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	item, err := h.uc.RecomputeGoal(c.Context(), userID, id)
	if err != nil {
		return mapGoalUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, goalResponse(item))
}

func (h *GoalHandler) SetStatus(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	var req setGoalStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	item, err := h.uc.SetGoalStatus(c.Context(), userID, id, goal.Status(req.Status))
	if err != nil {
		return mapGoalUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageSuccess, goalResponse(item))
}

func goalResponse(it usecase.GoalItem) dto.GoalResponse {
	return dto.GoalResponse{
		ID:            it.Goal.ID,
		CareerPathID:  it.Goal.CareerPathID,
		Status:        string(it.Goal.Status),
		Progress:      it.Goal.Progress,
		TargetDate:    it.Goal.TargetDate,
		EstimatedDate: it.EstimatedDate,
		Overdue:       it.Overdue,
		CreatedAt:     it.Goal.CreatedAt,
		UpdatedAt:     it.Goal.UpdatedAt,
	}
}

func mapGoalUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrGoalNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Goal not found", err)
	case errors.Is(err, usecase.ErrGoalAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Goal already exists for career path", err)
	case errors.Is(err, usecase.ErrCareerPathNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career path not found", err)
	case errors.Is(err, usecase.ErrInvalidGoalStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid goal status", err)
	case errors.Is(err, usecase.ErrGoalStatusForbidden):
		return middleware.NewAppError(fiber.StatusConflict, "Goal status transition not allowed", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternal, err)
	}
}
