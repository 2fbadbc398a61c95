package routes

import (
	"skillpath/internal/delivery/http/handler"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry holds every handler and wires the route tree.
type Registry struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Skill      *handler.SkillHandler
	UserSkill  *handler.UserSkillHandler
	Goal       *handler.GoalHandler
	CareerPath *handler.CareerPathHandler
	SkillGap   *handler.SkillGapHandler
	Course     *handler.CourseHandler
	WS         *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}

	protected := v1
	if r.AuthMW != nil {
		protected = v1.Group("", r.AuthMW.Middleware())
	}

	if r.User != nil {
		r.User.RegisterRoutes(protected)
	}
	if r.Skill != nil {
		r.Skill.RegisterRoutes(protected)
	}
	if r.UserSkill != nil {
		r.UserSkill.RegisterRoutes(protected)
	}
	if r.Goal != nil {
		r.Goal.RegisterRoutes(protected)
	}
	if r.CareerPath != nil {
		r.CareerPath.RegisterRoutes(protected)
	}
	if r.SkillGap != nil {
		r.SkillGap.RegisterRoutes(protected)
	}
	if r.Course != nil {
		r.Course.RegisterRoutes(protected)
	}
	if r.WS != nil {
		protected.Get("/ws/goals", r.WS.HandleGoalsWS)
	}
}
