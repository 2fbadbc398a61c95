package app

import (
	"context"
	"log"
	"os"
	"time"

	"skillpath/internal/config"
	"skillpath/internal/database"
	dbpostgres "skillpath/internal/database/postgres"
	"skillpath/internal/delivery/http/handler"
	"skillpath/internal/delivery/http/middleware"
	"skillpath/internal/delivery/http/routes"
	"skillpath/internal/infrastructure/cache"
	pgpersist "skillpath/internal/infrastructure/persistence/postgres"
	"skillpath/internal/pkg/jwt"
	"skillpath/internal/repository"
	"skillpath/internal/usecase"
	"skillpath/internal/ws"
)

// Container owns the dependency graph: connections, repositories, usecases
// and the route registry built on top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Registry  *routes.Registry
	GoalBatch usecase.GoalBatchUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)
	hub := ws.NewHub(logger)

	userRepo := pgpersist.NewUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	userSkillRepo := repository.NewPostgresUserSkillRepository(db)
	pathRepo := repository.NewPostgresCareerPathRepository(db)
	courseRepo := repository.NewPostgresCourseRepository(db)
	enrollmentRepo := repository.NewPostgresEnrollmentRepository(db)
	goalRepo := repository.NewPostgresGoalRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	notifier := ws.NewNotifier(hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, userSkillRepo, goalRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	userSkillUC := usecase.NewUserSkillUsecase(userSkillRepo, skillRepo)
	goalUC := usecase.NewGoalUsecase(goalRepo, pathRepo, userSkillRepo, notifier)
	goalBatch := usecase.NewGoalBatchUsecase(goalRepo, pathRepo, userSkillRepo, logger)
	skillGapUC := usecase.NewSkillGapUsecase(pathRepo, userSkillRepo, courseRepo, enrollmentRepo)
	courseRecoUC := usecase.NewCourseRecommendationUsecase(courseRepo, enrollmentRepo, userSkillRepo, redisCache)
	careerPathUC := usecase.NewCareerPathUsecase(pathRepo, userSkillRepo, redisCache)

	registry := &routes.Registry{
		Health:     handler.NewHealthHandler(db),
		Auth:       handler.NewAuthHandler(authUC),
		User:       handler.NewUserHandler(userUC),
		Skill:      handler.NewSkillHandler(skillUC),
		UserSkill:  handler.NewUserSkillHandler(userSkillUC),
		Goal:       handler.NewGoalHandler(goalUC),
		CareerPath: handler.NewCareerPathHandler(careerPathUC),
		SkillGap:   handler.NewSkillGapHandler(skillGapUC),
		Course:     handler.NewCourseHandler(courseRecoUC),
		WS:         ws.NewHandler(hub, logger),
		AuthMW:     middleware.NewAuthMiddleware(jwtSvc),
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     redisCache,
		Hub:       hub,
		Registry:  registry,
		GoalBatch: goalBatch,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
