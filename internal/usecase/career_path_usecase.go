package usecase

import (
	"context"
	"errors"
	"time"

	"skillpath/internal/domain/scoring"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

var ErrNoCareerPathsFound = errors.New("no career paths found")

const (
	defaultPathLimit = 3
	maxPathLimit     = 10
	pathRecoCacheTTL = 10 * time.Minute
)

type CareerPathUsecase interface {
	ListPaths(ctx context.Context) ([]repository.CareerPath, error)
	GetPath(ctx context.Context, pathID uuid.UUID) (repository.CareerPath, []repository.PathRequirement, error)
	PredictPaths(ctx context.Context, userID uuid.UUID, limit int) ([]scoring.PathPrediction, error)
}

type CareerPathReco struct {
	paths      repository.CareerPathRepository
	userSkills repository.UserSkillRepository
	cache      RecommendationCache
}

func NewCareerPathUsecase(paths repository.CareerPathRepository, userSkills repository.UserSkillRepository, cache RecommendationCache) *CareerPathReco {
	return &CareerPathReco{paths: paths, userSkills: userSkills, cache: cache}
}

func (u *CareerPathReco) ListPaths(ctx context.Context) ([]repository.CareerPath, error) {
	paths, err := u.paths.ListPaths(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return paths, nil
}

func (u *CareerPathReco) GetPath(ctx context.Context, pathID uuid.UUID) (repository.CareerPath, []repository.PathRequirement, error) {
	if pathID == uuid.Nil {
		return repository.CareerPath{}, nil, ErrInvalidInput
	}

	p, err := u.paths.GetPath(ctx, pathID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerPathNotFound) {
			return repository.CareerPath{}, nil, ErrCareerPathNotFound
		}
		return repository.CareerPath{}, nil, ErrInternal
	}

	reqs, err := u.paths.FindRequirementsByPathID(ctx, pathID)
	if err != nil {
		return repository.CareerPath{}, nil, ErrInternal
	}
	return p, reqs, nil
}

func (u *CareerPathReco) PredictPaths(ctx context.Context, userID uuid.UUID, limit int) ([]scoring.PathPrediction, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultPathLimit
	}
	if limit > maxPathLimit {
		limit = maxPathLimit
	}

	key := recommendationCacheKey("paths", userID, limit)
	if u.cache != nil {
		var cached []scoring.PathPrediction
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	records, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	paths, err := u.paths.ListPaths(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if len(paths) == 0 {
		return nil, ErrNoCareerPathsFound
	}

	pathIDs := make([]uuid.UUID, 0, len(paths))
	for _, p := range paths {
		pathIDs = append(pathIDs, p.ID)
	}
	reqsByPath, err := u.paths.FindRequirementsByPathIDs(ctx, pathIDs)
	if err != nil {
		return nil, ErrInternal
	}

	candidates := make([]scoring.PathCandidate, 0, len(paths))
	for _, p := range paths {
		reqs, err := resolvedPathRequirements(reqsByPath[p.ID])
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, scoring.PathCandidate{
			PathID:       p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Requirements: reqs,
		})
	}

	predictions := scoring.PredictPaths(candidates, engineSkills(records), limit)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, predictions, pathRecoCacheTTL)
	}
	return predictions, nil
}
