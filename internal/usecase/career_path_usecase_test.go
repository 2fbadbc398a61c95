package usecase

import (
	"context"
	"errors"
	"testing"

	"skillpath/internal/domain/skill"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

func TestPredictPaths_RanksByConfidence(t *testing.T) {
	userID := uuid.New()
	goID := uuid.New()
	reactID := uuid.New()

	backend := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	frontend := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	paths := &mockPathRepo{
		paths: []repository.CareerPath{
			{ID: backend, Title: "Backend Engineer"},
			{ID: frontend, Title: "Frontend Engineer"},
		},
		reqs: map[uuid.UUID][]repository.PathRequirement{
			backend: {
				{SkillID: goID, SkillName: "Go", ImportanceLevel: 2},
			},
			frontend: {
				{SkillID: reactID, SkillName: "React", ImportanceLevel: 3},
			},
		},
	}
	records := &mockUserSkillRepo{records: []skill.Record{
		{ID: uuid.New(), UserID: userID, SkillID: goID, SkillName: "Go", CurrentLevel: 4, TargetLevel: 5},
	}}

	uc := NewCareerPathUsecase(paths, records, nil)
	predictions, err := uc.PredictPaths(context.Background(), userID, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}

	// (4/2)*100 / 1 requirement = 200 for backend, 0 for frontend.
	if predictions[0].PathID != backend {
		t.Errorf("top prediction = %s, want Backend Engineer", predictions[0].Title)
	}
	if predictions[0].Confidence != 200 {
		t.Errorf("confidence = %v, want 200", predictions[0].Confidence)
	}
	if predictions[1].Confidence != 0 {
		t.Errorf("frontend confidence = %v, want 0", predictions[1].Confidence)
	}
	if len(predictions[0].MatchingSkills) != 1 || predictions[0].MatchingSkills[0].SkillName != "Go" {
		t.Errorf("matching skills = %v, want the Go alignment", predictions[0].MatchingSkills)
	}
}

func TestPredictPaths_LimitApplied(t *testing.T) {
	userID := uuid.New()
	paths := &mockPathRepo{reqs: map[uuid.UUID][]repository.PathRequirement{}}
	for i := 0; i < 5; i++ {
		id := uuid.New()
		paths.paths = append(paths.paths, repository.CareerPath{ID: id})
		paths.reqs[id] = nil
	}

	uc := NewCareerPathUsecase(paths, &mockUserSkillRepo{}, nil)
	predictions, err := uc.PredictPaths(context.Background(), userID, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}
}

func TestPredictPaths_CachedOnRepeat(t *testing.T) {
	userID := uuid.New()
	pathID := uuid.New()
	paths := &mockPathRepo{
		paths: []repository.CareerPath{{ID: pathID, Title: "Backend Engineer"}},
		reqs:  map[uuid.UUID][]repository.PathRequirement{pathID: nil},
	}
	cache := &mockCache{}

	uc := NewCareerPathUsecase(paths, &mockUserSkillRepo{}, cache)
	if _, err := uc.PredictPaths(context.Background(), userID, 3); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := uc.PredictPaths(context.Background(), userID, 3); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if cache.sets != 1 || cache.hits != 1 {
		t.Errorf("cache sets=%d hits=%d, want 1 and 1", cache.sets, cache.hits)
	}
}

func TestPredictPaths_NoPaths(t *testing.T) {
	uc := NewCareerPathUsecase(&mockPathRepo{}, &mockUserSkillRepo{}, nil)
	_, err := uc.PredictPaths(context.Background(), uuid.New(), 3)
	if !errors.Is(err, ErrNoCareerPathsFound) {
		t.Fatalf("expected ErrNoCareerPathsFound, got %v", err)
	}
}

func TestGetPath(t *testing.T) {
	pathID := uuid.New()
	paths := &mockPathRepo{
		paths: []repository.CareerPath{{ID: pathID, Title: "Data Engineer"}},
		reqs: map[uuid.UUID][]repository.PathRequirement{pathID: {
			{SkillID: uuid.New(), SkillName: "SQL", ImportanceLevel: 3},
		}},
	}

	uc := NewCareerPathUsecase(paths, &mockUserSkillRepo{}, nil)
	p, reqs, err := uc.GetPath(context.Background(), pathID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Title != "Data Engineer" || len(reqs) != 1 {
		t.Errorf("got %q with %d reqs, want Data Engineer with 1", p.Title, len(reqs))
	}

	if _, _, err := uc.GetPath(context.Background(), uuid.New()); !errors.Is(err, ErrCareerPathNotFound) {
		t.Errorf("expected ErrCareerPathNotFound, got %v", err)
	}
}
