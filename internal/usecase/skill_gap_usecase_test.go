package usecase

import (
	"context"
	"errors"
	"testing"

	"skillpath/internal/domain/skill"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

func TestAnalyzeCareerPathGaps(t *testing.T) {
	userID := uuid.New()
	pathID := uuid.New()
	goID := uuid.New()
	sqlID := uuid.New()
	dockerID := uuid.New()

	paths := &mockPathRepo{
		paths: []repository.CareerPath{{ID: pathID, Title: "Backend Engineer"}},
		reqs: map[uuid.UUID][]repository.PathRequirement{pathID: {
			{SkillID: goID, SkillName: "Go", ImportanceLevel: 3},
			{SkillID: sqlID, SkillName: "SQL", ImportanceLevel: 2},
			{SkillID: dockerID, SkillName: "Docker", ImportanceLevel: 1},
		}},
	}
	records := &mockUserSkillRepo{records: []skill.Record{
		{ID: uuid.New(), UserID: userID, SkillID: goID, SkillName: "Go", CurrentLevel: 3, TargetLevel: 5},
		{ID: uuid.New(), UserID: userID, SkillID: sqlID, SkillName: "SQL", CurrentLevel: 2, TargetLevel: 3},
	}}

	uc := NewSkillGapUsecase(paths, records, &mockCourseRepo{}, &mockEnrollmentRepo{})
	report, err := uc.AnalyzeCareerPathGaps(context.Background(), userID, pathID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(report.Gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(report.Gaps))
	}
	// Docker: recommended 1, current 0 -> gap 1; Go and SQL are covered.
	if report.Gaps[0].SkillID != dockerID || report.Gaps[0].Gap != 1 {
		t.Errorf("first gap = %s gap %d, want Docker with gap 1", report.Gaps[0].SkillName, report.Gaps[0].Gap)
	}
	if report.Coverage <= 0 || report.Coverage > 100 {
		t.Errorf("coverage = %d, want within (0,100]", report.Coverage)
	}
}

func TestAnalyzeCareerPathGaps_UnresolvedSkillName(t *testing.T) {
	userID := uuid.New()
	pathID := uuid.New()

	// Gap reports surface skill names, so a drifted name must be rejected
	// here even though pure scoring tolerates it.
	paths := &mockPathRepo{
		paths: []repository.CareerPath{{ID: pathID, Title: "Backend Engineer"}},
		reqs: map[uuid.UUID][]repository.PathRequirement{pathID: {
			{SkillID: uuid.New(), SkillName: "", ImportanceLevel: 2},
		}},
	}

	uc := NewSkillGapUsecase(paths, &mockUserSkillRepo{}, &mockCourseRepo{}, &mockEnrollmentRepo{})
	_, err := uc.AnalyzeCareerPathGaps(context.Background(), userID, pathID)
	if !errors.Is(err, ErrUnresolvedSkill) {
		t.Fatalf("expected ErrUnresolvedSkill, got %v", err)
	}
}

func TestAnalyzeCareerPathGaps_UnknownPath(t *testing.T) {
	uc := NewSkillGapUsecase(&mockPathRepo{}, &mockUserSkillRepo{}, &mockCourseRepo{}, &mockEnrollmentRepo{})
	_, err := uc.AnalyzeCareerPathGaps(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrCareerPathNotFound) {
		t.Fatalf("expected ErrCareerPathNotFound, got %v", err)
	}
}

func TestMissingSkills_ThresholdDefaultsToRecommendedLevel(t *testing.T) {
	userID := uuid.New()
	pathID := uuid.New()
	goID := uuid.New()
	k8sID := uuid.New()

	paths := &mockPathRepo{
		paths: []repository.CareerPath{{ID: pathID}},
		reqs: map[uuid.UUID][]repository.PathRequirement{pathID: {
			{SkillID: goID, SkillName: "Go", ImportanceLevel: 3},
			{SkillID: k8sID, SkillName: "Kubernetes", ImportanceLevel: 2},
		}},
	}
	records := &mockUserSkillRepo{records: []skill.Record{
		{ID: uuid.New(), UserID: userID, SkillID: goID, SkillName: "Go", CurrentLevel: 3, TargetLevel: 5},
		{ID: uuid.New(), UserID: userID, SkillID: k8sID, SkillName: "Kubernetes", CurrentLevel: 1, TargetLevel: 3},
	}}

	uc := NewSkillGapUsecase(paths, records, &mockCourseRepo{}, &mockEnrollmentRepo{})
	missing, err := uc.MissingSkills(context.Background(), userID, pathID, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(missing) != 1 || missing[0].SkillID != k8sID {
		t.Fatalf("missing = %v, want only Kubernetes", missing)
	}
}

func TestNextCourse_PrefersHighestRatedUnenrolled(t *testing.T) {
	userID := uuid.New()
	pathID := uuid.New()
	k8sID := uuid.New()

	lowRated := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	highRated := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	enrolledC := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	paths := &mockPathRepo{
		paths: []repository.CareerPath{{ID: pathID}},
		reqs: map[uuid.UUID][]repository.PathRequirement{pathID: {
			{SkillID: k8sID, SkillName: "Kubernetes", ImportanceLevel: 3},
		}},
	}
	courses := &mockCourseRepo{
		courses: []repository.Course{
			{ID: lowRated, Title: "K8s Basics", Rating: 4.2},
			{ID: highRated, Title: "K8s Deep Dive", Rating: 4.8},
			{ID: enrolledC, Title: "K8s Ops", Rating: 4.9},
		},
		skills: map[uuid.UUID][]repository.CourseSkillRow{
			lowRated:  {{SkillID: k8sID, SkillName: "Kubernetes", LevelGained: 2}},
			highRated: {{SkillID: k8sID, SkillName: "Kubernetes", LevelGained: 3}},
			enrolledC: {{SkillID: k8sID, SkillName: "Kubernetes", LevelGained: 4}},
		},
	}
	enrollments := &mockEnrollmentRepo{enrolled: map[uuid.UUID][]uuid.UUID{
		userID: {enrolledC},
	}}

	uc := NewSkillGapUsecase(paths, &mockUserSkillRepo{}, courses, enrollments)
	best, err := uc.NextCourse(context.Background(), userID, pathID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if best.CourseID != highRated {
		t.Errorf("next course = %s, want the highest-rated unenrolled one", best.Title)
	}
}

func TestNextCourse_NothingMissing(t *testing.T) {
	userID := uuid.New()
	pathID := uuid.New()
	goID := uuid.New()

	paths := &mockPathRepo{
		paths: []repository.CareerPath{{ID: pathID}},
		reqs: map[uuid.UUID][]repository.PathRequirement{pathID: {
			{SkillID: goID, SkillName: "Go", ImportanceLevel: 2},
		}},
	}
	records := &mockUserSkillRepo{records: []skill.Record{
		{ID: uuid.New(), UserID: userID, SkillID: goID, SkillName: "Go", CurrentLevel: 5, TargetLevel: 5},
	}}

	uc := NewSkillGapUsecase(paths, records, &mockCourseRepo{}, &mockEnrollmentRepo{})
	_, err := uc.NextCourse(context.Background(), userID, pathID)
	if !errors.Is(err, ErrNoCourseAvailable) {
		t.Fatalf("expected ErrNoCourseAvailable, got %v", err)
	}
}
