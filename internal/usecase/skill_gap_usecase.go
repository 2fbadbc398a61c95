package usecase

import (
	"context"
	"errors"

	"skillpath/internal/domain/scoring"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

var ErrNoCourseAvailable = errors.New("no suitable course available")

type GapReport struct {
	CareerPathID uuid.UUID
	Coverage     int
	Gaps         []scoring.Gap
}

type SkillGapUsecase interface {
	AnalyzeCareerPathGaps(ctx context.Context, userID uuid.UUID, pathID uuid.UUID) (GapReport, error)
	MissingSkills(ctx context.Context, userID uuid.UUID, pathID uuid.UUID, levelThreshold int) ([]scoring.MissingSkill, error)
	NextCourse(ctx context.Context, userID uuid.UUID, pathID uuid.UUID) (scoring.CourseCandidate, error)
}

type SkillGap struct {
	paths       repository.CareerPathRepository
	userSkills  repository.UserSkillRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository

	courseScanLimit int
}

func NewSkillGapUsecase(paths repository.CareerPathRepository, userSkills repository.UserSkillRepository, courses repository.CourseRepository, enrollments repository.EnrollmentRepository) *SkillGap {
	return &SkillGap{
		paths:           paths,
		userSkills:      userSkills,
		courses:         courses,
		enrollments:     enrollments,
		courseScanLimit: 200,
	}
}

func (u *SkillGap) AnalyzeCareerPathGaps(ctx context.Context, userID uuid.UUID, pathID uuid.UUID) (GapReport, error) {
	reqs, skills, err := u.load(ctx, userID, pathID)
	if err != nil {
		return GapReport{}, err
	}

	return GapReport{
		CareerPathID: pathID,
		Coverage:     scoring.Coverage(reqs, skills),
		Gaps:         scoring.AnalyzeGaps(reqs, skills),
	}, nil
}

func (u *SkillGap) MissingSkills(ctx context.Context, userID uuid.UUID, pathID uuid.UUID, levelThreshold int) ([]scoring.MissingSkill, error) {
	reqs, skills, err := u.load(ctx, userID, pathID)
	if err != nil {
		return nil, err
	}
	return scoring.MissingSkills(reqs, skills, levelThreshold), nil
}

func (u *SkillGap) NextCourse(ctx context.Context, userID uuid.UUID, pathID uuid.UUID) (scoring.CourseCandidate, error) {
	reqs, skills, err := u.load(ctx, userID, pathID)
	if err != nil {
		return scoring.CourseCandidate{}, err
	}

	missing := scoring.MissingSkills(reqs, skills, 0)
	if len(missing) == 0 {
		return scoring.CourseCandidate{}, ErrNoCourseAvailable
	}
	missingIDs := make(map[uuid.UUID]struct{}, len(missing))
	for _, m := range missing {
		missingIDs[m.SkillID] = struct{}{}
	}

	enrolledIDs, err := u.enrollments.FindCourseIDsByUserID(ctx, userID)
	if err != nil {
		return scoring.CourseCandidate{}, ErrInternal
	}
	enrolled := make(map[uuid.UUID]struct{}, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = struct{}{}
	}

	candidates, err := u.loadCandidates(ctx)
	if err != nil {
		return scoring.CourseCandidate{}, err
	}

	best, ok := scoring.NextRecommendedCourse(missingIDs, enrolled, candidates)
	if !ok {
		return scoring.CourseCandidate{}, ErrNoCourseAvailable
	}
	return best, nil
}

func (u *SkillGap) load(ctx context.Context, userID uuid.UUID, pathID uuid.UUID) ([]scoring.Requirement, []scoring.UserSkill, error) {
	if userID == uuid.Nil {
		return nil, nil, ErrUnauthorized
	}
	if pathID == uuid.Nil {
		return nil, nil, ErrInvalidInput
	}

	exists, err := u.paths.ExistsByID(ctx, pathID)
	if err != nil {
		return nil, nil, ErrInternal
	}
	if !exists {
		return nil, nil, ErrCareerPathNotFound
	}

	rows, err := u.paths.FindRequirementsByPathID(ctx, pathID)
	if err != nil {
		return nil, nil, ErrInternal
	}
	reqs, err := resolvedPathRequirements(rows)
	if err != nil {
		return nil, nil, err
	}

	records, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, ErrInternal
	}

	return reqs, engineSkills(records), nil
}

func (u *SkillGap) loadCandidates(ctx context.Context) ([]scoring.CourseCandidate, error) {
	courses, err := u.courses.ListCourses(ctx, u.courseScanLimit, 0)
	if err != nil {
		return nil, ErrInternal
	}

	courseIDs := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.ID)
	}
	skillsByCourse, err := u.courses.FindSkillsByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]scoring.CourseCandidate, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseCandidate(c, skillsByCourse[c.ID]))
	}
	return out, nil
}
