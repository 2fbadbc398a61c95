package usecase

import (
	"context"
	"errors"
	"time"

	"skillpath/internal/domain/scoring"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

var ErrNoCoursesFound = errors.New("no courses found")

const (
	defaultCourseLimit    = 6
	maxCourseLimit        = 20
	courseRecoCacheTTL    = 10 * time.Minute
	recommendationScanCap = 200
)

type CourseRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]scoring.ScoredCourse, error)
	Enroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error
	Unenroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error
}

type CourseRecommendation struct {
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	userSkills  repository.UserSkillRepository
	cache       RecommendationCache
}

func NewCourseRecommendationUsecase(courses repository.CourseRepository, enrollments repository.EnrollmentRepository, userSkills repository.UserSkillRepository, cache RecommendationCache) *CourseRecommendation {
	return &CourseRecommendation{
		courses:     courses,
		enrollments: enrollments,
		userSkills:  userSkills,
		cache:       cache,
	}
}

func (u *CourseRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) ([]scoring.ScoredCourse, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultCourseLimit
	}
	if limit > maxCourseLimit {
		limit = maxCourseLimit
	}

	key := recommendationCacheKey("courses", userID, limit)
	if u.cache != nil {
		var cached []scoring.ScoredCourse
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	records, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	courses, err := u.courses.ListCourses(ctx, recommendationScanCap, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(courses) == 0 {
		return nil, ErrNoCoursesFound
	}

	enrolledIDs, err := u.enrollments.FindCourseIDsByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	enrolled := make(map[uuid.UUID]struct{}, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = struct{}{}
	}

	courseIDs := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		if _, ok := enrolled[c.ID]; ok {
			continue
		}
		courseIDs = append(courseIDs, c.ID)
	}
	skillsByCourse, err := u.courses.FindSkillsByCourseIDs(ctx, courseIDs)
	if err != nil {
		return nil, ErrInternal
	}

	candidates := make([]scoring.CourseCandidate, 0, len(courseIDs))
	for _, c := range courses {
		if _, ok := enrolled[c.ID]; ok {
			continue
		}
		candidates = append(candidates, courseCandidate(c, skillsByCourse[c.ID]))
	}

	ranked := scoring.RankCourses(candidates, engineSkills(records), limit)
	if len(ranked) == 0 {
		return nil, ErrNoCoursesFound
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, ranked, courseRecoCacheTTL)
	}
	return ranked, nil
}

func (u *CourseRecommendation) Enroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if courseID == uuid.Nil {
		return ErrInvalidInput
	}

	if _, err := u.courses.GetCourse(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return repository.ErrCourseNotFound
		}
		return ErrInternal
	}

	if err := u.enrollments.Enroll(ctx, userID, courseID); err != nil {
		if errors.Is(err, repository.ErrAlreadyEnrolled) {
			return repository.ErrAlreadyEnrolled
		}
		return ErrInternal
	}
	u.invalidate(ctx, userID)
	return nil
}

func (u *CourseRecommendation) Unenroll(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if courseID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.enrollments.Unenroll(ctx, userID, courseID); err != nil {
		return ErrInternal
	}
	u.invalidate(ctx, userID)
	return nil
}

// invalidate drops the cached rankings an enrollment change affects.
func (u *CourseRecommendation) invalidate(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	for limit := 1; limit <= maxCourseLimit; limit++ {
		_ = u.cache.Delete(ctx, recommendationCacheKey("courses", userID, limit))
	}
}
