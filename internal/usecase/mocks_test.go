package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"skillpath/internal/domain/goal"
	"skillpath/internal/domain/skill"
	"skillpath/internal/repository"

	"github.com/google/uuid"
)

type mockGoalRepo struct {
	goals []goal.Goal
	err   error

	// mu guards the update maps; batch recompute writes from workers.
	mu              sync.Mutex
	updatedProgress map[uuid.UUID]int
	updatedStatus   map[uuid.UUID]goal.Status
	deleted         []uuid.UUID
}

func (m *mockGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]goal.Goal, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]goal.Goal, 0)
	for _, g := range m.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGoalRepo) FindByID(_ context.Context, id uuid.UUID) (goal.Goal, error) {
	if m.err != nil {
		return goal.Goal{}, m.err
	}
	for _, g := range m.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return goal.Goal{}, repository.ErrGoalNotFound
}

func (m *mockGoalRepo) Create(_ context.Context, g goal.Goal) (goal.Goal, error) {
	if m.err != nil {
		return goal.Goal{}, m.err
	}
	for _, existing := range m.goals {
		if existing.UserID == g.UserID && existing.CareerPathID == g.CareerPathID {
			return goal.Goal{}, repository.ErrGoalAlreadyExists
		}
	}
	g.CreatedAt = time.Now().UTC()
	m.goals = append(m.goals, g)
	return g, nil
}

func (m *mockGoalRepo) UpdateProgress(_ context.Context, id uuid.UUID, progress int, status goal.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updatedProgress == nil {
		m.updatedProgress = map[uuid.UUID]int{}
	}
	if m.updatedStatus == nil {
		m.updatedStatus = map[uuid.UUID]goal.Status{}
	}
	m.updatedProgress[id] = progress
	m.updatedStatus[id] = status
	return nil
}

func (m *mockGoalRepo) UpdateStatus(_ context.Context, id uuid.UUID, status goal.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updatedStatus == nil {
		m.updatedStatus = map[uuid.UUID]goal.Status{}
	}
	m.updatedStatus[id] = status
	return nil
}

func (m *mockGoalRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	for _, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return repository.ErrGoalNotFound
}

func (m *mockGoalRepo) ListAll(_ context.Context, limit, offset int) ([]goal.Goal, error) {
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.goals) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.goals) {
		end = len(m.goals)
	}
	return m.goals[offset:end], nil
}

type mockPathRepo struct {
	paths []repository.CareerPath
	reqs  map[uuid.UUID][]repository.PathRequirement
	err   error
}

func (m *mockPathRepo) ListPaths(context.Context) ([]repository.CareerPath, error) {
	return m.paths, m.err
}

func (m *mockPathRepo) GetPath(_ context.Context, id uuid.UUID) (repository.CareerPath, error) {
	if m.err != nil {
		return repository.CareerPath{}, m.err
	}
	for _, p := range m.paths {
		if p.ID == id {
			return p, nil
		}
	}
	return repository.CareerPath{}, repository.ErrCareerPathNotFound
}

func (m *mockPathRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, p := range m.paths {
		if p.ID == id {
			return true, nil
		}
	}
	_, ok := m.reqs[id]
	return ok, nil
}

func (m *mockPathRepo) FindRequirementsByPathID(_ context.Context, pathID uuid.UUID) ([]repository.PathRequirement, error) {
	return m.reqs[pathID], m.err
}

func (m *mockPathRepo) FindRequirementsByPathIDs(_ context.Context, pathIDs []uuid.UUID) (map[uuid.UUID][]repository.PathRequirement, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID][]repository.PathRequirement, len(pathIDs))
	for _, id := range pathIDs {
		if rs, ok := m.reqs[id]; ok {
			out[id] = rs
		}
	}
	return out, nil
}

type mockUserSkillRepo struct {
	records []skill.Record
	err     error
}

func (m *mockUserSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]skill.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.Record, 0)
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockUserSkillRepo) FindByUserAndSkill(_ context.Context, userID uuid.UUID, skillID uuid.UUID) (skill.Record, error) {
	for _, rec := range m.records {
		if rec.UserID == userID && rec.SkillID == skillID {
			return rec, nil
		}
	}
	return skill.Record{}, repository.ErrSkillRecordNotFound
}

func (m *mockUserSkillRepo) Create(_ context.Context, rec skill.Record) (skill.Record, error) {
	if m.err != nil {
		return skill.Record{}, m.err
	}
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *mockUserSkillRepo) Update(_ context.Context, rec skill.Record) (skill.Record, error) {
	for i, existing := range m.records {
		if existing.ID == rec.ID && existing.UserID == rec.UserID {
			rec.SkillID = existing.SkillID
			rec.SkillName = existing.SkillName
			m.records[i] = rec
			return rec, nil
		}
	}
	return skill.Record{}, repository.ErrSkillRecordNotFound
}

func (m *mockUserSkillRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	for i, existing := range m.records {
		if existing.ID == id && existing.UserID == userID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return repository.ErrSkillRecordNotFound
}

type mockSkillRepo struct {
	skills []skill.Skill
	err    error
}

func (m *mockSkillRepo) GetAllSkills(context.Context) ([]skill.Skill, error) {
	return m.skills, m.err
}

func (m *mockSkillRepo) GetSkillsByNames(_ context.Context, names []string) (map[string]skill.Skill, error) {
	out := make(map[string]skill.Skill)
	for _, s := range m.skills {
		for _, n := range names {
			if s.Name == n {
				out[n] = s
			}
		}
	}
	return out, m.err
}

func (m *mockSkillRepo) CreateSkill(_ context.Context, name, category string) (skill.Skill, error) {
	s := skill.Skill{ID: uuid.New(), Name: name, Category: category}
	m.skills = append(m.skills, s)
	return s, m.err
}

func (m *mockSkillRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.skills {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type mockCourseRepo struct {
	courses []repository.Course
	skills  map[uuid.UUID][]repository.CourseSkillRow
	err     error
}

func (m *mockCourseRepo) ListCourses(context.Context, int, int) ([]repository.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseRepo) GetCourse(_ context.Context, id uuid.UUID) (repository.Course, error) {
	if m.err != nil {
		return repository.Course{}, m.err
	}
	for _, c := range m.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return repository.Course{}, repository.ErrCourseNotFound
}

func (m *mockCourseRepo) FindSkillsByCourseIDs(_ context.Context, courseIDs []uuid.UUID) (map[uuid.UUID][]repository.CourseSkillRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID][]repository.CourseSkillRow, len(courseIDs))
	for _, id := range courseIDs {
		if rs, ok := m.skills[id]; ok {
			out[id] = rs
		}
	}
	return out, nil
}

func (m *mockCourseRepo) UpsertCourse(_ context.Context, c repository.CourseUpsert) (uuid.UUID, error) {
	return uuid.New(), m.err
}

type mockEnrollmentRepo struct {
	enrolled map[uuid.UUID][]uuid.UUID
	err      error
}

func (m *mockEnrollmentRepo) FindCourseIDsByUserID(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return m.enrolled[userID], m.err
}

func (m *mockEnrollmentRepo) Enroll(_ context.Context, userID, courseID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for _, id := range m.enrolled[userID] {
		if id == courseID {
			return repository.ErrAlreadyEnrolled
		}
	}
	if m.enrolled == nil {
		m.enrolled = map[uuid.UUID][]uuid.UUID{}
	}
	m.enrolled[userID] = append(m.enrolled[userID], courseID)
	return nil
}

func (m *mockEnrollmentRepo) Unenroll(_ context.Context, userID, courseID uuid.UUID) error {
	ids := m.enrolled[userID]
	for i, id := range ids {
		if id == courseID {
			m.enrolled[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return m.err
}

type mockNotifier struct {
	events []GoalProgressEvent
}

func (m *mockNotifier) GoalProgressChanged(ev GoalProgressEvent) {
	m.events = append(m.events, ev)
}

type mockCache struct {
	store map[string][]byte
	hits  int
	sets  int
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, nil
	}
	m.hits++
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = b
	m.sets++
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}
