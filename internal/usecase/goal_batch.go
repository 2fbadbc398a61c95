package usecase

import (
	"context"
	"log"

	"skillpath/internal/domain/goal"
	"skillpath/internal/pkg/workerpool"
	"skillpath/internal/repository"
)

type BatchRecomputeResult struct {
	Processed int
	Failed    int
}

type GoalBatchUsecase interface {
	RecomputeAll(ctx context.Context) (BatchRecomputeResult, error)
}

// GoalBatch walks every goal and recomputes it on a worker pool. Each goal
// is independent, so failures are counted and logged rather than aborting
// the run.
type GoalBatch struct {
	goals      repository.GoalRepository
	paths      repository.CareerPathRepository
	userSkills repository.UserSkillRepository
	logger     *log.Logger

	workers  int
	pageSize int
}

func NewGoalBatchUsecase(goals repository.GoalRepository, paths repository.CareerPathRepository, userSkills repository.UserSkillRepository, logger *log.Logger) *GoalBatch {
	return &GoalBatch{
		goals:      goals,
		paths:      paths,
		userSkills: userSkills,
		logger:     logger,
		workers:    8,
		pageSize:   500,
	}
}

func (u *GoalBatch) RecomputeAll(ctx context.Context) (BatchRecomputeResult, error) {
	pool := workerpool.New(u.workers, u.workers*2)
	results := pool.Run(ctx)

	// Pages are submitted from a separate goroutine while results are
	// drained here, so a full result buffer never wedges submission.
	submitErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		for offset := 0; ; offset += u.pageSize {
			page, err := u.goals.ListAll(ctx, u.pageSize, offset)
			if err != nil {
				submitErr <- err
				return
			}
			if len(page) == 0 {
				submitErr <- nil
				return
			}
			for _, g := range page {
				g := g
				if !pool.Submit(ctx, func(ctx context.Context) error {
					return u.recomputeOne(ctx, g)
				}) {
					submitErr <- ctx.Err()
					return
				}
			}
			if len(page) < u.pageSize {
				submitErr <- nil
				return
			}
		}
	}()

	var res BatchRecomputeResult
	for r := range results {
		res.Processed++
		if r.Err != nil {
			res.Failed++
			if u.logger != nil {
				u.logger.Printf("[GoalBatch] recompute failed: %v", r.Err)
			}
		}
	}

	if err := <-submitErr; err != nil {
		return res, ErrInternal
	}
	return res, nil
}

func (u *GoalBatch) recomputeOne(ctx context.Context, g goal.Goal) error {
	rows, err := u.paths.FindRequirementsByPathID(ctx, g.CareerPathID)
	if err != nil {
		return err
	}
	reqs := pathRequirements(rows)

	records, err := u.userSkills.FindByUserID(ctx, g.UserID)
	if err != nil {
		return err
	}

	prevProgress, prevStatus := g.Progress, g.Status
	progress, status := goal.Recompute(&g, reqs, engineSkills(records))
	if progress == prevProgress && status == prevStatus {
		return nil
	}
	return u.goals.UpdateProgress(ctx, g.ID, progress, status)
}
