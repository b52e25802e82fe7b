package queries

import (
	"context"
	"sort"
	"strings"

	"pericles/contexts/election-core/phragmen-engine/domain/entities"
	domainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"
	"pericles/contexts/election-core/phragmen-engine/ports"
)

type ResultsUseCase struct {
	Runs ports.ElectionRunRepository
}

func (uc ResultsUseCase) GetRun(ctx context.Context, runID string) (entities.ElectionRun, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return entities.ElectionRun{}, domainerrors.ErrRunNotFound
	}
	return uc.Runs.GetRun(ctx, runID)
}

func (uc ResultsUseCase) ListRuns(ctx context.Context) ([]entities.ElectionRun, error) {
	runs, err := uc.Runs.ListRuns(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].RunID < runs[j].RunID
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

func (uc ResultsUseCase) Winners(ctx context.Context, runID string) ([]entities.WinnerSummary, error) {
	run, err := uc.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return run.Winners, nil
}
