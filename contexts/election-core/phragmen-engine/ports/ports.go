package ports

import (
	"context"
	"time"

	"pericles/contexts/election-core/phragmen-engine/domain/entities"
)

type ElectionRunRepository interface {
	SaveRun(ctx context.Context, run entities.ElectionRun) error
	GetRun(ctx context.Context, runID string) (entities.ElectionRun, error)
	ListRuns(ctx context.Context) ([]entities.ElectionRun, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
