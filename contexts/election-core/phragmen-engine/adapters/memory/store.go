package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pericles/contexts/election-core/phragmen-engine/domain/entities"
	domainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-memory run repository used by tests and the default
// process wiring. It also provides the Clock and IDGenerator ports.
type Store struct {
	mu   sync.RWMutex
	runs map[string]entities.ElectionRun
}

func NewStore(seed []entities.ElectionRun) *Store {
	runs := make(map[string]entities.ElectionRun, len(seed))
	for _, run := range seed {
		runs[run.RunID] = run
	}
	return &Store{runs: runs}
}

func (s *Store) SaveRun(_ context.Context, run entities.ElectionRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[strings.TrimSpace(run.RunID)] = run
	return nil
}

func (s *Store) GetRun(_ context.Context, runID string) (entities.ElectionRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[strings.TrimSpace(runID)]
	if !ok {
		return entities.ElectionRun{}, domainerrors.ErrRunNotFound
	}
	return run, nil
}

func (s *Store) ListRuns(_ context.Context) ([]entities.ElectionRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.ElectionRun, 0, len(s.runs))
	for _, run := range s.runs {
		items = append(items, run)
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
