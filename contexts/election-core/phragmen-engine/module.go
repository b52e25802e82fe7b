package phragmenengine

import (
	"log/slog"

	httpadapter "pericles/contexts/election-core/phragmen-engine/adapters/http"
	"pericles/contexts/election-core/phragmen-engine/adapters/memory"
	"pericles/contexts/election-core/phragmen-engine/application/commands"
	"pericles/contexts/election-core/phragmen-engine/application/queries"
	"pericles/contexts/election-core/phragmen-engine/domain/entities"
	"pericles/contexts/election-core/phragmen-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Runs       ports.ElectionRunRepository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	MaxBallots int
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	electionUseCase := commands.ElectionUseCase{
		Runs:       deps.Runs,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		MaxBallots: deps.MaxBallots,
		Logger:     deps.Logger,
	}
	resultsUseCase := queries.ResultsUseCase{
		Runs: deps.Runs,
	}
	return Module{
		Handler: httpadapter.Handler{
			Elections: electionUseCase,
			Results:   resultsUseCase,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.ElectionRun, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Runs:   store,
		Clock:  store,
		IDGen:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
