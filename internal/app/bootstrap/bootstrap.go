package bootstrap

import (
	"context"
	"log/slog"

	phragmenengine "pericles/contexts/election-core/phragmen-engine"
	"pericles/contexts/election-core/phragmen-engine/adapters/memory"
	"pericles/contexts/election-core/phragmen-engine/application/commands"
	"pericles/contexts/election-core/phragmen-engine/domain/entities"
	"pericles/internal/platform/ballotfile"
	"pericles/internal/platform/config"
	"pericles/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server *httpserver.Server
	logger *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	store := memory.NewStore(nil)
	module := phragmenengine.NewModule(phragmenengine.Dependencies{
		Runs:       store,
		Clock:      store,
		IDGen:      store,
		MaxBallots: cfg.MaxBallotsPerRequest,
		Logger:     logger,
	})

	server := httpserver.New(module, logger, ":"+cfg.HTTPPort, cfg.EnableRunHistory)
	return &APIApp{server: server, logger: logger}, nil
}

func (a *APIApp) Run() error {
	return a.server.Start()
}

type CLIApp struct {
	module phragmenengine.Module
	logger *slog.Logger
}

func BuildCLI() (*CLIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "elect")
	module := phragmenengine.NewInMemoryModule(nil, logger)
	return &CLIApp{module: module, logger: logger}, nil
}

// RunFile loads a YAML ballot file and runs one election. A non-negative
// seat override replaces the file's seat count.
func (a *CLIApp) RunFile(ctx context.Context, path string, seatOverride int) (entities.ElectionRun, error) {
	file, err := ballotfile.Load(path)
	if err != nil {
		return entities.ElectionRun{}, err
	}

	seats := file.Seats
	if seatOverride >= 0 {
		seats = seatOverride
	}

	result, err := a.module.Handler.Elections.RunElection(ctx, commands.RunElectionCommand{
		Ballots: file.Ballots(),
		Seats:   seats,
	})
	if err != nil {
		return entities.ElectionRun{}, err
	}
	return result.Run, nil
}
