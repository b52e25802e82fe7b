package commands

import (
	"context"
	"log/slog"
	"time"

	application "pericles/contexts/election-core/phragmen-engine/application"
	"pericles/contexts/election-core/phragmen-engine/domain/entities"
	domainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"
	"pericles/contexts/election-core/phragmen-engine/domain/phragmen"
	"pericles/contexts/election-core/phragmen-engine/ports"
)

// RunElectionCommand is the write-model input for one tally run.
type RunElectionCommand struct {
	Ballots []phragmen.Ballot
	Seats   int
}

// RunElectionResult carries the stored run record back to the transport.
type RunElectionResult struct {
	Run entities.ElectionRun
}

// ElectionUseCase orchestrates tally runs: input validation, engine
// execution, and run-record persistence for the read side. Every run builds
// its own engine state, so concurrent independent runs never share mutable
// data.
type ElectionUseCase struct {
	Runs       ports.ElectionRunRepository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	MaxBallots int
	Logger     *slog.Logger
}

func (uc ElectionUseCase) RunElection(ctx context.Context, cmd RunElectionCommand) (RunElectionResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	logger.Info("election run started",
		"event", "election_run_started",
		"module", "election-core/phragmen-engine",
		"layer", "application",
		"ballots", len(cmd.Ballots),
		"seats", cmd.Seats,
	)

	if cmd.Seats < 0 {
		logger.Warn("election run validation failed",
			"event", "election_run_validation_failed",
			"module", "election-core/phragmen-engine",
			"layer", "application",
			"seats", cmd.Seats,
		)
		return RunElectionResult{}, domainerrors.ErrInvalidSeatCount
	}
	if uc.MaxBallots > 0 && len(cmd.Ballots) > uc.MaxBallots {
		logger.Warn("election run ballot cap exceeded",
			"event", "election_run_ballot_cap_exceeded",
			"module", "election-core/phragmen-engine",
			"layer", "application",
			"ballots", len(cmd.Ballots),
			"cap", uc.MaxBallots,
		)
		return RunElectionResult{}, domainerrors.ErrTooManyBallots
	}

	outcome, err := phragmen.Elect(cmd.Ballots, cmd.Seats)
	if err != nil {
		logger.Warn("election engine rejected input",
			"event", "election_run_failed",
			"module", "election-core/phragmen-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return RunElectionResult{}, err
	}

	runID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		logger.Error("election run id generation failed",
			"event", "election_run_id_failed",
			"module", "election-core/phragmen-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return RunElectionResult{}, err
	}

	run := buildRun(runID, uc.now(), cmd, outcome)
	if err := uc.Runs.SaveRun(ctx, run); err != nil {
		logger.Error("election run save failed",
			"event", "election_run_save_failed",
			"module", "election-core/phragmen-engine",
			"layer", "application",
			"run_id", runID,
			"error", err.Error(),
		)
		return RunElectionResult{}, err
	}

	logger.Info("election run completed",
		"event", "election_run_completed",
		"module", "election-core/phragmen-engine",
		"layer", "application",
		"run_id", runID,
		"winners", len(run.Winners),
	)
	return RunElectionResult{Run: run}, nil
}

func (uc ElectionUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func buildRun(runID string, now time.Time, cmd RunElectionCommand, outcome *phragmen.Outcome) entities.ElectionRun {
	state := outcome.State

	candidates := make([]entities.CandidateTally, len(state.Candidates))
	for i, candidate := range state.Candidates {
		candidates[i] = entities.CandidateTally{
			CandidateID: candidate.CandidateID,
			Index:       candidate.Index,
			Approval:    state.CandidateApproval[candidate.Index],
			Support:     state.CandidateSupport[candidate.Index],
			Elected:     state.CandidateElected[candidate.Index],
		}
	}

	winners := make([]entities.WinnerSummary, len(outcome.Winners))
	for round, winner := range outcome.Winners {
		winners[round] = entities.WinnerSummary{
			CandidateID: winner.CandidateID,
			Index:       winner.Index,
			Round:       round + 1,
			Support:     state.CandidateSupport[winner.Index],
		}
	}

	voters := make([]entities.VoterAllocation, len(state.Voters))
	for i, voter := range state.Voters {
		voters[i] = entities.VoterAllocation{
			VoterID: voter.VoterID,
			Index:   voter.Index,
			Budget:  voter.Budget,
			Load:    state.VoterLoad[voter.Index],
		}
	}

	return entities.ElectionRun{
		RunID:          runID,
		Seats:          cmd.Seats,
		BallotCount:    len(cmd.Ballots),
		CandidateCount: len(state.Candidates),
		Winners:        winners,
		Candidates:     candidates,
		Voters:         voters,
		CreatedAt:      now,
	}
}
