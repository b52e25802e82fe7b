package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "pericles/contexts/election-core/phragmen-engine/application"
	"pericles/contexts/election-core/phragmen-engine/application/commands"
	"pericles/contexts/election-core/phragmen-engine/application/queries"
	"pericles/contexts/election-core/phragmen-engine/domain/entities"
	"pericles/contexts/election-core/phragmen-engine/domain/phragmen"
	httptransport "pericles/contexts/election-core/phragmen-engine/transport/http"
)

type Handler struct {
	Elections commands.ElectionUseCase
	Results   queries.ResultsUseCase
	Logger    *slog.Logger
}

// RunElectionHandler godoc
// @Summary Run a Sequential Phragmén election
// @Description Tallies the supplied approval ballots and elects the requested number of seats.
// @Tags phragmen-engine
// @Accept json
// @Produce json
// @Param request body httptransport.RunElectionRequest true "Ballots and seat count"
// @Success 201 {object} httptransport.ElectionRunResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 413 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/elections [post]
func (h Handler) RunElectionHandler(ctx context.Context, req httptransport.RunElectionRequest) (httptransport.ElectionRunResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Info("run election request received",
		"event", "http_run_election_received",
		"module", "election-core/phragmen-engine",
		"layer", "transport",
		"ballots", len(req.Ballots),
		"seats", req.Seats,
	)

	ballots := make([]phragmen.Ballot, len(req.Ballots))
	for i, ballot := range req.Ballots {
		ballots[i] = phragmen.Ballot{
			VoterID:   ballot.VoterID,
			Budget:    ballot.Budget,
			Approvals: ballot.Approvals,
		}
	}

	result, err := h.Elections.RunElection(ctx, commands.RunElectionCommand{
		Ballots: ballots,
		Seats:   req.Seats,
	})
	if err != nil {
		logger.Error("run election request failed",
			"event", "http_run_election_failed",
			"module", "election-core/phragmen-engine",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.ElectionRunResponse{}, err
	}

	return mapRun(result.Run), nil
}

// GetRunHandler godoc
// @Summary Get a stored election run
// @Tags phragmen-engine
// @Produce json
// @Param run_id path string true "Run identifier"
// @Success 200 {object} httptransport.ElectionRunResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/elections/{run_id} [get]
func (h Handler) GetRunHandler(ctx context.Context, runID string) (httptransport.ElectionRunResponse, error) {
	run, err := h.Results.GetRun(ctx, runID)
	if err != nil {
		return httptransport.ElectionRunResponse{}, err
	}
	return mapRun(run), nil
}

// ListRunsHandler godoc
// @Summary List stored election runs
// @Tags phragmen-engine
// @Produce json
// @Success 200 {object} httptransport.RunListResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/elections [get]
func (h Handler) ListRunsHandler(ctx context.Context) (httptransport.RunListResponse, error) {
	runs, err := h.Results.ListRuns(ctx)
	if err != nil {
		return httptransport.RunListResponse{}, err
	}
	items := make([]httptransport.ElectionRunSummary, len(runs))
	for i, run := range runs {
		items[i] = httptransport.ElectionRunSummary{
			RunID:          run.RunID,
			Seats:          run.Seats,
			BallotCount:    run.BallotCount,
			CandidateCount: run.CandidateCount,
			WinnerIDs:      run.WinnerIDs(),
			CreatedAt:      run.CreatedAt.Format(time.RFC3339),
		}
	}
	return httptransport.RunListResponse{Items: items}, nil
}

// WinnersHandler godoc
// @Summary Get the winners of a stored run
// @Tags phragmen-engine
// @Produce json
// @Param run_id path string true "Run identifier"
// @Success 200 {object} httptransport.WinnersResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/elections/{run_id}/winners [get]
func (h Handler) WinnersHandler(ctx context.Context, runID string) (httptransport.WinnersResponse, error) {
	run, err := h.Results.GetRun(ctx, runID)
	if err != nil {
		return httptransport.WinnersResponse{}, err
	}
	return httptransport.WinnersResponse{
		RunID:   run.RunID,
		Winners: mapWinners(run.Winners),
	}, nil
}

func mapRun(run entities.ElectionRun) httptransport.ElectionRunResponse {
	candidates := make([]httptransport.CandidateTallyItem, len(run.Candidates))
	for i, tally := range run.Candidates {
		candidates[i] = httptransport.CandidateTallyItem{
			CandidateID: tally.CandidateID,
			Index:       tally.Index,
			Approval:    tally.Approval,
			Support:     tally.Support,
			Elected:     tally.Elected,
		}
	}
	voters := make([]httptransport.VoterAllocationItem, len(run.Voters))
	for i, voter := range run.Voters {
		voters[i] = httptransport.VoterAllocationItem{
			VoterID: voter.VoterID,
			Index:   voter.Index,
			Budget:  voter.Budget,
			Load:    voter.Load,
		}
	}
	return httptransport.ElectionRunResponse{
		RunID:          run.RunID,
		Seats:          run.Seats,
		BallotCount:    run.BallotCount,
		CandidateCount: run.CandidateCount,
		Winners:        mapWinners(run.Winners),
		Candidates:     candidates,
		Voters:         voters,
		CreatedAt:      run.CreatedAt.Format(time.RFC3339),
	}
}

func mapWinners(winners []entities.WinnerSummary) []httptransport.WinnerItem {
	items := make([]httptransport.WinnerItem, len(winners))
	for i, winner := range winners {
		items[i] = httptransport.WinnerItem{
			CandidateID: winner.CandidateID,
			Index:       winner.Index,
			Round:       winner.Round,
			Support:     winner.Support,
		}
	}
	return items
}
