package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	electiondomainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"
	electionhttp "pericles/contexts/election-core/phragmen-engine/transport/http"
)

func writeElectionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, electionhttp.ErrorResponse{Code: code, Message: message})
}

func writeElectionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, electiondomainerrors.ErrRunNotFound):
		writeElectionError(w, http.StatusNotFound, "run_not_found", err.Error())
	case errors.Is(err, electiondomainerrors.ErrTooManyBallots):
		writeElectionError(w, http.StatusRequestEntityTooLarge, "ballot_cap_exceeded", err.Error())
	case errors.Is(err, electiondomainerrors.ErrEmptyBallotList):
		writeElectionError(w, http.StatusBadRequest, "empty_ballot_list", err.Error())
	case errors.Is(err, electiondomainerrors.ErrInvalidBudget):
		writeElectionError(w, http.StatusBadRequest, "invalid_budget", err.Error())
	case errors.Is(err, electiondomainerrors.ErrNoCandidates):
		writeElectionError(w, http.StatusBadRequest, "no_candidates", err.Error())
	case errors.Is(err, electiondomainerrors.ErrInsufficientCandidates):
		writeElectionError(w, http.StatusBadRequest, "insufficient_candidates", err.Error())
	case errors.Is(err, electiondomainerrors.ErrInvalidSeatCount):
		writeElectionError(w, http.StatusBadRequest, "invalid_seat_count", err.Error())
	case errors.Is(err, electiondomainerrors.ErrZeroApprovalCandidate):
		writeElectionError(w, http.StatusBadRequest, "zero_approval_candidate", err.Error())
	case errors.Is(err, electiondomainerrors.ErrInvalidElectionInput):
		writeElectionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeElectionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRunElection(w http.ResponseWriter, r *http.Request) {
	var req electionhttp.RunElectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeElectionError(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}

	resp, err := s.elections.Handler.RunElectionHandler(r.Context(), req)
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	resp, err := s.elections.Handler.ListRunsHandler(r.Context())
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	resp, err := s.elections.Handler.GetRunHandler(r.Context(), r.PathValue("run_id"))
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetWinners(w http.ResponseWriter, r *http.Request) {
	resp, err := s.elections.Handler.WinnersHandler(r.Context(), r.PathValue("run_id"))
	if err != nil {
		writeElectionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
