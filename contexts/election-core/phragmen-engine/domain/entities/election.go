package entities

import "time"

// CandidateTally is the per-candidate view of a finished run.
type CandidateTally struct {
	CandidateID string
	Index       int
	Approval    float64
	Support     float64
	Elected     bool
}

// WinnerSummary records one elected candidate with its 1-based round.
type WinnerSummary struct {
	CandidateID string
	Index       int
	Round       int
	Support     float64
}

// VoterAllocation reports how much of a voter's budget ended up committed.
type VoterAllocation struct {
	VoterID string
	Index   int
	Budget  float64
	Load    float64
}

// ElectionRun is the stored record of one completed election.
type ElectionRun struct {
	RunID          string
	Seats          int
	BallotCount    int
	CandidateCount int
	Winners        []WinnerSummary
	Candidates     []CandidateTally
	Voters         []VoterAllocation
	CreatedAt      time.Time
}

// WinnerIDs returns the winning identifiers in election order.
func (r ElectionRun) WinnerIDs() []string {
	ids := make([]string, len(r.Winners))
	for i, winner := range r.Winners {
		ids[i] = winner.CandidateID
	}
	return ids
}
