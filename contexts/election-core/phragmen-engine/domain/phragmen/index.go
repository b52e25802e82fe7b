package phragmen

import (
	"fmt"

	domainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"
)

// Ballot is one approval ballot: a voter identifier, that voter's fixed
// budget, and the candidates it approves in ballot order. Duplicate voter
// identifiers are allowed and stay independent ballots.
type Ballot struct {
	VoterID   string
	Budget    float64
	Approvals []string
}

// Edge is a single (voter, candidate) approval pair. Edges carry indices
// into the voter and candidate arenas, never owned references.
type Edge struct {
	VoterID        string
	CandidateID    string
	Index          int
	VoterIndex     int
	CandidateIndex int
}

// Voter is an indexed ballot with its edges fully resolved.
type Voter struct {
	VoterID string
	Budget  float64
	Edges   []Edge
	Index   int
}

// Candidate is an identifier plus its stable index for the run.
type Candidate struct {
	CandidateID string
	Index       int
}

// BuildIndex normalizes raw ballots into the closed, index-addressable
// voter/candidate graph. Voter indices follow input position, edge indices a
// single global counter in voter-then-approval order, and candidate indices
// the order of first appearance across all approval lists.
func BuildIndex(ballots []Ballot) ([]Voter, []Candidate, error) {
	if len(ballots) == 0 {
		return nil, nil, domainerrors.ErrEmptyBallotList
	}

	voters := make([]Voter, 0, len(ballots))
	candidateIndex := make(map[string]int)
	var candidates []Candidate
	edgeCount := 0

	for i, ballot := range ballots {
		if ballot.Budget <= 0 {
			return nil, nil, fmt.Errorf("%w: voter %q has budget %v",
				domainerrors.ErrInvalidBudget, ballot.VoterID, ballot.Budget)
		}
		voter := Voter{
			VoterID: ballot.VoterID,
			Budget:  ballot.Budget,
			Index:   i,
			Edges:   make([]Edge, 0, len(ballot.Approvals)),
		}
		for _, candidateID := range ballot.Approvals {
			index, seen := candidateIndex[candidateID]
			if !seen {
				index = len(candidates)
				candidateIndex[candidateID] = index
				candidates = append(candidates, Candidate{CandidateID: candidateID, Index: index})
			}
			voter.Edges = append(voter.Edges, Edge{
				VoterID:        ballot.VoterID,
				CandidateID:    candidateID,
				Index:          edgeCount,
				VoterIndex:     i,
				CandidateIndex: index,
			})
			edgeCount++
		}
		voters = append(voters, voter)
	}

	return voters, candidates, nil
}
