package phragmen

import (
	"fmt"
	"math"

	domainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"
)

// Outcome is the terminal result of a run: the winners in election order and
// the final state with loads already converted to weights.
type Outcome struct {
	State   *State
	Winners []Candidate
}

// WinnerIDs returns the winning candidate identifiers in election order.
func (o *Outcome) WinnerIDs() []string {
	ids := make([]string, len(o.Winners))
	for i, winner := range o.Winners {
		ids[i] = winner.CandidateID
	}
	return ids
}

// WinnerIndices returns the winning candidate indices in election order.
func (o *Outcome) WinnerIndices() []int {
	indices := make([]int, len(o.Winners))
	for i, winner := range o.Winners {
		indices[i] = winner.Index
	}
	return indices
}

// Elect runs the Sequential Phragmén rule: numToElect rounds, each scoring
// every unelected candidate, electing the strict minimum, and rebalancing
// the loads of the winner's approvers. The computation is pure and
// deterministic in input order; any contract violation aborts with no
// partial result.
func Elect(ballots []Ballot, numToElect int) (*Outcome, error) {
	if numToElect < 0 {
		return nil, domainerrors.ErrInvalidSeatCount
	}
	voters, candidates, err := BuildIndex(ballots)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domainerrors.ErrNoCandidates
	}
	if numToElect > len(candidates) {
		return nil, fmt.Errorf("%w: %d seats, %d candidates",
			domainerrors.ErrInsufficientCandidates, numToElect, len(candidates))
	}

	state := NewState(voters, candidates)
	winners := make([]Candidate, 0, numToElect)
	for round := 0; round < numToElect; round++ {
		winner, err := runRound(state)
		if err != nil {
			return nil, err
		}
		winners = append(winners, winner)
	}
	state.LoadsToWeights()

	return &Outcome{State: state, Winners: winners}, nil
}

// RunElection is the minimal entry point: winning candidate identifiers only.
func RunElection(ballots []Ballot, numToElect int) ([]string, error) {
	outcome, err := Elect(ballots, numToElect)
	if err != nil {
		return nil, err
	}
	return outcome.WinnerIDs(), nil
}

func runRound(s *State) (Candidate, error) {
	// Base score phase: 1/approval for every unelected candidate. Zero
	// approval cannot happen for ballot-derived candidates, but a score
	// against it would be undefined, so it aborts the run.
	for _, candidate := range s.Candidates {
		if s.CandidateElected[candidate.Index] {
			continue
		}
		if s.CandidateApproval[candidate.Index] <= 0 {
			return Candidate{}, fmt.Errorf("%w: candidate %q",
				domainerrors.ErrZeroApprovalCandidate, candidate.CandidateID)
		}
		s.SetScore(candidate.Index, 1/s.CandidateApproval[candidate.Index])
	}

	// Voter contribution phase: committed load raises the time it takes to
	// lift an unelected candidate to its winning threshold.
	for _, voter := range s.Voters {
		for _, edge := range voter.Edges {
			if s.CandidateElected[edge.CandidateIndex] {
				continue
			}
			s.CandidateScore[edge.CandidateIndex] +=
				voter.Budget * s.VoterLoad[voter.Index] / s.CandidateApproval[edge.CandidateIndex]
		}
	}

	// Selection phase: strict minimum; the first candidate reaching it in a
	// left-to-right index scan wins ties.
	best := -1
	bestScore := math.Inf(1)
	for _, candidate := range s.Candidates {
		if s.CandidateElected[candidate.Index] {
			continue
		}
		if s.CandidateScore[candidate.Index] < bestScore {
			bestScore = s.CandidateScore[candidate.Index]
			best = candidate.Index
		}
	}
	if best < 0 {
		return Candidate{}, domainerrors.ErrInsufficientCandidates
	}
	winner := s.Candidates[best]
	s.Elect(winner)

	// Rebalancing phase: the winning score is the authoritative new load on
	// every edge to the winner; SetLoad reconciles voter maxima.
	for _, voter := range s.Voters {
		for _, edge := range voter.Edges {
			if edge.CandidateIndex == best {
				s.SetLoad(edge, bestScore)
			}
		}
	}

	return winner, nil
}
