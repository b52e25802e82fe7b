package phragmen

import (
	"errors"
	"testing"

	domainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"
)

func TestElectReferenceScenario(t *testing.T) {
	outcome, err := Elect(referenceBallots(), 2)
	if err != nil {
		t.Fatalf("elect failed: %v", err)
	}

	want := []string{"Z", "Y"} // Z wins round 1 (largest approval), Y round 2
	got := outcome.WinnerIDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d winners, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("winner %d = %s, want %s", i, got[i], want[i])
		}
	}

	// Final support: Y keeps A and C(30) fully, Z splits C(30) with Y.
	state := outcome.State
	if !closeTo(state.CandidateSupport[0], 0) {
		t.Fatalf("support X = %v, want 0", state.CandidateSupport[0])
	}
	if !closeTo(state.CandidateSupport[1], 40) {
		t.Fatalf("support Y = %v, want 40", state.CandidateSupport[1])
	}
	if !closeTo(state.CandidateSupport[2], 70+30.0/3.25) {
		t.Fatalf("support Z = %v, want %v", state.CandidateSupport[2], 70+30.0/3.25)
	}
}

func TestElectIsDeterministic(t *testing.T) {
	first, err := Elect(referenceBallots(), 2)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := Elect(referenceBallots(), 2)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	firstIDs := first.WinnerIDs()
	secondIDs := second.WinnerIDs()
	for i := range firstIDs {
		if firstIDs[i] != secondIDs[i] {
			t.Fatalf("winner %d differs between runs: %s vs %s", i, firstIDs[i], secondIDs[i])
		}
	}
	for i := range first.State.CandidateScore {
		if first.State.CandidateScore[i] != second.State.CandidateScore[i] {
			t.Fatalf("score %d differs between runs", i)
		}
	}
	for i := range first.State.EdgeWeight {
		if first.State.EdgeWeight[i] != second.State.EdgeWeight[i] {
			t.Fatalf("edge weight %d differs between runs", i)
		}
	}
}

func TestElectTieBreaksToEarlierIndex(t *testing.T) {
	// P and Q share one approver, so both score 1/10 in round 1.
	outcome, err := Elect([]Ballot{
		{VoterID: "v1", Budget: 10, Approvals: []string{"P", "Q"}},
	}, 1)
	if err != nil {
		t.Fatalf("elect failed: %v", err)
	}
	if ids := outcome.WinnerIDs(); len(ids) != 1 || ids[0] != "P" {
		t.Fatalf("expected earlier-indexed P to win the tie, got %v", ids)
	}
}

func TestElectZeroSeats(t *testing.T) {
	outcome, err := Elect(referenceBallots(), 0)
	if err != nil {
		t.Fatalf("elect failed: %v", err)
	}
	if len(outcome.Winners) != 0 {
		t.Fatalf("expected no winners, got %v", outcome.WinnerIDs())
	}
}

func TestElectAllCandidates(t *testing.T) {
	outcome, err := Elect(referenceBallots(), 3)
	if err != nil {
		t.Fatalf("elect failed: %v", err)
	}
	if len(outcome.Winners) != 3 {
		t.Fatalf("expected 3 winners, got %d", len(outcome.Winners))
	}
	if len(outcome.State.Elected) != 3 {
		t.Fatalf("expected all candidates in elected set, got %d", len(outcome.State.Elected))
	}
}

func TestElectVoterLoadMonotonicAcrossRounds(t *testing.T) {
	voters, candidates, err := BuildIndex(referenceBallots())
	if err != nil {
		t.Fatalf("build index failed: %v", err)
	}
	state := NewState(voters, candidates)

	previous := append([]float64(nil), state.VoterLoad...)
	for round := 0; round < len(candidates); round++ {
		if _, err := runRound(state); err != nil {
			t.Fatalf("round %d failed: %v", round, err)
		}
		for i, load := range state.VoterLoad {
			if load < previous[i] {
				t.Fatalf("voter %d load decreased in round %d: %v -> %v", i, round, previous[i], load)
			}
		}
		previous = append(previous[:0], state.VoterLoad...)
	}
}

func TestElectInputErrors(t *testing.T) {
	cases := []struct {
		name    string
		ballots []Ballot
		seats   int
		want    error
	}{
		{
			name:  "empty ballot list",
			seats: 1,
			want:  domainerrors.ErrEmptyBallotList,
		},
		{
			name:    "non-positive budget",
			ballots: []Ballot{{VoterID: "A", Budget: -1, Approvals: []string{"X"}}},
			seats:   1,
			want:    domainerrors.ErrInvalidBudget,
		},
		{
			name:    "no candidates",
			ballots: []Ballot{{VoterID: "A", Budget: 10}},
			seats:   1,
			want:    domainerrors.ErrNoCandidates,
		},
		{
			name:    "insufficient candidates",
			ballots: referenceBallots(),
			seats:   4,
			want:    domainerrors.ErrInsufficientCandidates,
		},
		{
			name:    "negative seats",
			ballots: referenceBallots(),
			seats:   -1,
			want:    domainerrors.ErrInvalidSeatCount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Elect(tc.ballots, tc.seats); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRunElectionReturnsWinnerIDs(t *testing.T) {
	ids, err := RunElection(referenceBallots(), 2)
	if err != nil {
		t.Fatalf("run election failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %v", ids)
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen["Y"] || !seen["Z"] {
		t.Fatalf("expected {Y, Z}, got %v", ids)
	}
}
