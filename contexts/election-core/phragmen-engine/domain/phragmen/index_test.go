package phragmen

import (
	"errors"
	"testing"

	domainerrors "pericles/contexts/election-core/phragmen-engine/domain/errors"
)

func TestBuildIndexAssignsStableIndices(t *testing.T) {
	voters, candidates, err := BuildIndex([]Ballot{
		{VoterID: "A", Budget: 10, Approvals: []string{"X", "Y"}},
		{VoterID: "B", Budget: 20, Approvals: []string{"X", "Z"}},
		{VoterID: "C", Budget: 30, Approvals: []string{"Y", "Z"}},
	})
	if err != nil {
		t.Fatalf("build index failed: %v", err)
	}

	if len(voters) != 3 {
		t.Fatalf("expected 3 voters, got %d", len(voters))
	}
	for i, voter := range voters {
		if voter.Index != i {
			t.Fatalf("voter %d has index %d", i, voter.Index)
		}
	}

	wantCandidates := []string{"X", "Y", "Z"}
	if len(candidates) != len(wantCandidates) {
		t.Fatalf("expected %d candidates, got %d", len(wantCandidates), len(candidates))
	}
	for i, candidate := range candidates {
		if candidate.CandidateID != wantCandidates[i] || candidate.Index != i {
			t.Fatalf("candidate %d = %+v, want %s at %d", i, candidate, wantCandidates[i], i)
		}
	}

	// Edge indices are a single global counter in voter-then-approval order.
	edgeIndex := 0
	for _, voter := range voters {
		for _, edge := range voter.Edges {
			if edge.Index != edgeIndex {
				t.Fatalf("edge for voter %s candidate %s has index %d, want %d",
					edge.VoterID, edge.CandidateID, edge.Index, edgeIndex)
			}
			if edge.VoterIndex != voter.Index {
				t.Fatalf("edge voter index %d, want %d", edge.VoterIndex, voter.Index)
			}
			edgeIndex++
		}
	}
	if edgeIndex != 6 {
		t.Fatalf("expected 6 edges, got %d", edgeIndex)
	}

	// Shared candidates resolve to the same index.
	if voters[0].Edges[0].CandidateIndex != voters[1].Edges[0].CandidateIndex {
		t.Fatalf("candidate X resolved to different indices")
	}
}

func TestBuildIndexKeepsDuplicateVoterIDsIndependent(t *testing.T) {
	voters, _, err := BuildIndex([]Ballot{
		{VoterID: "C", Budget: 30, Approvals: []string{"Z"}},
		{VoterID: "C", Budget: 50, Approvals: []string{"Z"}},
	})
	if err != nil {
		t.Fatalf("build index failed: %v", err)
	}
	if len(voters) != 2 {
		t.Fatalf("expected 2 voters, got %d", len(voters))
	}
	if voters[0].Index == voters[1].Index {
		t.Fatalf("duplicate voter ids must keep distinct indices")
	}
}

func TestBuildIndexRejectsEmptyInput(t *testing.T) {
	if _, _, err := BuildIndex(nil); !errors.Is(err, domainerrors.ErrEmptyBallotList) {
		t.Fatalf("expected ErrEmptyBallotList, got %v", err)
	}
}

func TestBuildIndexRejectsNonPositiveBudget(t *testing.T) {
	for _, budget := range []float64{0, -5} {
		_, _, err := BuildIndex([]Ballot{{VoterID: "A", Budget: budget, Approvals: []string{"X"}}})
		if !errors.Is(err, domainerrors.ErrInvalidBudget) {
			t.Fatalf("budget %v: expected ErrInvalidBudget, got %v", budget, err)
		}
	}
}
