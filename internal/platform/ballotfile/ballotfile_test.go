package ballotfile

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFile = `seats: 2
voters:
  - voter_id: A
    budget: 10
    approvals: [X, Y]
  - voter_id: B
    budget: 20
    approvals: [X, Z]
  - voter_id: C
    budget: 30
    approvals: [Y, Z]
  - voter_id: C
    budget: 50
    approvals: [Z]
`

func TestParse(t *testing.T) {
	file, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if file.Seats != 2 {
		t.Fatalf("seats = %d, want 2", file.Seats)
	}
	if len(file.Voters) != 4 {
		t.Fatalf("expected 4 voters, got %d", len(file.Voters))
	}

	ballots := file.Ballots()
	if ballots[0].VoterID != "A" || ballots[0].Budget != 10 {
		t.Fatalf("unexpected first ballot: %+v", ballots[0])
	}
	if len(ballots[3].Approvals) != 1 || ballots[3].Approvals[0] != "Z" {
		t.Fatalf("unexpected last ballot: %+v", ballots[3])
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("voters: [unclosed")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballots.yaml")
	if err := os.WriteFile(path, []byte(sampleFile), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	file, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(file.Ballots()) != 4 {
		t.Fatalf("expected 4 ballots, got %d", len(file.Ballots()))
	}
}
