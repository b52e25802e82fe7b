package ballotfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pericles/contexts/election-core/phragmen-engine/domain/phragmen"
)

// File is the YAML ballot file consumed by cmd/elect. The core never reads
// files; this loader belongs to the caller-side wrapper.
type File struct {
	Seats  int          `yaml:"seats"`
	Voters []VoterEntry `yaml:"voters"`
}

type VoterEntry struct {
	VoterID   string   `yaml:"voter_id"`
	Budget    float64  `yaml:"budget"`
	Approvals []string `yaml:"approvals"`
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read ballot file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse ballot file: %w", err)
	}
	return f, nil
}

// Ballots maps the file entries to engine ballots in file order.
func (f File) Ballots() []phragmen.Ballot {
	ballots := make([]phragmen.Ballot, len(f.Voters))
	for i, entry := range f.Voters {
		ballots[i] = phragmen.Ballot{
			VoterID:   entry.VoterID,
			Budget:    entry.Budget,
			Approvals: entry.Approvals,
		}
	}
	return ballots
}
