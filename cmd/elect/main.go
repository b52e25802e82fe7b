package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"pericles/internal/app/bootstrap"
)

// CLI wrapper around the election core: load a ballot file, run one
// election, print the winners. Display stays out of the core.
func main() {
	path := flag.String("ballots", "ballots.yaml", "path to the YAML ballot file")
	seats := flag.Int("seats", -1, "seat count override (defaults to the file's seats)")
	flag.Parse()

	app, err := bootstrap.BuildCLI()
	if err != nil {
		log.Fatalf("bootstrap elect failed: %v", err)
	}

	run, err := app.RunFile(context.Background(), *path, *seats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "election failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("run %s: elected %d of %d candidates from %d ballots\n",
		run.RunID, len(run.Winners), run.CandidateCount, run.BallotCount)
	for _, winner := range run.Winners {
		fmt.Printf("  round %d: %s (support %.2f)\n", winner.Round, winner.CandidateID, winner.Support)
	}
}
