package main

import (
	"log"

	"pericles/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	log.Println("pericles api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("pericles api stopped with error: %v", err)
	}
}
