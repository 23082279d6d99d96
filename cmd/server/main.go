// Package main implements the entry point for the Idea Forge server,
// which hosts the collaborative prompt-engineering flow and its Gemini
// generation backend.
package main

import (
	"log"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
