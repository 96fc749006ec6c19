// Package main implements the entry point for the RAG Q&A API server,
// which answers generation requests over a single loaded document.
package main

import (
	"context"
	"log"
	"os"
)

func main() {
	ctx := context.Background()

	app, err := newApplication(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
