package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/wonny/betahedge/cmd/hedge/commands"
)

// main is the entry point for the hedge CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/hedge [command]
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
