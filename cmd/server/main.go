// Command server runs the journal HTTP API until SIGINT or SIGTERM.
//
// Configuration is read by config.Load: environment, then .env, then
// config.yaml.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/moodjournal-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
