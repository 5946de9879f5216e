// Command promote sets a user's role to admin by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	err = user.New(pool).PromoteByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q promoted to admin.\n", *email)
}
