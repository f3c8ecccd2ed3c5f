package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"caketoss/cmd"
	"caketoss/database"
)

const migrateUsage = "usage: caketoss migrate up | down [steps] | status"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrate(os.Args[2:]); err != nil {
			log.Fatalf("caketoss: %v", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("caketoss: shutdown signal received")
		cancel()
	}()

	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("caketoss: %v", err)
	}
}

func runMigrate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", migrateUsage)
	}

	switch args[0] {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(args) > 1 {
			steps = args[1]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migrate command %q\n%s", args[0], migrateUsage)
	}
}
