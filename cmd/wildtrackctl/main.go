// Command wildtrackctl seeds and verifies the sample data from the command
// line.
//
// Usage:
//
//	wildtrackctl seed        # seed sample data
//	wildtrackctl verify      # verify sample data
//	wildtrackctl seed-verify # seed and then verify
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"wildtrack/config"
	logs "wildtrack/internal/infra/log"
	"wildtrack/internal/infra/metrics"
	"wildtrack/internal/infra/persistence/mongodb"
	"wildtrack/internal/usecase/impl"

	"github.com/pkg/errors"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitUsage)
	}

	cmd := os.Args[1]
	switch cmd {
	case "seed", "verify", "seed-verify":
	default:
		printUsage()
		os.Exit(exitUsage)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: wildtrackctl [seed|verify|seed-verify]")
}

func run(ctx context.Context, cmd string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	store, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(ctx); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", closeErr)
		}
	}()

	if err := store.Ping(ctx); err != nil {
		return err
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	svc := impl.NewSampleDataService(store, logger, metrics.New())

	var output any
	switch cmd {
	case "seed":
		output, err = svc.Seed(ctx)
	case "verify":
		output, err = svc.Verify(ctx)
	case "seed-verify":
		output, err = svc.SeedAndVerify(ctx)
	}
	if err != nil {
		return err
	}

	rendered, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal result")
	}
	fmt.Println(string(rendered))

	return nil
}
