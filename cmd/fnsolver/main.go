package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/dshills/fnsolver/pkg/catalog"
	"github.com/dshills/fnsolver/pkg/config"
	"github.com/dshills/fnsolver/pkg/solver"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML run configuration file (required)")
	verbose    = flag.Bool("verbose", false, "Enable verbose progress logging")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("fnsolver version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	logger.Info("loading run configuration", "path", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	opts, err := cfg.ToOptions(cat)
	if err != nil {
		return fmt.Errorf("failed to build solver options: %w", err)
	}

	s, err := solver.New(opts)
	if err != nil {
		return fmt.Errorf("invalid solver configuration: %w", err)
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	var stopRequested atomic.Bool
	go func() {
		if _, ok := <-interrupted; ok {
			logger.Warn("stop requested, finishing current iteration")
			stopRequested.Store(true)
		}
	}()

	start := time.Now()
	best := s.Run(func(status solver.IterationStatus) {
		logger.Info("iteration complete",
			"iteration", status.Iteration,
			"best_score", status.BestScore,
			"killed", status.NumKilled,
			"last_improvement", status.LastImprovement,
		)
	}, func() bool {
		return stopRequested.Load()
	})
	signal.Stop(interrupted)
	close(interrupted)

	elapsed := time.Since(start)
	yield := best.Layout.ResourceYield()
	fmt.Printf("Best solution (score=%.2f, found in %v):\n", best.Score, elapsed)
	fmt.Printf("  Mining:  %d\n", yield.Mining)
	fmt.Printf("  Revenue: %d\n", yield.Revenue)
	fmt.Printf("  Storage: %d\n", yield.Storage)
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: fnsolver -config <run.yaml> [options]")
	fmt.Fprintln(os.Stderr, "Run 'fnsolver -help' for detailed help")
}

func printHelp() {
	fmt.Printf("fnsolver version %s\n\n", version)
	fmt.Println("A command-line runner for the FrontierNav probe-layout solver.")
	fmt.Println("\nUsage:")
	fmt.Println("  fnsolver -config <run.yaml> [options]")
	fmt.Println("\nFlags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML run configuration file")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose progress logging")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nSend SIGINT/SIGTERM to stop after the current iteration and report the best solution found so far.")
}
