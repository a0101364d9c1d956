package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/planmyday/internal/cli"
	"github.com/alexanderramin/planmyday/internal/db"
	"github.com/alexanderramin/planmyday/internal/kbs"
	"github.com/alexanderramin/planmyday/internal/scheduler"
	"github.com/alexanderramin/planmyday/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.planmyday/planmyday.db
	dbPath := os.Getenv("PLANMYDAY_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".planmyday", "planmyday.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	knowledgeBase := kbs.NewSQLiteKnowledgeBase(database)

	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if envEnabled("PLANMYDAY_LOG_USECASES") {
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	solverTimeout := scheduler.DefaultSolverTimeout
	if raw := os.Getenv("PLANMYDAY_SOLVER_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			solverTimeout = time.Duration(secs) * time.Second
		}
	}

	app := &cli.App{
		Optimize: service.NewOptimizeService(knowledgeBase, solverTimeout, useCaseObserver),
	}

	return cli.NewRootCmd(app).Execute()
}

func envEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
