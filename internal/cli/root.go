package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/planmyday/internal/app"
)

// App holds the service the CLI commands call into.
type App struct {
	Optimize app.OptimizeUseCase
}

// NewRootCmd creates the top-level "planmyday" command.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planmyday",
		Short: "Daily nurse schedule optimizer",
		Long: `Daily nurse schedule optimizer.

Reads an OptimizeRequest as JSON (file or stdin) and prints the
optimized schedule as JSON or as a formatted table.`,
	}

	root.AddCommand(newOptimizeCmd(a))

	return root
}
