package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/planmyday/internal/cli/formatter"
	"github.com/alexanderramin/planmyday/internal/contract"
)

func newOptimizeCmd(a *App) *cobra.Command {
	var inputPath string
	var asTable bool

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Optimize a nurse's daily schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readRequest(inputPath)
			if err != nil {
				return err
			}

			var req contract.OptimizeRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("parsing request: %w", err)
			}

			resp, err := a.Optimize.Optimize(cmd.Context(), req)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("table") {
				asTable = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			}

			if asTable {
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderSchedule(resp))
				return nil
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the request JSON file (default: stdin)")
	cmd.Flags().BoolVar(&asTable, "table", false, "render the schedule as a table instead of JSON")

	return cmd
}

func readRequest(path string) ([]byte, error) {
	if path == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading request from stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}
	return raw, nil
}
