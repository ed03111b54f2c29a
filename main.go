package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mxtools/internal/config"
	"mxtools/internal/logging"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	flagDebug bool
	flagDir   string
)

var rootCmd = &cobra.Command{
	Use:          "mxtools",
	Short:        "Launcher for the MX system tools",
	SilenceUsage: true,
	Long: `mxtools lists the MX configuration tools installed on this system,
grouped by category, and launches them from a searchable grid.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Directory holding the tool descriptors")
}

// cliApp builds the app for a subcommand, logging to stderr
func cliApp(cmd *cobra.Command) *app {
	opts := buildOptions()
	if flagDir != "" {
		opts.SearchDir = flagDir
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(cmd.ErrOrStderr(), flagDebug)
	}
	return newApp(cmd.Context(), opts)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	opts := buildOptions()
	if flagDir != "" {
		opts.SearchDir = flagDir
	}

	// The terminal belongs to the UI, so logs go to a file
	if opts.Logger == nil {
		dir := opts.ConfigDir
		if dir == "" {
			dir = config.ConfigDir()
		}
		logger, closer, err := logging.OpenFile(dir, flagDebug)
		if err != nil {
			logger, closer = logging.Nop(), io.NopCloser(nil)
		}
		defer closer.Close()
		opts.Logger = logger
	}

	a := newApp(cmd.Context(), opts)
	m := NewModel(cmd.Context(), a)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
