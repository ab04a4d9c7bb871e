package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablasso/prdkanban/internal/config"
	"github.com/pablasso/prdkanban/internal/tui"
	"github.com/pablasso/prdkanban/internal/version"
)

var (
	configFile string
	verbose    bool

	// cfg is resolved before any command runs.
	cfg = &config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "prdkanban",
	Short: "Turn a short PRD into a Todo/Doing/Done task board",
	Long: `prdkanban turns a goal, constraints, duration and team into a fixed-shape
kanban board and renders it as a Markdown outline or a JSON/YAML export.
No language model is involved: the same input always gives the same board.

Run without arguments to open the interactive editor.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Options{Defaults: cfg.Defaults})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./prdkanban.yaml or ~/.config/prdkanban/prdkanban.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads settings and configures logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(config.Options{File: configFile})
	if err != nil {
		return err
	}
	cfg = loaded

	level := slog.LevelWarn
	if verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.File != "" {
		slog.Debug("using config file", "path", cfg.File)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
