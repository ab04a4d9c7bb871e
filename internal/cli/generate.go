package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/clipboard"
	"github.com/pablasso/prdkanban/internal/render"
)

var (
	genGoal        string
	genConstraints string
	genDuration    string
	genTeam        string
	genFormat      string
	genCopy        string
	genOut         string
)

// GenerateOptions holds the options for the generate command.
type GenerateOptions struct {
	Input  board.Input
	Format render.Format

	// Copy, when set, puts that rendering on the clipboard.
	Copy render.Format

	// OutDir, when set, also writes export files there.
	OutDir string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a board from a goal, constraints, duration and team",
	Long: `Generate builds the board for the given fields and prints it.

Every field is optional. Empty fields fall back to the defaults in the config
file. Use --copy to put a rendering on the clipboard and --out to also write
the outline and export files to a directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := generateOptions(cmd)
		if err != nil {
			return err
		}
		return runGenerate(opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), clipboard.System{})
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genGoal, "goal", "g", "", "what the product should achieve")
	generateCmd.Flags().StringVarP(&genConstraints, "constraints", "c", "", "constraints to respect")
	generateCmd.Flags().StringVarP(&genDuration, "duration", "d", "", "time available")
	generateCmd.Flags().StringVarP(&genTeam, "team", "t", "", "who is working on it")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "", "output format: outline, json or yaml (default from config, else outline)")
	generateCmd.Flags().StringVar(&genCopy, "copy", "", "copy a rendering to the clipboard: outline, json or yaml")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "also write the outline and export files to this directory")
}

// generateOptions merges flags with config defaults. A flag that was set,
// even to an empty string, wins over the config.
func generateOptions(cmd *cobra.Command) (GenerateOptions, error) {
	pick := func(name, flagValue, fallback string) string {
		if cmd.Flags().Changed(name) {
			return flagValue
		}
		return fallback
	}

	opts := GenerateOptions{
		Input: board.Input{
			Goal:        pick("goal", genGoal, cfg.Defaults.Goal),
			Constraints: pick("constraints", genConstraints, cfg.Defaults.Constraints),
			Duration:    pick("duration", genDuration, cfg.Defaults.Duration),
			Team:        pick("team", genTeam, cfg.Defaults.Team),
		},
		Format: cfg.Format,
		OutDir: pick("out", genOut, cfg.OutDir),
	}
	if opts.Format == "" {
		opts.Format = render.FormatOutline
	}

	if genFormat != "" {
		f, err := render.ParseFormat(genFormat)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}
	if genCopy != "" {
		f, err := render.ParseFormat(genCopy)
		if err != nil {
			return opts, fmt.Errorf("--copy: %w", err)
		}
		opts.Copy = f
	}
	return opts, nil
}

// runGenerate builds the board and delivers it to stdout, the clipboard and
// files as requested. A failed copy is reported but does not fail the command.
func runGenerate(opts GenerateOptions, stdout, stderr io.Writer, cb clipboard.Writer) error {
	doc := board.Generate(opts.Input)
	slog.Debug("generated board", "title", doc.Title, "tasks", len(doc.Tasks))

	text, err := render.Render(doc, opts.Format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(stdout, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if opts.Copy != "" {
		copyText := text
		if opts.Copy != opts.Format {
			if copyText, err = render.Render(doc, opts.Copy); err != nil {
				return err
			}
		}
		if clipboard.Copy(cb, copyText) {
			fmt.Fprintf(stderr, "Copied %s!\n", opts.Copy.Label())
		} else {
			fmt.Fprintln(stderr, "Copy failed: clipboard unavailable")
		}
	}

	if opts.OutDir != "" {
		paths, err := render.WriteFiles(opts.OutDir, doc, exportFormats(opts.Format))
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(stderr, "Wrote %s\n", p)
		}
	}
	return nil
}

// exportFormats picks the files written by --out: always the outline and
// JSON, plus YAML when that is the chosen format.
func exportFormats(f render.Format) []render.Format {
	formats := []render.Format{render.FormatOutline, render.FormatJSON}
	if f == render.FormatYAML {
		formats = append(formats, render.FormatYAML)
	}
	return formats
}
