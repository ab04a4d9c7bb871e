package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/render"
)

var renderFormat string

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Re-render a saved JSON or YAML export",
	Long: `Render reads a board previously exported as JSON or YAML, checks that its
tasks and dependencies are consistent, and prints it in the chosen format.
Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(renderFormat)
		if err != nil {
			return err
		}
		return runRender(args[0], f, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(render.FormatOutline), "output format: outline, json or yaml")
}

func runRender(path string, f render.Format, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}

	doc, err := render.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := board.Validate(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	text, err := render.Render(doc, f)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, text)
	return err
}
