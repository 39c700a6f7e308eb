package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wellmaintained/gridley/internal/errors"
	"github.com/wellmaintained/gridley/internal/style"
	"github.com/wellmaintained/gridley/internal/ui"
	"github.com/wellmaintained/gridley/pkg/table"
)

var (
	renderHeaderRow    bool
	renderSeparateRows bool
	renderTopAndTail   bool
	renderANSI         bool
	renderStyleFile    string
	renderSeparator    string
	renderFill         string
	renderCorner       string
	renderHeaderFill   string
	renderHeaderCorner string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a JSON grid as a bordered text table",
	Long: `Render a grid of cells as a fixed-width bordered table.

The grid is a JSON array of rows, each row an array of cells. Cells are
strings or null (rendered empty). Rows may have differing lengths; the
widest row determines the column count. The grid is read from the given
file, or from stdin when no file is named.

Border glyphs can be overridden per-glyph with flags, or together via a
YAML style file (--style). Flags win over the style file.`,
	Example: `  # Render a grid from a file, first row as header
  gridley render grid.json --header-row

  # Read from stdin with a rule between every row
  echo '[["a","b"],["c","d"]]' | gridley render --separate-rows

  # Cells contain ANSI color escapes; align by visible width
  gridley render colored.json --ansi

  # Unicode borders from a style file
  gridley render grid.json --style box.yaml`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		var errs []error

		glyphs := map[string]string{
			"separator":     renderSeparator,
			"fill":          renderFill,
			"corner":        renderCorner,
			"header-fill":   renderHeaderFill,
			"header-corner": renderHeaderCorner,
		}
		for name, glyph := range glyphs {
			if cmd.Flags().Changed(name) && len([]rune(glyph)) != 1 {
				errs = append(errs, fmt.Errorf("--%s must be exactly one character (got %q)", name, glyph))
			}
		}

		if renderStyleFile != "" {
			if _, err := os.Stat(renderStyleFile); err != nil {
				errs = append(errs, fmt.Errorf("style file %q not found", renderStyleFile))
			}
		}

		if len(errs) > 0 {
			combined := "Validation errors:\n"
			for _, err := range errs {
				combined += fmt.Sprintf("  - %s\n", err)
			}
			return errors.NewValidationError(combined, nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRender(cmd, args); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}

	grid, err := readGrid(args)
	if err != nil {
		return err
	}

	out, err := table.Render(grid, cfg)
	if err != nil {
		return errors.NewValidationError("cannot render grid", err)
	}

	fmt.Println(out)
	return nil
}

// renderConfig builds the table configuration from defaults, then the style
// file, then individual glyph flags, in increasing precedence.
func renderConfig(cmd *cobra.Command) (table.Config, error) {
	cfg := table.DefaultConfig()

	if renderStyleFile != "" {
		s, err := style.Load(renderStyleFile)
		if err != nil {
			return cfg, errors.NewRuntimeError("failed to load style file", err)
		}
		cfg = s.Apply(cfg)
	}

	if cmd.Flags().Changed("separator") {
		cfg.Separator = renderSeparator
	}
	if cmd.Flags().Changed("fill") {
		cfg.Fill = renderFill
	}
	if cmd.Flags().Changed("corner") {
		cfg.Corner = renderCorner
	}
	if cmd.Flags().Changed("header-fill") {
		cfg.HeaderFill = renderHeaderFill
	}
	if cmd.Flags().Changed("header-corner") {
		cfg.HeaderCorner = renderHeaderCorner
	}

	cfg.HeaderRow = renderHeaderRow
	cfg.SeparateRows = renderSeparateRows
	cfg.TopAndTail = renderTopAndTail
	cfg.ANSI = renderANSI
	return cfg, nil
}

// readGrid reads the JSON grid from the named file or stdin. JSON null
// cells become empty strings; the core renderer only deals in strings.
func readGrid(args []string) ([][]string, error) {
	var r io.Reader
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.NewRuntimeError(fmt.Sprintf("failed to open grid file %q", args[0]), err)
		}
		defer f.Close()
		r = f
	} else {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			ui.Info("Reading JSON grid from stdin (end with Ctrl-D)...\n")
		}
		r = os.Stdin
	}

	var raw [][]*string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.NewRuntimeError("failed to decode grid JSON", err)
	}

	return resolveNulls(raw), nil
}

// resolveNulls converts the decoded nullable grid into the plain string
// grid the renderer takes, mapping null cells to empty strings.
func resolveNulls(raw [][]*string) [][]string {
	if raw == nil {
		return nil
	}
	grid := make([][]string, len(raw))
	for i, row := range raw {
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell != nil {
				cells[j] = *cell
			}
		}
		grid[i] = cells
	}
	return grid
}

func init() {
	renderCmd.Flags().BoolVar(&renderHeaderRow, "header-row", false, "Treat the first row as a header, set off by a rule")
	renderCmd.Flags().BoolVar(&renderSeparateRows, "separate-rows", false, "Draw a rule between every data row")
	renderCmd.Flags().BoolVar(&renderTopAndTail, "top-and-tail", false, "Suppress the outermost top and bottom border lines")
	renderCmd.Flags().BoolVar(&renderANSI, "ansi", false, "Cells may contain ANSI color escapes; align by visible width")
	renderCmd.Flags().StringVar(&renderStyleFile, "style", "", "YAML style file with border glyph overrides")
	renderCmd.Flags().StringVar(&renderSeparator, "separator", "|", "Column separator glyph")
	renderCmd.Flags().StringVar(&renderFill, "fill", "-", "Row rule fill glyph")
	renderCmd.Flags().StringVar(&renderCorner, "corner", "+", "Row rule corner glyph")
	renderCmd.Flags().StringVar(&renderHeaderFill, "header-fill", "=", "Header rule fill glyph")
	renderCmd.Flags().StringVar(&renderHeaderCorner, "header-corner", "O", "Header rule corner glyph")
}
