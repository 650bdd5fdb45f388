package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/piwi3910/SpritePack/internal/engine"
	"github.com/piwi3910/SpritePack/internal/importer"
	"github.com/piwi3910/SpritePack/internal/model"
)

type compareOptions struct {
	packFlags
	manifest bool
}

func newCompareCmd(a *app) *cobra.Command {
	opts := compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare [patterns...]",
		Short: "Pack the same sprites with every strategy",
		Long: `Compare packs the same sprites once per strategy and prints the sheet size,
area and wasted space of each. Strategies that cannot take the input, such as
box with other than four sprites, are listed with their error. The smallest
sheet is marked.`,
		Example: `  spritepack compare icons/
  spritepack compare --manifest sizes.csv --padding 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args, opts)
		},
	}

	addPackFlags(cmd, &opts.packFlags, false)
	cmd.Flags().BoolVar(&opts.manifest, "manifest", false, "treat the argument as a CSV or XLSX size manifest")

	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, args []string, opts compareOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	r, err := a.resolveSettings(cmd, &opts.packFlags)
	if err != nil {
		return err
	}

	var sprites []model.Sprite
	if opts.manifest {
		if len(args) != 1 {
			return fmt.Errorf("--manifest takes exactly one file, got %d", len(args))
		}
		res := importer.ImportManifest(args[0])
		for _, w := range res.Warnings {
			logger.Warn(w)
		}
		for _, e := range res.Errors {
			logger.Error(e)
		}
		sprites = res.Sprites
	} else {
		paths, err := importer.Discover(args...)
		if err != nil {
			return err
		}
		sprites, err = importer.LoadSprites(ctx, paths)
		if err != nil {
			return err
		}
	}
	if len(sprites) == 0 {
		return engine.ErrNothingToPack
	}

	prog := newProgress(logger)
	results := engine.CompareStrategies(r.settings, sprites)
	prog.done(fmt.Sprintf("Compared %d strategies", len(results)))

	best, ok := engine.Best(results)
	fmt.Fprintln(a.stdout, comparisonTable(results, best.Strategy, ok))
	if !ok {
		return fmt.Errorf("no strategy could pack %d sprites", len(sprites))
	}
	printSuccess(a.stdout, "best: %s (%dx%d)", best.Strategy, best.Result.Width, best.Result.Height)
	return nil
}

// comparisonTable renders one row per strategy. The best row is highlighted
// and failed rows carry their error.
func comparisonTable(results []engine.ComparisonResult, best model.Strategy, haveBest bool) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{string(r.Strategy), "-", "-", "-", r.Err.Error()})
			continue
		}
		note := ""
		if haveBest && r.Strategy == best {
			note = "best"
		}
		rows = append(rows, []string{
			string(r.Strategy),
			fmt.Sprintf("%dx%d", r.Result.Width, r.Result.Height),
			strconv.Itoa(r.Area),
			fmt.Sprintf("%.1f%%", r.WastePercent),
			note,
		})
	}

	return renderTable([]string{"Strategy", "Sheet", "Area", "Waste", ""}, rows, func(row int) (lipgloss.Style, bool) {
		if row < 0 || row >= len(results) {
			return lipgloss.Style{}, false
		}
		switch {
		case results[row].Err != nil:
			return styleFailed, true
		case haveBest && results[row].Strategy == best:
			return styleBest, true
		}
		return lipgloss.Style{}, false
	})
}
