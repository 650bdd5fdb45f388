package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/SpritePack/internal/engine"
	"github.com/piwi3910/SpritePack/internal/importer"
	"github.com/piwi3910/SpritePack/internal/model"
)

type planOptions struct {
	packFlags
	files outputs
}

func newPlanCmd(a *app) *cobra.Command {
	opts := planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <manifest>",
		Short: "Lay out sprite sizes from a CSV or XLSX manifest",
		Long: `Plan reads a manifest of sprite names and sizes (columns name, width, height and
an optional quantity) and packs placeholder sprites of those sizes. The layout is
printed as a table and may be written as JSON, PDF, XLSX, DXF or SVG.`,
		Example: `  spritepack plan sizes.csv -s alternating --padding 4
  spritepack plan sizes.xlsx --pdf layout.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, args[0], opts)
		},
	}

	addPackFlags(cmd, &opts.packFlags, true)
	cmd.Flags().StringVar(&opts.files.json, "json", "", "write a JSON frame table")
	cmd.Flags().StringVar(&opts.files.pdf, "pdf", "", "write a PDF layout report")
	cmd.Flags().StringVar(&opts.files.xlsx, "xlsx", "", "write an XLSX coordinates workbook")
	cmd.Flags().StringVar(&opts.files.dxf, "dxf", "", "write a DXF outline drawing")
	cmd.Flags().StringVar(&opts.files.svg, "svg", "", "write an SVG preview")

	return cmd
}

func (a *app) runPlan(cmd *cobra.Command, manifest string, opts planOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	r, err := a.resolveSettings(cmd, &opts.packFlags)
	if err != nil {
		return err
	}

	res := importer.ImportManifest(manifest)
	for _, w := range res.Warnings {
		logger.Warn(w)
	}
	for _, e := range res.Errors {
		logger.Error(e)
	}
	if len(res.Sprites) == 0 {
		return fmt.Errorf("%s: no sprites to plan", manifest)
	}
	if len(res.Errors) > 0 {
		printWarning(a.stdout, "%d rows skipped", len(res.Errors))
	}

	packer := engine.New(r.settings)
	packer.Logger = logger
	sheet, err := packer.Pack(res.Sprites)
	if err != nil {
		return err
	}

	printTitle(a.stdout, fmt.Sprintf("%s sheet %dx%d", sheet.Strategy, sheet.Width, sheet.Height))
	fmt.Fprintln(a.stdout, layoutTable(sheet))
	printKeyValue(a.stdout, "Sprites", strconv.Itoa(len(sheet.Placements)))
	printKeyValue(a.stdout, "Used", fmt.Sprintf("%.1f%%", sheet.Efficiency()))

	written, err := writeOutputs(ctx, sheet, r, "", opts.files)
	if err != nil {
		return err
	}
	for _, path := range written {
		printFile(a.stdout, path)
	}
	return nil
}

// layoutTable renders one row per placement in placement order.
func layoutTable(sheet model.SheetResult) string {
	rows := make([][]string, 0, len(sheet.Placements))
	for _, p := range sheet.Placements {
		rows = append(rows, []string{
			p.Sprite.Name,
			strconv.Itoa(p.X),
			strconv.Itoa(p.Y),
			strconv.Itoa(p.Sprite.Width),
			strconv.Itoa(p.Sprite.Height),
		})
	}
	return renderTable([]string{"Name", "X", "Y", "Width", "Height"}, rows, nil)
}
