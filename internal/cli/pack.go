package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/SpritePack/internal/engine"
	"github.com/piwi3910/SpritePack/internal/export"
	"github.com/piwi3910/SpritePack/internal/importer"
	"github.com/piwi3910/SpritePack/internal/model"
)

// outputs names the companion files to write next to the sheet image.
type outputs struct {
	css, sass, json, pdf, xlsx, dxf, svg string
}

// formatExtensions maps config output format names to file extensions.
var formatExtensions = map[string]string{
	"css":  ".css",
	"sass": ".scss",
	"json": ".json",
	"pdf":  ".pdf",
	"xlsx": ".xlsx",
	"dxf":  ".dxf",
	"svg":  ".svg",
}

func (o outputs) empty() bool {
	return o == outputs{}
}

// fromFormats derives output paths from the sheet path and a list of format
// names, e.g. "sprites.png" and "css" give "sprites.css".
func fromFormats(out string, formats []string) (outputs, []string) {
	base := strings.TrimSuffix(out, filepath.Ext(out))
	var o outputs
	targets := map[string]*string{
		"css":  &o.css,
		"sass": &o.sass,
		"json": &o.json,
		"pdf":  &o.pdf,
		"xlsx": &o.xlsx,
		"dxf":  &o.dxf,
		"svg":  &o.svg,
	}
	var unknown []string
	for _, f := range formats {
		name := strings.ToLower(strings.TrimSpace(f))
		dst, ok := targets[name]
		if !ok {
			unknown = append(unknown, f)
			continue
		}
		*dst = base + formatExtensions[name]
	}
	return o, unknown
}

type packOptions struct {
	packFlags
	out    string
	files  outputs
	url    string
	prefix string
}

func newPackCmd(a *app) *cobra.Command {
	opts := packOptions{}

	cmd := &cobra.Command{
		Use:   "pack [patterns...]",
		Short: "Pack images into a sprite sheet",
		Long: `Pack discovers images by glob pattern or directory, lays them out on one sheet
and writes the sheet image. Style sheets and other companion files are written
for each --css, --sass, --json, --pdf, --xlsx, --dxf or --svg path given, or for
the output_formats listed in the config file when none is given.`,
		Example: `  spritepack pack icons/ --css icons.css
  spritepack pack 'ui/*.png' -s vertical --padding 2 --out ui.png --json ui.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPack(cmd, args, opts)
		},
	}

	addPackFlags(cmd, &opts.packFlags, true)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "sprites.png", "sheet image path")
	cmd.Flags().StringVar(&opts.files.css, "css", "", "write a CSS style sheet")
	cmd.Flags().StringVar(&opts.files.sass, "sass", "", "write Sass mixins")
	cmd.Flags().StringVar(&opts.files.json, "json", "", "write a JSON frame table")
	cmd.Flags().StringVar(&opts.files.pdf, "pdf", "", "write a PDF layout report")
	cmd.Flags().StringVar(&opts.files.xlsx, "xlsx", "", "write an XLSX coordinates workbook")
	cmd.Flags().StringVar(&opts.files.dxf, "dxf", "", "write a DXF outline drawing")
	cmd.Flags().StringVar(&opts.files.svg, "svg", "", "write an SVG preview")
	cmd.Flags().StringVar(&opts.url, "url", "", "background-image URL used in styles (default: sheet path relative to the style sheet)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "class and mixin prefix")

	return cmd
}

func (a *app) runPack(cmd *cobra.Command, args []string, opts packOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	r, err := a.resolveSettings(cmd, &opts.packFlags)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("url") {
		r.url = opts.url
	}
	if cmd.Flags().Changed("prefix") {
		r.prefix = opts.prefix
	}

	files := opts.files
	if files.empty() {
		var unknown []string
		files, unknown = fromFormats(opts.out, a.config.OutputFormats)
		for _, f := range unknown {
			logger.Warn("ignoring unknown output format", "format", f)
		}
	}

	prog := newProgress(logger)

	paths, err := importer.Discover(args...)
	if err != nil {
		return err
	}
	logger.Debug("discovered images", "count", len(paths))

	sprites, err := importer.LoadSprites(ctx, paths)
	if err != nil {
		return err
	}

	packer := engine.New(r.settings)
	packer.Logger = logger
	sheet, err := packer.Pack(sprites)
	if err != nil {
		return err
	}
	logger.Info("packed sheet", "strategy", sheet.Strategy, "size", fmt.Sprintf("%dx%d", sheet.Width, sheet.Height), "sprites", len(sheet.Placements))

	written, err := writeOutputs(ctx, sheet, r, opts.out, files)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Packed %d sprites", len(sheet.Placements)))
	printSuccess(a.stdout, "%dx%d %s sheet, %.1f%% used", sheet.Width, sheet.Height, sheet.Strategy, sheet.Efficiency())
	for _, path := range written {
		printFile(a.stdout, path)
	}
	return nil
}

// writeOutputs writes the sheet image, unless out is empty, and every
// requested companion file. It returns the paths written in order.
func writeOutputs(ctx context.Context, sheet model.SheetResult, r resolved, out string, files outputs) ([]string, error) {
	var written []string

	if out != "" {
		if err := ensureDir(out); err != nil {
			return nil, err
		}
		if err := export.WriteSheetPNG(out, sheet); err != nil {
			return nil, err
		}
		written = append(written, out)
	}

	style := func(stylePath string) export.StyleOptions {
		return export.StyleOptions{URL: sheetURL(r.url, stylePath, out), Prefix: r.prefix}
	}

	steps := []struct {
		path  string
		write func(path string) error
	}{
		{files.css, func(path string) error {
			return writeFile(path, func(f *os.File) error { return export.WriteCSS(f, sheet, style(path)) })
		}},
		{files.sass, func(path string) error {
			return writeFile(path, func(f *os.File) error { return export.WriteSass(f, sheet, style(path)) })
		}},
		{files.json, func(path string) error {
			return writeFile(path, func(f *os.File) error { return export.WriteJSON(f, sheet, sheetURL(r.url, path, out)) })
		}},
		{files.pdf, func(path string) error { return export.ExportPDF(path, sheet, r.settings) }},
		{files.xlsx, func(path string) error { return export.ExportXLSX(path, sheet) }},
		{files.dxf, func(path string) error { return export.ExportDXF(path, sheet) }},
		{files.svg, func(path string) error {
			return writeFile(path, func(f *os.File) error {
				return export.RenderSVG(f, sheet, export.SVGOptions{EmbedImage: true, Labels: true})
			})
		}},
	}

	for _, s := range steps {
		if s.path == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := ensureDir(s.path); err != nil {
			return written, err
		}
		if err := s.write(s.path); err != nil {
			return written, fmt.Errorf("writing %s: %w", s.path, err)
		}
		written = append(written, s.path)
	}
	return written, nil
}

// sheetURL returns url when set, otherwise the sheet path relative to the
// directory of the file that references it.
func sheetURL(url, from, sheet string) string {
	if url != "" || sheet == "" {
		return url
	}
	rel, err := filepath.Rel(filepath.Dir(from), sheet)
	if err != nil {
		rel = sheet
	}
	return filepath.ToSlash(rel)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
