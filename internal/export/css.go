package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/piwi3910/SpritePack/internal/model"
)

// DefaultClassPrefix is used when StyleOptions.Prefix is empty.
const DefaultClassPrefix = "sprite"

// StyleOptions controls the selectors and background URL of generated styles.
type StyleOptions struct {
	URL    string // background-image URL of the sheet
	Prefix string // class or mixin prefix; DefaultClassPrefix when empty
}

func (o StyleOptions) prefix() string {
	if p := Slugify(o.Prefix); p != "" {
		return p
	}
	return DefaultClassPrefix
}

// Slugify turns a sprite name into a CSS identifier fragment: lowercase ASCII
// letters and digits with every other run of characters collapsed into a
// single dash. A result starting with a digit is prefixed with an underscore.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	slug := b.String()
	if slug != "" && slug[0] >= '0' && slug[0] <= '9' {
		slug = "_" + slug
	}
	return slug
}

// className returns the selector fragment for a placement.
func className(prefix string, p model.Placement) string {
	slug := Slugify(p.Sprite.Name)
	if slug == "" {
		slug = p.Sprite.ID
	}
	return prefix + "-" + slug
}

// WriteCSS writes one rule carrying the shared background and one rule per
// sprite with its offset and size.
func WriteCSS(w io.Writer, sheet model.SheetResult, opts StyleOptions) error {
	bw := bufio.NewWriter(w)
	prefix := opts.prefix()

	selectors := make([]string, len(sheet.Placements))
	for i, p := range sheet.Placements {
		selectors[i] = "." + className(prefix, p)
	}

	fmt.Fprintf(bw, "/* %s sheet %dx%d, %d sprites */\n", sheet.Strategy, sheet.Width, sheet.Height, len(sheet.Placements))
	if len(selectors) > 0 {
		fmt.Fprintf(bw, "%s {\n", strings.Join(selectors, ",\n"))
		if opts.URL != "" {
			fmt.Fprintf(bw, "  background-image: url(%q);\n", opts.URL)
		}
		fmt.Fprintf(bw, "  background-repeat: no-repeat;\n}\n")
	}

	for _, p := range sheet.Placements {
		fmt.Fprintf(bw, "\n.%s { background-position: %s %s; width: %dpx; height: %dpx; }\n",
			className(prefix, p), offset(p.X), offset(p.Y), p.Sprite.Width, p.Sprite.Height)
	}
	return bw.Flush()
}

// WriteSass writes a placeholder selector for the shared background and one
// mixin per sprite, so rules can be composed into existing selectors.
func WriteSass(w io.Writer, sheet model.SheetResult, opts StyleOptions) error {
	bw := bufio.NewWriter(w)
	prefix := opts.prefix()

	fmt.Fprintf(bw, "// %s sheet %dx%d, %d sprites\n", sheet.Strategy, sheet.Width, sheet.Height, len(sheet.Placements))
	fmt.Fprintf(bw, "%%%s {\n", prefix)
	if opts.URL != "" {
		fmt.Fprintf(bw, "  background-image: url(%q);\n", opts.URL)
	}
	fmt.Fprintf(bw, "  background-repeat: no-repeat;\n}\n")

	for _, p := range sheet.Placements {
		fmt.Fprintf(bw, "\n@mixin %s {\n", className(prefix, p))
		fmt.Fprintf(bw, "  @extend %%%s;\n", prefix)
		fmt.Fprintf(bw, "  background-position: %s %s;\n", offset(p.X), offset(p.Y))
		fmt.Fprintf(bw, "  width: %dpx;\n  height: %dpx;\n}\n", p.Sprite.Width, p.Sprite.Height)
	}
	return bw.Flush()
}

// offset renders a background-position component. Zero has no unit.
func offset(v int) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("-%dpx", v)
}
