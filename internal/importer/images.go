package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/piwi3910/SpritePack/internal/model"

	// imaging registers png, jpeg, gif, bmp and tiff but not webp.
	_ "golang.org/x/image/webp"
)

var (
	// ErrNoImages is returned by Discover when no pattern matches a file.
	ErrNoImages = errors.New("no images matched")

	// ErrDuplicateName is returned by LoadSprites when two files would share a
	// sprite name and therefore a style rule.
	ErrDuplicateName = errors.New("duplicate sprite name")
)

// imageExtensions lists the file types picked up when a directory is given.
var imageExtensions = []string{".png", ".gif", ".jpg", ".jpeg", ".bmp", ".webp"}

// IsImageFile reports whether path has an extension LoadSprites can decode.
func IsImageFile(path string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(path)))
}

// Discover expands glob patterns into a sorted, de-duplicated list of files.
// A pattern naming a directory selects the image files directly inside it.
func Discover(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			entries, err := os.ReadDir(pattern)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", pattern, err)
			}
			for _, e := range entries {
				if !e.IsDir() && IsImageFile(e.Name()) {
					add(filepath.Join(pattern, e.Name()))
				}
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && !info.IsDir() {
				add(m)
			}
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoImages, strings.Join(patterns, " "))
	}
	slices.Sort(paths)
	return paths, nil
}

// SpriteName derives a sprite name from a file path: the base name without
// its extension.
func SpriteName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadSprites decodes every path into a sprite carrying its pixels. Loading
// stops at the first failure or when ctx is cancelled.
func LoadSprites(ctx context.Context, paths []string) ([]model.Sprite, error) {
	sprites := make([]model.Sprite, 0, len(paths))
	names := make(map[string]string, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := SpriteName(path)
		if prev, ok := names[name]; ok {
			return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateName, name, prev, path)
		}
		names[name] = path

		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}

		b := img.Bounds()
		s := model.NewSprite(name, path, b.Dx(), b.Dy())
		s.Image = img
		sprites = append(sprites, s)
	}
	return sprites, nil
}
