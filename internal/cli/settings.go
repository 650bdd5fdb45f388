package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/piwi3910/SpritePack/internal/project"
)

// packFlags holds the packing flags shared by pack, plan and compare.
type packFlags struct {
	strategy string
	padding  int
	xpadding int
	ypadding int
	preset   string
}

func addPackFlags(cmd *cobra.Command, f *packFlags, withStrategy bool) {
	if withStrategy {
		cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "packing strategy: greedy, vertical, horizontal, box, alternating")
	}
	cmd.Flags().IntVar(&f.padding, "padding", 0, "gap in px between stacked sprites")
	cmd.Flags().IntVar(&f.xpadding, "xpadding", 0, "box: gap in px between the left and right columns")
	cmd.Flags().IntVar(&f.ypadding, "ypadding", 0, "box: gap in px between the top and bottom rows")
	cmd.Flags().StringVar(&f.preset, "preset", "", "start from a saved preset")
}

// resolved is the outcome of layering config, preset and flags.
type resolved struct {
	settings model.PackSettings
	prefix   string
	url      string
}

// resolveSettings layers the built-in defaults, the config file, the named
// preset and finally any flag the user set explicitly.
func (a *app) resolveSettings(cmd *cobra.Command, f *packFlags) (resolved, error) {
	r := resolved{
		settings: model.DefaultSettings(),
		prefix:   a.config.ClassPrefix,
		url:      a.config.SheetURL,
	}
	a.config.ApplyToSettings(&r.settings)

	if f.preset != "" {
		store, err := project.LoadPresets(a.presetPath())
		if err != nil {
			return resolved{}, fmt.Errorf("loading presets: %w", err)
		}
		p := store.FindByName(f.preset)
		if p == nil {
			return resolved{}, fmt.Errorf("preset %q not found", f.preset)
		}
		r.settings = p.Settings
		if p.ClassPrefix != "" {
			r.prefix = p.ClassPrefix
		}
		if p.SheetURL != "" {
			r.url = p.SheetURL
		}
	}

	flags := cmd.Flags()
	if flags.Lookup("strategy") != nil && flags.Changed("strategy") {
		s, err := model.ParseStrategy(f.strategy)
		if err != nil {
			return resolved{}, err
		}
		r.settings.Strategy = s
	}
	if flags.Changed("padding") {
		r.settings.Padding = f.padding
	}
	if flags.Changed("xpadding") {
		r.settings.XPadding = f.xpadding
	}
	if flags.Changed("ypadding") {
		r.settings.YPadding = f.ypadding
	}

	if r.settings.Padding < 0 || r.settings.XPadding < 0 || r.settings.YPadding < 0 {
		return resolved{}, fmt.Errorf("padding must not be negative")
	}
	if r.settings.Strategy == "" {
		r.settings.Strategy = model.StrategyGreedy
	}
	return r, nil
}
