package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/piwi3910/SpritePack/internal/project"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved packing presets",
		Long:  `Presets store a strategy, its paddings and optional style options under a name, for use with --preset.`,
	}
	cmd.AddCommand(newPresetSaveCmd(a))
	cmd.AddCommand(newPresetListCmd(a))
	cmd.AddCommand(newPresetRemoveCmd(a))
	return cmd
}

type presetSaveOptions struct {
	packFlags
	description string
	prefix      string
	url         string
}

func newPresetSaveCmd(a *app) *cobra.Command {
	opts := presetSaveOptions{}

	cmd := &cobra.Command{
		Use:     "save <name>",
		Short:   "Save the given settings as a preset, replacing one of the same name",
		Example: `  spritepack preset save toolbar -s horizontal --padding 2 --prefix tb`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			// A preset never layers on itself.
			opts.preset = ""
			r, err := a.resolveSettings(cmd, &opts.packFlags)
			if err != nil {
				return err
			}

			path := a.presetPath()
			store, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			p := model.NewPreset(name, opts.description, r.settings)
			p.ClassPrefix = opts.prefix
			p.SheetURL = opts.url
			store.Put(p)
			if err := project.SavePresets(path, store); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("presets saved", "path", path)
			printSuccess(a.stdout, "saved preset %s (%s)", name, r.settings.Strategy)
			return nil
		},
	}

	addPackFlags(cmd, &opts.packFlags, true)
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "free-form description")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "class and mixin prefix")
	cmd.Flags().StringVar(&opts.url, "url", "", "background-image URL used in styles")
	_ = cmd.Flags().MarkHidden("preset")

	return cmd
}

func newPresetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadPresets(a.presetPath())
			if err != nil {
				return err
			}
			if len(store.Presets) == 0 {
				printWarning(a.stdout, "no presets saved")
				return nil
			}
			rows := make([][]string, 0, len(store.Presets))
			for _, p := range store.Presets {
				rows = append(rows, []string{
					p.Name,
					string(p.Settings.Strategy),
					strconv.Itoa(p.Settings.Padding),
					fmt.Sprintf("%d/%d", p.Settings.XPadding, p.Settings.YPadding),
					p.ClassPrefix,
					p.Description,
				})
			}
			fmt.Fprintln(a.stdout, renderTable([]string{"Name", "Strategy", "Padding", "Box X/Y", "Prefix", "Description"}, rows, nil))
			return nil
		},
	}
}

func newPresetRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a saved preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.presetPath()
			store, err := project.LoadPresets(path)
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("preset %q not found", args[0])
			}
			if err := project.SavePresets(path, store); err != nil {
				return err
			}
			printSuccess(a.stdout, "removed preset %s", args[0])
			return nil
		},
	}
}
