// Package cli implements the spritepack command-line interface.
//
// # Commands
//
//   - pack: discover images, pack them into one sheet and write the sheet
//     plus any requested style, manifest or preview files
//   - plan: pack the placeholder sprites listed in a CSV or XLSX manifest and
//     print the layout
//   - compare: pack the same images with every strategy and rank the results
//   - preset: save, list and remove named packing presets
//   - config: print or initialise the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// one entry per committed placement. Loggers travel through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/piwi3910/SpritePack/internal/project"
)

var (
	version = "dev" // semantic version, set via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries state shared by every command of one invocation.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	verbose    bool
	configPath string
	config     model.AppConfig
}

// presetPath keeps the preset store next to the selected config file.
func (a *app) presetPath() string {
	if a.configPath == project.DefaultConfigPath() {
		return project.DefaultPresetPath()
	}
	return filepath.Join(filepath.Dir(a.configPath), "presets.json")
}

// Execute runs the spritepack CLI with os.Args and returns the first error.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree writing results to stdout and logs to
// stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "spritepack",
		Short:         "SpritePack packs images into CSS sprite sheets",
		Long:          `SpritePack lays out many small images on a single sheet and writes the sheet together with the CSS, Sass or JSON needed to address each image in it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(a.stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			cfg, err := project.LoadAppConfig(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.config = cfg
			logger.Debug("config loaded", "path", a.configPath)
			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("spritepack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", project.DefaultConfigPath(), "path to the TOML config file")

	root.AddCommand(newPackCmd(a))
	root.AddCommand(newPlanCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newPresetCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}
