package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/SpritePack/internal/model"
	"github.com/piwi3910/SpritePack/internal/project"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTitle(a.stdout, a.configPath)
			c := a.config
			printKeyValue(a.stdout, "Strategy", string(c.DefaultStrategy))
			printKeyValue(a.stdout, "Padding", strconv.Itoa(c.DefaultPadding))
			printKeyValue(a.stdout, "Box X/Y", fmt.Sprintf("%d/%d", c.DefaultXPadding, c.DefaultYPadding))
			printKeyValue(a.stdout, "Prefix", c.ClassPrefix)
			printKeyValue(a.stdout, "Sheet URL", c.SheetURL)
			printKeyValue(a.stdout, "Outputs", strings.Join(c.OutputFormats, ", "))
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				printFailure(a.stdout, "%s already exists", a.configPath)
				return fmt.Errorf("config exists: use --force to overwrite")
			}
			if err := project.SaveAppConfig(a.configPath, model.DefaultAppConfig()); err != nil {
				return err
			}
			printSuccess(a.stdout, "wrote %s", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}
