package cli

import (
	"fmt"
	"os"

	"github.com/rpgo/takehome/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command, which writes the built-in
// schedule to a YAML file as a starting point for edits.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:          "init [file]",
		Short:        "Write the built-in schedule to a YAML file",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "schedule.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), path); err != nil {
				return err
			}
			rootOpts.log.Infof("wrote schedule to %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
