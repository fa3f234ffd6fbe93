package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/pack-release/internal/messages"
)

// rootFlags holds the persistent flag values shared by all subcommands.
type rootFlags struct {
	configPath string
	verbose    bool
	yes        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, messages.RootFlagVerbose)
	cmd.PersistentFlags().BoolVarP(&flags.yes, "yes", "y", false, messages.RootFlagYes)

	cmd.AddCommand(newReleaseCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	return cmd
}
