package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/pack-release/internal/config"
	"github.com/conn-castle/pack-release/internal/messages"
	"github.com/conn-castle/pack-release/internal/release"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PreviewUse,
		Short: messages.PreviewShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadForRoot(root, flags.configPath)
			if err != nil {
				return err
			}
			return release.Preview(root, cfg, cmd.OutOrStdout())
		},
	}
}
