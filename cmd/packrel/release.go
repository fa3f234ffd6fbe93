package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pack-release/internal/config"
	"github.com/conn-castle/pack-release/internal/gitcli"
	"github.com/conn-castle/pack-release/internal/messages"
	"github.com/conn-castle/pack-release/internal/release"
	"github.com/conn-castle/pack-release/internal/runlog"
)

func newReleaseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ReleaseUse,
		Short: messages.ReleaseShort,
		Long:  messages.ReleaseLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadForRoot(root, flags.configPath)
			if err != nil {
				return err
			}
			logDir, err := cfg.ResolveLogDir(root)
			if err != nil {
				return err
			}
			log, err := runlog.New(logDir, flags.verbose || cfg.Log.Verbose, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = log.Close() }()

			var confirm release.Confirmer = release.PromptConfirmer{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			}
			if flags.yes {
				confirm = release.AutoConfirmer{}
			}

			git := gitcli.New(gitcli.RealSystem{}, root)
			o := release.New(root, cfg, git, log, confirm, cmd.OutOrStdout())
			if err := o.Run(); err != nil {
				if !errors.Is(err, release.ErrAborted) {
					log.Errorf(err.Error(), messages.ReleaseFailed)
				}
				return err
			}
			return nil
		},
	}
}
