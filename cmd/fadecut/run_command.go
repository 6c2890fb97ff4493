package main

import (
	"github.com/spf13/cobra"

	"fadecut/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process the configured video",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			runner := pipeline.New(cfg, logger)
			return runner.Run(cmd.Context(), newProgressSink(logger))
		},
	}
}
