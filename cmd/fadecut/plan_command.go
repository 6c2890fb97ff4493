package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fadecut/internal/logging"
	"fadecut/internal/pipeline"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the ffmpeg invocation without executing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runner := pipeline.New(cfg, logging.NewNop())
			command, probe, err := runner.Plan(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# input duration %ss at %s fps\n",
				formatSeconds(probe.Duration), formatSeconds(probe.FrameRate))
			fmt.Fprintln(out, command.String())
			return nil
		},
	}
}
