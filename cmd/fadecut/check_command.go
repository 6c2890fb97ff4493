package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fadecut/internal/deps"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify external dependencies and configured paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			checks := deps.Verify(cfg)
			rows := make([][]string, 0, len(checks))
			for _, check := range checks {
				state := "ok"
				if !check.Available {
					state = check.Detail
				}
				rows = append(rows, []string{check.Name, check.Target, state})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Dependency", "Target", "Status"}, rows))

			if failed := deps.Unsatisfied(checks); len(failed) > 0 {
				return errors.New("unsatisfied dependencies")
			}
			return nil
		},
	}
}
