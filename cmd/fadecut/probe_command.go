package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fadecut/internal/ffmpeg"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe [file]",
		Short: "Show the duration and frame rate ffmpeg reports for a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// An explicit file argument works without a full config;
			// probing needs only the ffmpeg binary.
			binary := "ffmpeg"
			var input string
			cfg, err := ctx.ensureConfig()
			if err == nil {
				binary = cfg.Settings.FFmpegPath
				input = cfg.Settings.InputVideoPath
			} else if len(args) == 0 {
				return err
			}
			if len(args) == 1 {
				input = args[0]
			}

			client := ffmpeg.NewClient(ffmpeg.WithBinary(binary))
			probe, err := client.Probe(cmd.Context(), input)
			if err != nil {
				return err
			}

			rows := [][]string{
				{"File", input},
				{"Duration", formatClock(probe.Duration)},
				{"Seconds", formatSeconds(probe.Duration)},
				{"Frame rate", formatSeconds(probe.FrameRate) + " fps"},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}

func formatClock(seconds float64) string {
	whole := int(seconds)
	frac := seconds - float64(whole)
	return fmt.Sprintf("%02d:%02d:%05.2f", whole/3600, (whole%3600)/60, float64(whole%60)+frac)
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
