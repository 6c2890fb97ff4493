package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"fadecut/internal/config"
	"fadecut/internal/ffmpeg"
	"fadecut/internal/plan"
)

// ProgressSink receives elapsed-time updates during a tracked run. Start is
// called once with the probed duration before the transcode launches; Update
// may never reach the total when ffmpeg's last reported timestamp falls
// short.
type ProgressSink interface {
	Start(total float64)
	Update(elapsed float64)
	Done()
}

type nopSink struct{}

func (nopSink) Start(float64)  {}
func (nopSink) Update(float64) {}
func (nopSink) Done()          {}

// Option configures the runner.
type Option func(*Runner)

// WithClient injects a custom ffmpeg client (primarily for tests).
func WithClient(client *ffmpeg.Client) Option {
	return func(r *Runner) {
		if client != nil {
			r.client = client
		}
	}
}

// Runner drives the single-pass transformation chain: probe, resolve, build,
// assemble, execute. Each stage consumes the previous stage's output exactly
// once; the first failing stage ends the run.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	client *ffmpeg.Client
}

// New constructs a runner for the given configuration. The logger is tagged
// with a fresh run id so records from concurrent invocations stay separable.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Runner {
	runner := &Runner{
		cfg:    cfg,
		logger: logger.With("run_id", shortRunID()),
		client: ffmpeg.NewClient(ffmpeg.WithBinary(cfg.Settings.FFmpegPath)),
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

func shortRunID() string {
	return uuid.NewString()[:8]
}

// Plan runs the pipeline up to command assembly and returns the invocation
// it would execute, together with the probed media facts.
func (r *Runner) Plan(ctx context.Context) (plan.Command, ffmpeg.Probe, error) {
	settings := &r.cfg.Settings

	probe, err := r.client.Probe(ctx, settings.InputVideoPath)
	if err != nil {
		return plan.Command{}, ffmpeg.Probe{}, err
	}
	r.logger.Debug("probe complete",
		"input", settings.InputVideoPath,
		"duration", probe.Duration,
		"fps", probe.FrameRate)

	timing, err := plan.ResolveTiming(settings, probe.Duration)
	if err != nil {
		return plan.Command{}, ffmpeg.Probe{}, err
	}

	filters := plan.BuildFilters(settings, timing)
	r.logger.Debug("filter plan built",
		"video_chain", filters.VideoChain(),
		"audio_topology", filters.Topology.String())

	command := plan.Assemble(settings, timing, filters, probe)
	return command, probe, nil
}

// Run executes the full pipeline. In pass-through mode (advanced_log) ffmpeg
// inherits the parent's streams; otherwise its diagnostic output feeds the
// sink. A nil sink discards progress.
func (r *Runner) Run(ctx context.Context, sink ProgressSink) error {
	if sink == nil {
		sink = nopSink{}
	}
	settings := &r.cfg.Settings

	command, probe, err := r.Plan(ctx)
	if err != nil {
		return err
	}

	// One writer per output path; a second run against the same output
	// fails fast instead of corrupting the file.
	lock := flock.New(settings.OutputVideoPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output: %w", err)
	}
	if !locked {
		return fmt.Errorf("output %s is locked by another fadecut run", settings.OutputVideoPath)
	}
	defer lock.Unlock()

	r.logger.Info("starting the video processing",
		"input", settings.InputVideoPath,
		"output", settings.OutputVideoPath,
		"duration", probe.Duration)

	opts := ffmpeg.RunOptions{Passthrough: settings.AdvancedLog}
	if !opts.Passthrough {
		sink.Start(probe.Duration)
		defer sink.Done()
		opts.Progress = sink.Update
	}

	if err := r.client.Run(ctx, command.Argv(), opts); err != nil {
		return err
	}

	r.logger.Info("video processed successfully", "output", settings.OutputVideoPath)
	return nil
}
