package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Scan errors returned by Probe when the diagnostic text lacks a marker.
var (
	ErrDurationNotFound  = errors.New("could not determine video duration")
	ErrFrameRateNotFound = errors.New("could not determine video framerate")
)

// ExitError reports a process that started but finished abnormally.
type ExitError struct {
	Status string
}

func (e *ExitError) Error() string {
	return "ffmpeg exited abnormally: " + e.Status
}

// Probe holds the facts extracted from ffmpeg's diagnostic banner.
type Probe struct {
	Duration  float64 // seconds
	FrameRate float64 // frames per second
}

// ProgressFunc receives the elapsed transcode position in seconds each time
// ffmpeg reports one on its diagnostic stream.
type ProgressFunc func(elapsed float64)

// RunOptions selects the supervision mode for Run.
type RunOptions struct {
	// Passthrough hands ffmpeg the parent's stdout and stderr and waits.
	// When false the diagnostic stream is scanned for progress markers
	// instead and stdout is discarded.
	Passthrough bool
	Progress    ProgressFunc
}

// Executor abstracts command execution for testability. When sink is nil the
// child inherits the parent's output streams; otherwise its stdout is
// discarded and every diagnostic (stderr) line is passed to sink.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, sink func(line string)) error
}

// Option configures the client.
type Option func(*Client)

// WithBinary overrides the default ffmpeg binary path.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if strings.TrimSpace(binary) != "" {
			c.binary = binary
		}
	}
}

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps interactions with the external ffmpeg binary.
type Client struct {
	binary string
	exec   Executor
}

// NewClient constructs a client using defaults.
func NewClient(opts ...Option) *Client {
	client := &Client{binary: "ffmpeg", exec: commandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Binary returns the configured ffmpeg binary path.
func (c *Client) Binary() string {
	return c.binary
}

// Probe invokes ffmpeg with no output file and scrapes duration and frame
// rate from its diagnostic banner. The no-output invocation exits non-zero
// by design; only launch failures and missing markers are errors.
func (c *Client) Probe(ctx context.Context, input string) (Probe, error) {
	if strings.TrimSpace(input) == "" {
		return Probe{}, errors.New("input path required")
	}

	var lines []string
	err := c.exec.Run(ctx, c.binary, []string{"-i", input, "-hide_banner"}, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			return Probe{}, fmt.Errorf("probe %s: %w", input, err)
		}
	}

	duration, ok := scanDuration(lines)
	if !ok {
		return Probe{}, fmt.Errorf("probe %s: %w", input, ErrDurationNotFound)
	}
	frameRate, ok := scanFrameRate(lines)
	if !ok {
		return Probe{}, fmt.Errorf("probe %s: %w", input, ErrFrameRateNotFound)
	}

	return Probe{Duration: duration, FrameRate: frameRate}, nil
}

// Run supervises one transcode invocation. argv carries the full token
// sequence with the program name first, as produced by the assembler. Both
// modes share the same exit-status mapping; a failed invocation is never
// retried.
func (c *Client) Run(ctx context.Context, argv []string, opts RunOptions) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}

	var sink func(string)
	if !opts.Passthrough {
		sink = func(line string) {
			if elapsed, ok := ParseElapsed(line); ok && opts.Progress != nil {
				opts.Progress(elapsed)
			}
		}
	}

	if err := c.exec.Run(ctx, argv[0], argv[1:], sink); err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, sink func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec

	if sink == nil {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return wrapWaitError(err)
		}
		return nil
	}

	cmd.Stdout = io.Discard
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		sink(scanner.Text())
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		return wrapWaitError(err)
	}
	if scanErr != nil {
		return fmt.Errorf("scan output: %w", scanErr)
	}
	return nil
}

func wrapWaitError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Status: exitErr.ProcessState.String()}
	}
	return fmt.Errorf("run command: %w", err)
}

var _ Executor = commandExecutor{}
