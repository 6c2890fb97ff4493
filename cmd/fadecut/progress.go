package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"fadecut/internal/pipeline"
)

const progressLogInterval = 10 * time.Second

// newProgressSink picks the progress presentation for a tracked run: an
// interactive bar on a terminal, throttled log lines otherwise.
func newProgressSink(logger *slog.Logger) pipeline.ProgressSink {
	if stderrIsTerminal() {
		return &barSink{}
	}
	return &logSink{logger: logger, interval: progressLogInterval, now: time.Now}
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// barSink renders a terminal progress bar bounded by the probed duration.
// The bar is never forced to 100%; it stops wherever ffmpeg's last reported
// timestamp landed.
type barSink struct {
	bar *progressbar.ProgressBar
}

func (s *barSink) Start(total float64) {
	s.bar = progressbar.NewOptions64(int64(total),
		progressbar.OptionSetDescription("transcoding"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerHead:    ">",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (s *barSink) Update(elapsed float64) {
	if s.bar != nil {
		_ = s.bar.Set64(int64(elapsed))
	}
}

func (s *barSink) Done() {
	if s.bar != nil {
		fmt.Fprintln(os.Stderr)
	}
}

// logSink reports progress as log records, throttled so long transcodes do
// not flood non-interactive output.
type logSink struct {
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	total   float64
	elapsed float64
	last    time.Time
}

func (s *logSink) Start(total float64) {
	s.total = total
	s.last = s.now()
	s.logger.Info("transcoding", "total_seconds", total)
}

func (s *logSink) Update(elapsed float64) {
	s.elapsed = elapsed
	if s.now().Sub(s.last) < s.interval {
		return
	}
	s.last = s.now()
	s.logger.Info("transcoding", "elapsed_seconds", elapsed, "total_seconds", s.total)
}

func (s *logSink) Done() {
	s.logger.Debug("ffmpeg output ended", "elapsed_seconds", s.elapsed, "total_seconds", s.total)
}
