// Package deps verifies the external tools and files a run depends on
// before any work starts.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"fadecut/internal/config"
)

// Check names one external dependency and whether it was satisfied.
type Check struct {
	Name      string
	Target    string
	Available bool
	Detail    string
}

// Verify evaluates every external dependency of a run: the ffmpeg binary,
// the input file, and the background audio file when one is configured.
func Verify(cfg *config.Config) []Check {
	s := &cfg.Settings

	checks := []Check{
		checkBinary("ffmpeg", s.FFmpegPath),
		checkFile("input video", s.InputVideoPath),
	}
	if s.HasBackgroundAudio() {
		checks = append(checks, checkFile("background audio", s.BackgroundAudioPath))
	}
	return checks
}

// Unsatisfied filters checks down to the failures.
func Unsatisfied(checks []Check) []Check {
	var failed []Check
	for _, check := range checks {
		if !check.Available {
			failed = append(failed, check)
		}
	}
	return failed
}

func checkBinary(name, command string) Check {
	check := Check{Name: name, Target: command}
	if strings.TrimSpace(command) == "" {
		check.Detail = "not configured"
		return check
	}
	if strings.ContainsRune(command, os.PathSeparator) {
		return checkFile(name, command)
	}
	if _, err := exec.LookPath(command); err != nil {
		check.Detail = fmt.Sprintf("binary %q not found in PATH", command)
		return check
	}
	check.Available = true
	return check
}

func checkFile(name, path string) Check {
	check := Check{Name: name, Target: path}
	info, err := os.Stat(path)
	switch {
	case err != nil:
		check.Detail = fmt.Sprintf("%q not found", path)
	case info.IsDir():
		check.Detail = fmt.Sprintf("%q is a directory", path)
	default:
		check.Available = true
	}
	return check
}
