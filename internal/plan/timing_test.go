package plan_test

import (
	"errors"
	"testing"

	"fadecut/internal/config"
	"fadecut/internal/plan"
)

func TestResolveTimingDefaultsToFullSpan(t *testing.T) {
	settings := &config.Settings{ClipStartTime: "none"}

	timing, err := plan.ResolveTiming(settings, 90.5)
	if err != nil {
		t.Fatalf("ResolveTiming returned error: %v", err)
	}
	if timing.ClipStart != 0.0 {
		t.Fatalf("unexpected clip start: %v", timing.ClipStart)
	}
	if timing.ClipEnd != 90.5 {
		t.Fatalf("unexpected clip end: %v", timing.ClipEnd)
	}
}

func TestResolveTimingParsesBoundariesAndFadeOutStart(t *testing.T) {
	settings := &config.Settings{ClipStartTime: "10", ClipEndTime: "80"}

	timing, err := plan.ResolveTiming(settings, 300)
	if err != nil {
		t.Fatalf("ResolveTiming returned error: %v", err)
	}
	if timing.ClipStart != 10.0 || timing.ClipEnd != 80.0 {
		t.Fatalf("unexpected boundaries: %v %v", timing.ClipStart, timing.ClipEnd)
	}
	if timing.FadeIn != 3.0 || timing.FadeOut != 3.0 {
		t.Fatalf("unexpected fades: %v %v", timing.FadeIn, timing.FadeOut)
	}
	if timing.FadeOutStart != 77.0 {
		t.Fatalf("unexpected fade-out start: %v", timing.FadeOutStart)
	}
}

func TestResolveTimingNoneIsCaseInsensitive(t *testing.T) {
	settings := &config.Settings{ClipStartTime: "None", ClipEndTime: "NONE"}

	timing, err := plan.ResolveTiming(settings, 42)
	if err != nil {
		t.Fatalf("ResolveTiming returned error: %v", err)
	}
	if timing.ClipStart != 0 || timing.ClipEnd != 42 {
		t.Fatalf("unexpected timing: %+v", timing)
	}
}

func TestResolveTimingRejectsNonNumericBoundary(t *testing.T) {
	settings := &config.Settings{ClipStartTime: "ten"}

	_, err := plan.ResolveTiming(settings, 42)
	var timingErr *plan.InvalidTimingError
	if !errors.As(err, &timingErr) {
		t.Fatalf("expected InvalidTimingError, got %v", err)
	}
	if timingErr.Field != "clip_start_time" {
		t.Fatalf("error names wrong field: %q", timingErr.Field)
	}

	settings = &config.Settings{ClipEndTime: "later"}
	_, err = plan.ResolveTiming(settings, 42)
	if !errors.As(err, &timingErr) || timingErr.Field != "clip_end_time" {
		t.Fatalf("expected clip_end_time error, got %v", err)
	}
}

func TestResolveTimingAllowsNegativeFadeOutStart(t *testing.T) {
	long := 10.0
	settings := &config.Settings{
		ClipEndTime:     "5",
		FadeOutDuration: &long,
	}

	timing, err := plan.ResolveTiming(settings, 42)
	if err != nil {
		t.Fatalf("ResolveTiming returned error: %v", err)
	}
	if timing.FadeOutStart != -5.0 {
		t.Fatalf("expected fade-out start -5, got %v", timing.FadeOutStart)
	}
}
