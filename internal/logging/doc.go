// Package logging assembles the structured slog loggers used across fadecut.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides a no-op logger for tests. Prefer these constructors over
// hand-rolled slog setup so every component emits records with the same
// shape.
package logging
