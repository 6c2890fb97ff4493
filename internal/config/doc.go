// Package config loads, normalizes, and validates fadecut configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads the TOML settings file that drives a processing run.
// Required fields are verified here so a misconfigured run fails before any
// external process is launched.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
