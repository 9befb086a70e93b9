// Package config loads, normalizes, and validates redline configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// REDLINE_API_KEY. The Config type centralizes every knob the CLI needs,
// so data/report directories and LLM credentials are discovered in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
