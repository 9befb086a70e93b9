// Package llm wraps an OpenRouter-compatible chat completions API.
//
// The client retries transient failures with exponential backoff, honours
// Retry-After hints, and normalizes the many response shapes providers
// emit (message, delta, legacy text). Rewrite output is returned as plain
// text with code fences stripped.
package llm
