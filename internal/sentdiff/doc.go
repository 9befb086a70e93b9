// Package sentdiff aligns two sentence sequences into an edit script.
//
// Alignment runs a longest-common-subsequence computation over exact
// sentence equality and classifies every sentence as unchanged, added, or
// removed. The script is minimal and deterministic: ties in the dynamic
// programming table always resolve the same way, so identical inputs
// produce byte-identical output. Filtering the script to unchanged+removed
// reconstructs the original sequence; unchanged+added reconstructs the
// revised one.
package sentdiff
