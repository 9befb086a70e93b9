// Package revise orchestrates one LLM rewrite of a LaTeX section file.
//
// A run locks the data directory against concurrent revisions, sends the
// section to the configured model, backs up and overwrites the source
// file, persists the revision to the store, and writes an HTML diff
// report. Dry runs skip every mutation and only produce the diff.
package revise
