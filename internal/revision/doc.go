// Package revision persists rewrite history and pre-revision file backups.
//
// Every LLM rewrite is stored as a Revision row in a SQLite database under
// the configured data directory, keyed by UUID, together with the exact
// original and revised text so any diff can be regenerated later. Backups
// are plain file copies kept next to the database with a per-source
// retention limit.
package revision
