// Package textutil provides text processing utilities for fingerprinting,
// similarity, and filename sanitization.
//
// The primary use cases are:
//   - Creating token-based fingerprints from section text for comparison
//   - Computing cosine similarity to gauge how much of a section a
//     revision actually changed
//   - Sanitizing backup and report filenames for safe filesystem use
//
// Fingerprints use term frequency vectors normalized for efficient
// comparison. Tokenization lowercases text, splits on non-alphanumeric
// characters, and filters tokens shorter than 3 characters.
package textutil
