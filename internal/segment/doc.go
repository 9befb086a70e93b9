// Package segment splits prose into sentence units for diffing.
//
// Splitting is lossless: concatenating the returned sentences reproduces
// the input byte for byte, because each sentence carries its trailing
// whitespace (including paragraph breaks). The splitter is a pure function
// over its input and is guarded against common false breaks in academic
// text such as abbreviations (e.g., Fig., et al.) and ellipses.
//
// LaTeX source passes through untouched; commands, math, and comments are
// treated as ordinary text.
package segment
