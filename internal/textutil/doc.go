// Package textutil provides text processing utilities for name comparison and
// filename sanitization.
//
// The primary use cases are:
//   - Normalizing names for comparison (case, diacritics, punctuation)
//   - Computing Levenshtein edit distance between normalized strings
//   - Scoring string similarity on a 0..1 scale for duplicate detection
//   - Sanitizing filenames and path segments for safe filesystem use
//
// Normalization lowercases text, decomposes it (NFD) so accents become
// separate combining marks, drops those marks, and keeps only letters and
// digits. "Élodie-Anne" and "elodie anne" normalize to the same key.
package textutil
