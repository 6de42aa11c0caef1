// Package standings derives competition tables from match results.
//
// Every function here is pure: inputs are never mutated and each call
// returns freshly allocated rows, so the package is safe for concurrent use.
// Malformed records (unknown team ids, missing scores, blank group labels)
// are skipped or defaulted instead of failing the whole computation.
package standings
