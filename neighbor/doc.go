// Package neighbor implements an immutable k-nearest / metric-ball spatial
// index over a spatial.Domain, queried with a per-call availability mask so
// that the sequential engine can restrict a search to already-simulated or
// conditioning cells without rebuilding the index.
package neighbor
