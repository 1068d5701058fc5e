// Package seq implements sequential Gaussian/indicator simulation: a path
// visits every domain index once, and at each step a local Kriging fit
// over already-written neighbors (or a prior fallback, for under-informed
// neighborhoods) produces the next draw.
package seq
