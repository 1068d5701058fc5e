// Package binding implements data binding (init): producing a realization
// buffer and mask of known cells from a user-supplied data set bound onto
// the simulation domain. Two strategies are provided: Nearest (snap each
// data row onto its nearest domain element) and Explicit (caller-supplied
// index correspondence).
package binding
