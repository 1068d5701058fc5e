// SPDX-License-Identifier: MIT
// Package sim: sentinel error set (spec §4.1's failure model).

package sim

import "errors"

var (
	// ErrUnsupportedMethod indicates an unknown process/method combination:
	// a method override incompatible with the process kind (e.g. an
	// IndicatorProcess with a method other than SEQ), or a process.Descriptor
	// type with no applicable engine.
	ErrUnsupportedMethod = errors.New("sim: unsupported process/method combination")

	// ErrShapeMismatch indicates an inconsistent |mean| vs variate_count(func),
	// or a domain type that does not match the process kind (a
	// *lindgren.Mesh for a GaussianProcess, a spatial.Domain for a
	// LindgrenProcess).
	ErrShapeMismatch = errors.New("sim: shape mismatch between process and domain")

	// ErrInvalidWorkerPool indicates async_mode was requested with the
	// calling (master) worker included in the worker pool.
	ErrInvalidWorkerPool = errors.New("sim: async_mode requires the calling worker be excluded from the worker pool")

	// ErrNoExternalRegistry indicates a process.External was drawn without
	// WithExternalRegistry supplying a backend registry.
	ErrNoExternalRegistry = errors.New("sim: process.External requires WithExternalRegistry")

	// ErrRealizationSkipped marks a realization slot DrawN never attempted
	// because WithFailFast had already recorded an earlier failure.
	ErrRealizationSkipped = errors.New("sim: realization skipped after an earlier fail_fast failure")
)
