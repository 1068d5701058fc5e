// Package external defines the plug-in shape a third-party texture-
// synthesis back-end (image-quilting, Turing-pattern, stratigraphic-record,
// or any other process the core does not implement) must satisfy to appear
// alongside the primary engines behind a process.External descriptor. The
// core ships no back-ends: it only defines Backend and a Registry back-ends
// register themselves into (spec §6, "the engine only defines the plug-in
// shape").
package external
