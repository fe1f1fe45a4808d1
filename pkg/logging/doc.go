// Package logging provides leveled diagnostic logging for bluepods, built on
// Go's standard slog package.
//
// All log entries include a timestamp, a level, a subsystem identifier and a
// formatted message. Logging goes to stderr so it never mixes with the tool's
// user-facing output; the default level is Warn, raised to Debug by the
// --debug flag.
//
// # Usage
//
//	import "github.com/cesarferreira/bluepods/pkg/logging"
//
//	logging.Init(logging.LevelDebug, os.Stderr)
//
//	logging.Debug("bluetooth", "running %s --paired", tool)
//	logging.Warn("bluetooth", "audio output query failed: %v", err)
//	logging.Error("cmd", err, "command failed")
//
// # Subsystem Organization
//
//   - **bluetooth**: subprocess invocations and output parsing
//   - **cmd**: command dispatch
//
// Level filtering happens at the slog handler, so filtered-out messages cost
// no allocation.
package logging
