// Package logging provides structured logging for zkconf on top of Go's
// standard slog package.
//
// All log entries carry a level, a subsystem identifier, the message, and
// optional error information. Output goes to a caller-supplied writer
// (stderr in the CLI) so document content on stdout is never polluted.
//
// Usage:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("config", "Loaded settings from %s", path)
//	logging.Debug("store", "Connecting to %v", servers)
//	logging.Error("store", err, "Write failed")
//
// Subsystems in use: "config" (settings loading), "store" (ZooKeeper
// operations), "zk" (raw client messages), "editor" (external editor
// invocation).
package logging
