// Package cli holds the interactive glue shared by zkconf commands:
// confirmation prompts and external editor invocation. Both are written
// against io.Reader/io.Writer so commands stay testable without a terminal.
package cli
