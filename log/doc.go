// Package log provides a concurrency-safe structured logging facade over
// log/slog with a Trace level below Debug, functional configuration
// options, and an optional colorized pretty handler for terminal output.
//
// The zero value of [Logger] is valid and discards all messages, so
// libraries can accept a Logger without forcing callers to configure one.
//
// A package-level default logger writes to standard output and is
// reconfigured with [Config]; the package-level logging functions
// ([Trace], [Debug], [Info], [Warn], [Error] and their Context variants)
// delegate to it.
package log
