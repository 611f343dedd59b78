// Package pkg provides shared utilities for the streambuf library.
//
// This package contains common functionality used across the buffer
// engine and the typed value layer, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for buffer conditions
//   - The closed [Status] taxonomy reported by the buffer engine
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with library-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentEngine, "outbound buffer bound", "cap", 64)
//
// # Errors
//
// Buffer conditions are defined as sentinel values and mirrored by the
// [Status] enumeration:
//
//	if errors.Is(err, pkg.ErrOverflow) {
//	    // Oldest bytes were evicted to admit the write
//	}
package pkg
