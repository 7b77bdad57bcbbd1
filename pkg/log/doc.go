// Package log provides structured diagnostics for the IIO description
// codec.
//
// This package defines the Logger interface and Event type the builder
// and its collaborators report through: forward-compatibility notices
// (unknown elements, unparsable version numbers), build traces and
// errors. It is separate from operational logging (slog), but events
// can be forwarded to slog via SlogAdapter.
//
// # Basic Usage
//
// Hosts configure diagnostics by providing a Logger implementation:
//
//	// For development: log to console via slog
//	params.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For analysis: write a binary event trace
//	params.Logger, _ = log.NewFileLogger("/var/log/iio/build.ilog")
//
//	// Both: use MultiLogger
//	params.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys,
// read back with Reader, optionally filtered by severity, component or
// build ID.
package log
