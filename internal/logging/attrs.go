package logging

import (
	"log/slog"
	"time"
)

// Common attribute keys for consistent logging across the codebase.
const (
	KeyPlatform   = "platform"
	KeyEntityType = "entity_type"
	KeyURL        = "url"
	KeyScheme     = "scheme"
	KeyHost       = "host"
	KeyPath       = "path"
	KeyOperation  = "operation"
	KeyFormat     = "format"
	KeyCount      = "count"
	KeyError      = "error"
	KeyDuration   = "duration"
)

// Platform returns a slog attribute for platform logging.
func Platform[T ~string](p T) slog.Attr {
	return slog.String(KeyPlatform, string(p))
}

// EntityType returns a slog attribute for entity type logging.
func EntityType[T ~string](e T) slog.Attr {
	return slog.String(KeyEntityType, string(e))
}

// URL returns a slog attribute for the URL being processed.
func URL(u string) slog.Attr {
	return slog.String(KeyURL, u)
}

// Scheme returns a slog attribute for a URL scheme.
func Scheme(s string) slog.Attr {
	return slog.String(KeyScheme, s)
}

// Host returns a slog attribute for a URL hostname.
func Host(h string) slog.Attr {
	return slog.String(KeyHost, h)
}

// Path returns a slog attribute for file path logging.
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Operation returns a slog attribute for operation logging.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Format returns a slog attribute for an output format.
func Format(f string) slog.Attr {
	return slog.String(KeyFormat, f)
}

// Err returns a slog attribute for error logging.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// Count returns a slog attribute for item counts.
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Duration returns a slog attribute for elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Timer logs the start of op at debug level and returns a func that logs
// its completion with the elapsed time. Use as: defer logging.Timer("op")()
func Timer(op string) func() {
	start := time.Now()
	Debug("starting", Operation(op))
	return func() {
		Debug("completed", Operation(op), Duration(time.Since(start)))
	}
}
