// Testing utilities for structured logging. These helpers capture log output
// in memory so tests can verify what was emitted without touching stderr.
package log

import (
	"bytes"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a zerolog-backed logger that writes JSON records to
// an in-memory buffer, filtered at the given minimum level.
//
// Example:
//
//	logger, buf := log.NewTestLogger(log.LevelDebug)
//	logger.Info("test message", "key", "value")
//	// inspect buf.String()
func NewTestLogger(level Level) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	zl := zerolog.New(buf).Level(toZerologLevel(level))
	return NewZerologLogger(zl), buf
}
