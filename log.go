package astdump

import (
	"log"
	"os"
)

const logNS = "astdump"

// LogFn is the signature of the debug log function.
type LogFn func(format string, args ...interface{})

// Tracing is enabled by the ASTDUMPDEBUG environment variable and
// goes to stderr, never into the returned string.
var logDump = NewLog(logNS, os.Getenv("ASTDUMPDEBUG") != "")

// NewLog creates a debug logger for the given namespace.
func NewLog(ns string, enable bool) LogFn {
	logger := log.New(os.Stderr, "", 0)

	return func(format string, args ...interface{}) {
		if enable {
			logger.Printf("["+ns+"] "+format, args...)
		}
	}
}
