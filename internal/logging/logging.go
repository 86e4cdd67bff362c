// Package logging wraps the standard log package with the level-tag
// convention used throughout
// (log.Printf with a leading "ERROR ", "WARN  ", "INFO  ", or "DEBUG "
// tag) rather than pulling in a structured logging library.
package logging

import "log"

// Errorf logs a message at ERROR level.
func Errorf(format string, args ...any) {
	log.Printf("ERROR "+format, args...)
}

// Warnf logs a message at WARN level. The two trailing spaces in the tag
// keep every level's message text aligned in the log output.
func Warnf(format string, args ...any) {
	log.Printf("WARN  "+format, args...)
}

// Infof logs a message at INFO level.
func Infof(format string, args ...any) {
	log.Printf("INFO  "+format, args...)
}

// Debugf logs a message at DEBUG level.
func Debugf(format string, args ...any) {
	log.Printf("DEBUG "+format, args...)
}
