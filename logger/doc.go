// Package logger provides structured logging for streamkit built on zerolog.
//
// Libraries receive a *Logger via options and default to Nop() when none is
// supplied, so draining a stream never logs unless the caller asked for it.
// Applications embedding streamkit can Init() the global logger once and use
// the package-level helpers.
package logger
