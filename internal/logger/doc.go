// Package logger wraps a global zap sugared logger behind context-first helpers.
// The level is held in a zap.AtomicLevel so commands can raise or lower verbosity
// after the configuration has been read.
package logger
