// Package utils provides small helpers shared across the application:
// filename sanitising, atomic file writes, line-oriented input files
// and content type checks used by the request logger.
package utils
