// Package constants holds values shared across packages: file permissions and file extensions.
package constants
