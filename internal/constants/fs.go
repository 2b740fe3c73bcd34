package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// PrivateFilePermissions is used for files holding credentials, such as the session token cache: (rw-------).
	PrivateFilePermissions os.FileMode = 0o600

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)

// File extension constants.
const (
	ExtensionMP3  = ".mp3"
	ExtensionFLAC = ".flac"
	ExtensionLRC  = ".lrc"
	ExtensionTXT  = ".txt"
	ExtensionJSON = ".json"
	ExtensionYAML = ".yaml"
)
