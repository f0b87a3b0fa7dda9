package port

// XDGPaths provides XDG Base Directory paths.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)

	// IconCacheDir is the default directory for cached icon files.
	IconCacheDir() (string, error)
	// LogDir is the default directory for log files.
	LogDir() (string, error)
}
