package domain

// Settings holds ambient runtime settings read from the environment.
type Settings struct {
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string
}
