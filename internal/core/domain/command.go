package domain

import "strings"

// Command is a single external process invocation.
type Command struct {
	// Name is the executable to run, resolved through PATH.
	Name string

	// Args are passed to the executable verbatim.
	Args []string

	// Interactive connects the caller's stdin to the process so that prompts
	// (sudo password, package manager confirmation) can be answered.
	Interactive bool
}

// Argv returns the full argument vector, executable first.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// String renders the command the way it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// ProcessResult is the outcome of a command that was successfully launched.
type ProcessResult struct {
	// Success is true when the process exited with status zero.
	Success bool

	// ExitCode is the process exit status, or -1 if it was terminated by a signal.
	ExitCode int

	// Stdout holds everything the process wrote to standard output.
	Stdout []byte

	// Stderr holds everything the process wrote to standard error.
	Stderr []byte
}
