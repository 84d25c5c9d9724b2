package domain

// Dependency is an external executable the installer needs on the host.
type Dependency struct {
	// Executable is the command name probed on PATH. It doubles as the package
	// name handed to the package manager when the executable is missing.
	Executable string

	// ProbeArgs are the arguments used to check that the executable works (e.g. "--version").
	ProbeArgs []string
}

// Probe returns the command used to check whether the dependency is usable.
func (d Dependency) Probe() Command {
	return Command{Name: d.Executable, Args: d.ProbeArgs}
}
