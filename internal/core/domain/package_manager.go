package domain

import "go.trai.ch/zerr"

// PackageManager identifies the system package manager used to install missing dependencies.
type PackageManager string

const (
	// PackageManagerAPT is the Debian/Ubuntu package manager.
	PackageManagerAPT PackageManager = "apt"
	// PackageManagerDNF is the Fedora/RHEL 8+ package manager.
	PackageManagerDNF PackageManager = "dnf"
	// PackageManagerYUM is the legacy RHEL/CentOS package manager.
	PackageManagerYUM PackageManager = "yum"
	// PackageManagerUnknown means none of the supported managers could be launched.
	PackageManagerUnknown PackageManager = "unknown"
)

// privilegeCommand elevates the install command.
const privilegeCommand = "sudo"

// PackageManagers lists the supported managers in detection priority order.
var PackageManagers = []PackageManager{
	PackageManagerAPT,
	PackageManagerDNF,
	PackageManagerYUM,
}

// String returns the manager's executable name.
func (m PackageManager) String() string {
	return string(m)
}

// Supported reports whether installs can be delegated to m.
func (m PackageManager) Supported() bool {
	switch m {
	case PackageManagerAPT, PackageManagerDNF, PackageManagerYUM:
		return true
	default:
		return false
	}
}

// Probe returns the command used to check whether m is present on the host.
func (m PackageManager) Probe() Command {
	return Command{Name: string(m), Args: []string{"-v"}}
}

// InstallCommand builds "sudo <manager> install <packages...>", keeping the package order.
func (m PackageManager) InstallCommand(packages []string) (Command, error) {
	if !m.Supported() {
		err := zerr.Wrap(ErrUnsupportedPackageManager, "cannot build install command")
		return Command{}, zerr.With(err, "package_manager", string(m))
	}

	args := make([]string, 0, len(packages)+2)
	args = append(args, string(m), "install")
	args = append(args, packages...)

	return Command{
		Name:        privilegeCommand,
		Args:        args,
		Interactive: true,
	}, nil
}
