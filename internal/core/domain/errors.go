package domain

import "go.trai.ch/zerr"

var (
	// ErrLaunchFailed is returned when an external command cannot be started at all,
	// for example because the executable is not on PATH.
	ErrLaunchFailed = zerr.New("command could not be launched")

	// ErrUnsupportedPackageManager is returned when an install command is requested
	// from a package manager outside apt, dnf and yum.
	ErrUnsupportedPackageManager = zerr.New("unsupported package manager")

	// ErrInvalidRecipe is returned when the embedded install recipe fails validation.
	ErrInvalidRecipe = zerr.New("invalid install recipe")

	// ErrInstallFailed is returned when the package manager fails to install missing dependencies.
	ErrInstallFailed = zerr.New("dependency installation failed")

	// ErrCloneFailed is returned when cloning the extension repository fails.
	ErrCloneFailed = zerr.New("repository clone failed")

	// ErrConfigureFailed is returned when meson fails to configure the build directory.
	ErrConfigureFailed = zerr.New("build configuration failed")

	// ErrBuildFailed is returned when ninja fails to compile or install the extension.
	ErrBuildFailed = zerr.New("build failed")

	// ErrEnableFailed is returned when gnome-extensions fails to enable the extension.
	ErrEnableFailed = zerr.New("extension enable failed")
)
