package domain

import "errors"

// Phase is one stage of the installation pipeline.
type Phase int

const (
	// PhaseCheckDependencies probes for the required executables.
	PhaseCheckDependencies Phase = iota
	// PhaseDetectPackageManager looks for apt, dnf or yum.
	PhaseDetectPackageManager
	// PhaseInstallDependencies installs missing executables through the package manager.
	PhaseInstallDependencies
	// PhaseClone fetches the extension sources.
	PhaseClone
	// PhaseConfigure prepares the build directory with meson.
	PhaseConfigure
	// PhaseBuild compiles and installs the extension with ninja.
	PhaseBuild
	// PhaseEnable activates the installed extension.
	PhaseEnable
)

// ExitCodeFailure is the exit status for errors that do not belong to a phase.
const ExitCodeFailure = 1

var phaseNames = map[Phase]string{
	PhaseCheckDependencies:    "check-dependencies",
	PhaseDetectPackageManager: "detect-package-manager",
	PhaseInstallDependencies:  "install-dependencies",
	PhaseClone:                "clone",
	PhaseConfigure:            "configure",
	PhaseBuild:                "build",
	PhaseEnable:               "enable",
}

// String returns the phase name used in logs and telemetry.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// FailureMessage is the line printed before the captured output of a failed phase.
func (p Phase) FailureMessage() string {
	switch p {
	case PhaseInstallDependencies:
		return "Failed to install dependencies."
	case PhaseClone:
		return "Failed to clone the repository:"
	case PhaseConfigure:
		return "Failed to run meson:"
	case PhaseBuild:
		return "Failed to run ninja:"
	case PhaseEnable:
		return "Failed to enable the extension:"
	default:
		return ""
	}
}

// SuccessMessage is the line printed once the phase completes.
func (p Phase) SuccessMessage() string {
	switch p {
	case PhaseInstallDependencies:
		return "Dependencies installed successfully."
	case PhaseClone:
		return "Repository cloned successfully."
	case PhaseConfigure:
		return "Build configured successfully."
	case PhaseBuild:
		return "Extension built and installed successfully."
	case PhaseEnable:
		return "Extension installed and enabled successfully!"
	default:
		return ""
	}
}

// Err returns the sentinel error identifying a failure of this phase.
// Probing phases never fail and return nil.
func (p Phase) Err() error {
	switch p {
	case PhaseInstallDependencies:
		return ErrInstallFailed
	case PhaseClone:
		return ErrCloneFailed
	case PhaseConfigure:
		return ErrConfigureFailed
	case PhaseBuild:
		return ErrBuildFailed
	case PhaseEnable:
		return ErrEnableFailed
	default:
		return nil
	}
}

// ExitCode returns the process exit status reported when this phase fails.
func (p Phase) ExitCode() int {
	switch p {
	case PhaseInstallDependencies:
		return 3
	case PhaseClone:
		return 4
	case PhaseConfigure:
		return 5
	case PhaseBuild:
		return 6
	case PhaseEnable:
		return 7
	default:
		return ExitCodeFailure
	}
}

// ExitCodeFor maps an error returned by the installer to a process exit status.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	for p := PhaseInstallDependencies; p <= PhaseEnable; p++ {
		if errors.Is(err, p.Err()) {
			return p.ExitCode()
		}
	}
	return ExitCodeFailure
}

// Outcome describes how a run that returned without error ended.
type Outcome int

const (
	// OutcomeInstalled means the extension was built, installed and enabled.
	OutcomeInstalled Outcome = iota
	// OutcomeManualInstallRequired means dependencies were missing and no supported
	// package manager was found; the user has to install them by hand.
	OutcomeManualInstallRequired
)
