package installer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/appindicator/internal/adapters/telemetry"
	"go.trai.ch/appindicator/internal/core/domain"
	"go.trai.ch/appindicator/internal/core/ports"
	"go.trai.ch/appindicator/internal/core/ports/mocks"
	"go.trai.ch/appindicator/internal/engine/installer"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// outcome is the scripted behavior of one command in a fakeHost.
type outcome struct {
	res domain.ProcessResult
	err error
}

var (
	ok          = outcome{res: domain.ProcessResult{Success: true}}
	exitNonZero = outcome{res: domain.ProcessResult{ExitCode: 1}}
	notFound    = outcome{err: errors.Join(domain.ErrLaunchFailed, errors.New("executable file not found in $PATH"))}
)

// fakeHost scripts command outcomes by their shell rendering and records every call.
// Commands without a script succeed.
type fakeHost struct {
	script map[string]outcome
	calls  []string
}

func (h *fakeHost) run(_ context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	h.calls = append(h.calls, cmd.String())
	if o, found := h.script[cmd.String()]; found {
		return o.res, o.err
	}
	return ok.res, ok.err
}

func testRecipe() *domain.Recipe {
	return &domain.Recipe{
		RepositoryURL: "https://github.com/ubuntu/gnome-shell-extension-appindicator.git",
		SourceDir:     "gnome-shell-extension-appindicator",
		BuildDir:      "/tmp/g-s-appindicators-build",
		ExtensionUUID: "appindicatorsupport@rgcjonas.gmail.com",
		Dependencies: []domain.Dependency{
			{Executable: "git", ProbeArgs: []string{"--version"}},
			{Executable: "meson", ProbeArgs: []string{"--version"}},
			{Executable: "ninja-build", ProbeArgs: []string{"--version"}},
			{Executable: "gnome-extensions", ProbeArgs: []string{"--version"}},
		},
	}
}

var (
	probeCalls = []string{
		"git --version",
		"meson --version",
		"ninja-build --version",
		"gnome-extensions --version",
	}
	buildCalls = []string{
		"git clone https://github.com/ubuntu/gnome-shell-extension-appindicator.git",
		"meson gnome-shell-extension-appindicator /tmp/g-s-appindicators-build",
		"ninja -C /tmp/g-s-appindicators-build install",
		"gnome-extensions enable appindicatorsupport@rgcjonas.gmail.com",
	}
)

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

type harness struct {
	host   *fakeHost
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	inst   *installer.Installer
}

func newHarness(t *testing.T, script map[string]outcome) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	host := &fakeHost{script: script}
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(host.run).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	h := &harness{
		host:   host,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.inst = installer.New(runner, log, telemetry.NewNoOp()).WithOutput(h.stdout, h.stderr)
	return h
}

func TestRun_AllDependenciesPresent(t *testing.T) {
	h := newHarness(t, nil)

	outcome, err := h.inst.Run(context.Background(), testRecipe())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeInstalled, outcome)

	if diff := cmp.Diff(concat(probeCalls, buildCalls), h.host.calls); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	want := "Repository cloned successfully.\n" +
		"Build configured successfully.\n" +
		"Extension built and installed successfully.\n" +
		"Extension installed and enabled successfully!\n"
	assert.Equal(t, want, h.stdout.String())
	assert.Empty(t, h.stderr.String())
}

func TestRun_MissingDependencyInstalledWithApt(t *testing.T) {
	h := newHarness(t, map[string]outcome{
		"ninja-build --version": notFound,
	})

	outcome, err := h.inst.Run(context.Background(), testRecipe())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeInstalled, outcome)

	want := concat(probeCalls, []string{"apt -v", "sudo apt install ninja-build"}, buildCalls)
	if diff := cmp.Diff(want, h.host.calls); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, h.stdout.String(), "Missing dependencies: [\"ninja-build\"]\n"+
		"Installing missing dependencies...\n"+
		"Dependencies installed successfully.\n"+
		"Repository cloned successfully.\n")
	assert.Contains(t, h.stdout.String(), "Extension installed and enabled successfully!\n")
}

func TestRun_InstallCommandKeepsDeclarationOrder(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		install string
	}{
		{"single", []string{"meson"}, "sudo apt install meson"},
		{"first and last", []string{"gnome-extensions", "git"}, "sudo apt install git gnome-extensions"},
		{"all", []string{"ninja-build", "git", "gnome-extensions", "meson"}, "sudo apt install git meson ninja-build gnome-extensions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := map[string]outcome{}
			for _, name := range tt.missing {
				script[name+" --version"] = exitNonZero
			}
			h := newHarness(t, script)

			_, err := h.inst.Run(context.Background(), testRecipe())
			require.NoError(t, err)

			assert.Contains(t, h.host.calls, tt.install)
			for _, call := range h.host.calls {
				if call != tt.install {
					assert.NotContains(t, call, "install ", "unexpected install command %q", call)
				}
			}
		})
	}
}

func TestRun_AllPresentSkipsInstaller(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.inst.Run(context.Background(), testRecipe())
	require.NoError(t, err)

	for _, call := range h.host.calls {
		assert.NotContains(t, []string{"apt -v", "dnf -v", "yum -v"}, call)
		assert.NotContains(t, call, "sudo")
	}
	assert.NotContains(t, h.stdout.String(), "Missing dependencies")
}

func TestDetectPackageManager(t *testing.T) {
	tests := []struct {
		name   string
		script map[string]outcome
		want   domain.PackageManager
		calls  []string
	}{
		{
			name:  "apt preferred over dnf",
			want:  domain.PackageManagerAPT,
			calls: []string{"apt -v"},
		},
		{
			name:   "dnf when apt missing",
			script: map[string]outcome{"apt -v": notFound},
			want:   domain.PackageManagerDNF,
			calls:  []string{"apt -v", "dnf -v"},
		},
		{
			name:   "yum last",
			script: map[string]outcome{"apt -v": notFound, "dnf -v": notFound},
			want:   domain.PackageManagerYUM,
			calls:  []string{"apt -v", "dnf -v", "yum -v"},
		},
		{
			name:   "non-zero exit still counts as present",
			script: map[string]outcome{"apt -v": exitNonZero},
			want:   domain.PackageManagerAPT,
			calls:  []string{"apt -v"},
		},
		{
			name:   "none launchable",
			script: map[string]outcome{"apt -v": notFound, "dnf -v": notFound, "yum -v": notFound},
			want:   domain.PackageManagerUnknown,
			calls:  []string{"apt -v", "dnf -v", "yum -v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.script)

			got := h.inst.DetectPackageManager(context.Background())
			assert.Equal(t, tt.want, got)
			if diff := cmp.Diff(tt.calls, h.host.calls); diff != "" {
				t.Errorf("probes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckDependencies(t *testing.T) {
	h := newHarness(t, map[string]outcome{
		"meson --version":            notFound,
		"gnome-extensions --version": exitNonZero,
	})

	missing := h.inst.CheckDependencies(context.Background(), testRecipe().Dependencies)
	if diff := cmp.Diff([]string{"meson", "gnome-extensions"}, missing); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, h.stdout.String())
}

func TestRun_UnsupportedPackageManager(t *testing.T) {
	h := newHarness(t, map[string]outcome{
		"git --version": notFound,
		"apt -v":        notFound,
		"dnf -v":        notFound,
		"yum -v":        notFound,
	})

	outcome, err := h.inst.Run(context.Background(), testRecipe())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeManualInstallRequired, outcome)

	want := concat(probeCalls, []string{"apt -v", "dnf -v", "yum -v"})
	if diff := cmp.Diff(want, h.host.calls); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "Missing dependencies: [\"git\"]\n"+
		"Installing missing dependencies...\n"+
		"Unsupported package manager. Please install the required dependencies manually.\n",
		h.stdout.String())
}

func TestRun_InstallFailure(t *testing.T) {
	h := newHarness(t, map[string]outcome{
		"meson --version": exitNonZero,
		"sudo apt install meson": {res: domain.ProcessResult{
			ExitCode: 100,
			Stdout:   []byte("Reading package lists...\n"),
			Stderr:   []byte("E: Unable to locate package meson\n"),
		}},
	})

	_, err := h.inst.Run(context.Background(), testRecipe())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInstallFailed)
	assert.Equal(t, 3, domain.ExitCodeFor(err))

	assert.Equal(t, "sudo apt install meson", h.host.calls[len(h.host.calls)-1])
	assert.Contains(t, h.stdout.String(), "Failed to install dependencies.\nReading package lists...\n")
	assert.Equal(t, "E: Unable to locate package meson\n", h.stderr.String())
}

func TestRun_StepFailureHaltsPipeline(t *testing.T) {
	tests := []struct {
		name     string
		failing  int
		label    string
		sentinel error
		exitCode int
	}{
		{"clone", 0, "Failed to clone the repository:", domain.ErrCloneFailed, 4},
		{"configure", 1, "Failed to run meson:", domain.ErrConfigureFailed, 5},
		{"build", 2, "Failed to run ninja:", domain.ErrBuildFailed, 6},
		{"enable", 3, "Failed to enable the extension:", domain.ErrEnableFailed, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, map[string]outcome{
				buildCalls[tt.failing]: {res: domain.ProcessResult{
					ExitCode: 128,
					Stdout:   []byte("partial output\n"),
					Stderr:   []byte("fatal: something went wrong\n"),
				}},
			})

			_, err := h.inst.Run(context.Background(), testRecipe())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.exitCode, domain.ExitCodeFor(err))

			want := concat(probeCalls, buildCalls[:tt.failing+1])
			if diff := cmp.Diff(want, h.host.calls); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}

			assert.Contains(t, h.stdout.String(), tt.label+"\npartial output\n")
			assert.NotContains(t, h.stdout.String(), "Extension installed and enabled successfully!")
			assert.Equal(t, "fatal: something went wrong\n", h.stderr.String())
		})
	}
}

func TestRun_CloneTargetExists(t *testing.T) {
	h := newHarness(t, map[string]outcome{
		buildCalls[0]: {res: domain.ProcessResult{
			ExitCode: 128,
			Stderr:   []byte("fatal: destination path 'gnome-shell-extension-appindicator' already exists and is not an empty directory.\n"),
		}},
	})

	_, err := h.inst.Run(context.Background(), testRecipe())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCloneFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 128, zErr.Metadata()["exit_code"])
	assert.Equal(t, buildCalls[0], zErr.Metadata()["command"])

	assert.Equal(t, "Failed to clone the repository:\n", h.stdout.String())
	assert.Contains(t, h.stderr.String(), "already exists")
	assert.Equal(t, concat(probeCalls, buildCalls[:1]), h.host.calls)
}

func TestRun_LaunchFailureIsReported(t *testing.T) {
	h := newHarness(t, map[string]outcome{
		buildCalls[2]: notFound,
	})

	_, err := h.inst.Run(context.Background(), testRecipe())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorIs(t, err, domain.ErrLaunchFailed)

	assert.Contains(t, h.stdout.String(), "Failed to run ninja:\n")
	assert.Contains(t, h.stderr.String(), "executable file not found")
	assert.Equal(t, concat(probeCalls, buildCalls[:3]), h.host.calls)
}

func TestRun_RecordsVertexPerPhase(t *testing.T) {
	ctrl := gomock.NewController(t)

	host := &fakeHost{}
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(host.run).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(nil).Times(5)

	tel := mocks.NewMockTelemetry(ctrl)
	var phases []string
	tel.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string) (context.Context, ports.Vertex) {
			phases = append(phases, name)
			return ctx, vertex
		}).Times(5)

	inst := installer.New(runner, log, tel).WithOutput(&bytes.Buffer{}, &bytes.Buffer{})
	_, err := inst.Run(context.Background(), testRecipe())
	require.NoError(t, err)

	want := []string{"check-dependencies", "clone", "configure", "build", "enable"}
	if diff := cmp.Diff(want, phases); diff != "" {
		t.Errorf("phases mismatch (-want +got):\n%s", diff)
	}
}
