package domain

import (
	"fmt"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Executables driven by the build pipeline.
const (
	ToolGit             = "git"
	ToolMeson           = "meson"
	ToolNinja           = "ninja"
	ToolGnomeExtensions = "gnome-extensions"
)

// Recipe holds the fixed identifiers of one extension installation.
type Recipe struct {
	// RepositoryURL is cloned into the current working directory.
	RepositoryURL string

	// SourceDir is the directory git creates for the clone.
	SourceDir string

	// BuildDir is where meson writes the build tree.
	BuildDir string

	// ExtensionUUID is the id passed to gnome-extensions.
	ExtensionUUID string

	// Dependencies are probed in order; missing ones are installed in the same order.
	Dependencies []Dependency
}

// SourceDirFromURL returns the directory name git clone derives from a repository URL.
func SourceDirFromURL(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	return path.Base(trimmed)
}

// Validate checks that every field is set and that dependency names are unique.
func (r *Recipe) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"repository_url", r.RepositoryURL},
		{"source_dir", r.SourceDir},
		{"build_dir", r.BuildDir},
		{"extension_uuid", r.ExtensionUUID},
	}
	for _, req := range required {
		if strings.TrimSpace(req.value) == "" {
			return zerr.With(zerr.Wrap(ErrInvalidRecipe, "required field is empty"), "field", req.field)
		}
	}

	if len(r.Dependencies) == 0 {
		return zerr.Wrap(ErrInvalidRecipe, "no dependencies declared")
	}

	seen := make(map[string]bool, len(r.Dependencies))
	for i, dep := range r.Dependencies {
		if strings.TrimSpace(dep.Executable) == "" {
			return zerr.With(zerr.Wrap(ErrInvalidRecipe, "dependency has no executable"), "index", i)
		}
		if seen[dep.Executable] {
			return zerr.With(zerr.Wrap(ErrInvalidRecipe, "duplicate dependency"), "executable", dep.Executable)
		}
		seen[dep.Executable] = true
	}

	return nil
}

// CloneCommand returns "git clone <url>".
func (r *Recipe) CloneCommand() Command {
	return Command{Name: ToolGit, Args: []string{"clone", r.RepositoryURL}}
}

// ConfigureCommand returns "meson <source> <build>".
func (r *Recipe) ConfigureCommand() Command {
	return Command{Name: ToolMeson, Args: []string{r.SourceDir, r.BuildDir}}
}

// BuildCommand returns "ninja -C <build> install".
func (r *Recipe) BuildCommand() Command {
	return Command{Name: ToolNinja, Args: []string{"-C", r.BuildDir, "install"}}
}

// EnableCommand returns "gnome-extensions enable <uuid>".
func (r *Recipe) EnableCommand() Command {
	return Command{Name: ToolGnomeExtensions, Args: []string{"enable", r.ExtensionUUID}}
}

// Fingerprint returns a stable hash of every command the recipe can produce.
// Two binaries with the same fingerprint perform the same installation.
func (r *Recipe) Fingerprint() string {
	hasher := xxhash.New()

	writeCommand := func(c Command) {
		for _, arg := range c.Argv() {
			_, _ = hasher.WriteString(arg)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}

	for _, dep := range r.Dependencies {
		writeCommand(dep.Probe())
	}
	writeCommand(r.CloneCommand())
	writeCommand(r.ConfigureCommand())
	writeCommand(r.BuildCommand())
	writeCommand(r.EnableCommand())

	return fmt.Sprintf("%016x", hasher.Sum64())
}
