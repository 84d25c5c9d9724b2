package config

// RecipeFile represents the structure of the embedded recipe.yaml.
type RecipeFile struct {
	Version      string          `yaml:"version"`
	Repository   RepositoryDTO   `yaml:"repository"`
	Build        BuildDTO        `yaml:"build"`
	Extension    ExtensionDTO    `yaml:"extension"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// RepositoryDTO describes where the extension sources are cloned from.
type RepositoryDTO struct {
	URL string `yaml:"url"`
	// Directory defaults to the name git derives from URL.
	Directory string `yaml:"directory"`
}

// BuildDTO describes the meson build tree.
type BuildDTO struct {
	Directory string `yaml:"directory"`
}

// ExtensionDTO identifies the GNOME Shell extension.
type ExtensionDTO struct {
	UUID string `yaml:"uuid"`
}

// DependencyDTO represents a required executable in the configuration.
type DependencyDTO struct {
	Executable string   `yaml:"executable"`
	Probe      []string `yaml:"probe"`
}
