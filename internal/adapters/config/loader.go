// Package config provides the install recipe and settings loaders.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"io"

	"go.trai.ch/appindicator/internal/core/domain"
	"go.trai.ch/appindicator/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only recipe schema version understood by the loader.
const supportedVersion = "1"

//go:embed recipe.yaml
var embeddedRecipe []byte

var _ ports.RecipeLoader = (*Loader)(nil)

// Loader implements ports.RecipeLoader by decoding a YAML document.
type Loader struct {
	data []byte
}

// NewLoader creates a Loader for the recipe compiled into the binary.
func NewLoader() *Loader {
	return &Loader{data: embeddedRecipe}
}

// NewLoaderFromBytes creates a Loader for an arbitrary recipe document.
func NewLoaderFromBytes(data []byte) *Loader {
	return &Loader{data: data}
}

// Load decodes and validates the recipe.
func (l *Loader) Load() (*domain.Recipe, error) {
	return Parse(bytes.NewReader(l.data))
}

// Parse reads a recipe document from r. Unknown fields are rejected.
func Parse(r io.Reader) (*domain.Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file RecipeFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, zerr.Wrap(domain.ErrInvalidRecipe, "recipe is empty")
		}
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidRecipe, err), "failed to parse recipe")
	}

	if file.Version != supportedVersion {
		err := zerr.Wrap(domain.ErrInvalidRecipe, "unsupported recipe version")
		return nil, zerr.With(err, "version", file.Version)
	}

	recipe := &domain.Recipe{
		RepositoryURL: file.Repository.URL,
		SourceDir:     file.Repository.Directory,
		BuildDir:      file.Build.Directory,
		ExtensionUUID: file.Extension.UUID,
		Dependencies:  make([]domain.Dependency, 0, len(file.Dependencies)),
	}
	if recipe.SourceDir == "" && recipe.RepositoryURL != "" {
		recipe.SourceDir = domain.SourceDirFromURL(recipe.RepositoryURL)
	}

	for _, dto := range file.Dependencies {
		recipe.Dependencies = append(recipe.Dependencies, domain.Dependency{
			Executable: dto.Executable,
			ProbeArgs:  dto.Probe,
		})
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	return recipe, nil
}
