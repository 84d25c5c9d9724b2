package ports

import "go.trai.ch/appindicator/internal/core/domain"

// RecipeLoader defines the interface for loading the install recipe.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type RecipeLoader interface {
	// Load returns a validated recipe.
	Load() (*domain.Recipe, error)
}
