package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/appindicator/internal/core/domain"
	"go.trai.ch/appindicator/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the recipe loader Graft node.
	NodeID graft.ID = "adapter.recipe_loader"
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.RecipeLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RecipeLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Settings, error) {
			return LoadSettings(), nil
		},
	})
}
