package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/appindicator/internal/adapters/logger"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/appindicator/internal/adapters/shell"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/appindicator/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/appindicator/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, log, tel), nil
		},
	})
}
