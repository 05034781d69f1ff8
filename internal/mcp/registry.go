package mcp

import (
	"fmt"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/mcp/tools"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

// Toolset pairs the advertised catalog with its handlers
type Toolset struct {
	Catalog  *catalog.Catalog
	Dispatch *catalog.Dispatch
}

// NewToolset registers every GitHub tool and freezes both tables
func NewToolset(client tools.GitHubClient, logger *logging.Logger) (*Toolset, error) {
	cat := catalog.New()
	disp := catalog.NewDispatch()

	if err := tools.RegisterAll(cat, disp, client, logger); err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}
	cat.Freeze()
	disp.Freeze()

	logger.Info("tools registered", "count", cat.Len(), "names", disp.Names())
	return &Toolset{Catalog: cat, Dispatch: disp}, nil
}
