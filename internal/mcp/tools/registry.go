package tools

import (
	"fmt"

	"github.com/honeycarbs/github-mcp/internal/catalog"
)

// Option configures which tools are registered
type Option func(*registry) error

type registry struct {
	catalog  *catalog.Catalog
	dispatch *catalog.Dispatch
}

// add advertises a tool and binds its handler
func (r *registry) add(name, description string, schema catalog.Schema, h catalog.Handler) error {
	if err := r.catalog.Register(name, description, schema); err != nil {
		return fmt.Errorf("register %s: %w", name, err)
	}
	if err := r.dispatch.Bind(name, h); err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	return nil
}

// Register applies the provided tool options
func Register(cat *catalog.Catalog, disp *catalog.Dispatch, opts ...Option) error {
	reg := &registry{catalog: cat, dispatch: disp}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(reg); err != nil {
			return err
		}
	}
	return nil
}
