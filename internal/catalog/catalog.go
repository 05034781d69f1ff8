// Package catalog holds the tool registry: descriptors advertised to callers,
// the dispatch table that executes them, and the error kinds surfaced at the
// call boundary.
//
// A Catalog is filled once during startup and then frozen. After Freeze it is
// only read, so it is safe to share between concurrent requests without locks.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// Descriptor describes one advertised tool
type Descriptor struct {
	Name        string
	Description string
	Schema      Schema

	resolved *jsonschema.Resolved
}

// MarshalJSON emits {name, description, parameters} with parameters as JSON Schema.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string             `json:"name"`
		Description string             `json:"description"`
		Parameters  *jsonschema.Schema `json:"parameters"`
	}{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  d.Schema.JSONSchema(),
	})
}

// Validate checks params against the declared schema.
func (d Descriptor) Validate(params map[string]any) error {
	if err := d.Schema.validate(d.resolved, params); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Tool = d.Name
		}
		return err
	}
	return nil
}

// Catalog maps tool names to descriptors
type Catalog struct {
	tools  map[string]Descriptor
	frozen bool
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{tools: make(map[string]Descriptor)}
}

// Register inserts or replaces the descriptor for name.
func (c *Catalog) Register(name, description string, schema Schema) error {
	if c.frozen {
		return fmt.Errorf("catalog: register %q after freeze", name)
	}
	if name == "" {
		return fmt.Errorf("catalog: tool name cannot be empty")
	}

	resolved, err := schema.resolve()
	if err != nil {
		return fmt.Errorf("catalog: resolve schema for %q: %w", name, err)
	}

	c.tools[name] = Descriptor{
		Name:        name,
		Description: description,
		Schema:      schema,
		resolved:    resolved,
	}
	return nil
}

// Freeze ends the registration phase
func (c *Catalog) Freeze() {
	c.frozen = true
}

// Lookup returns the descriptor registered under name.
func (c *Catalog) Lookup(name string) (Descriptor, bool) {
	d, ok := c.tools[name]
	return d, ok
}

// List returns every descriptor ordered by name.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, 0, len(c.tools))
	for _, d := range c.tools {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports how many tools are registered.
func (c *Catalog) Len() int {
	return len(c.tools)
}
