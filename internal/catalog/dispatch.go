package catalog

import (
	"context"
	"fmt"
	"sort"
)

// Handler executes one tool call
type Handler func(ctx context.Context, args Args) (Result, error)

// Dispatch stores tool handlers by name
type Dispatch struct {
	handlers map[string]Handler
	frozen   bool
}

// NewDispatch creates an empty dispatch table
func NewDispatch() *Dispatch {
	return &Dispatch{
		handlers: make(map[string]Handler),
	}
}

// Bind attaches a handler to a tool name.
func (d *Dispatch) Bind(name string, h Handler) error {
	if d.frozen {
		return fmt.Errorf("dispatch: bind %q after freeze", name)
	}
	if h == nil {
		return fmt.Errorf("dispatch: nil handler for %q", name)
	}
	if _, ok := d.handlers[name]; ok {
		return fmt.Errorf("dispatch: tool %q already bound", name)
	}

	d.handlers[name] = h
	return nil
}

// Freeze rejects any later Bind.
func (d *Dispatch) Freeze() {
	d.frozen = true
}

// Lookup resolves a handler by tool name
func (d *Dispatch) Lookup(name string) (Handler, bool) {
	h, ok := d.handlers[name]
	return h, ok
}

// Names lists the bound tool names in sorted order
func (d *Dispatch) Names() []string {
	out := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
