package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/metrics"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

// unknownTool labels metrics for names outside the catalog
const unknownTool = "unknown"

// CallObserver records the outcome of each tool call
type CallObserver interface {
	ObserveCall(tool, outcome string, duration time.Duration)
}

// Facade is the single entry point for tool calls from every transport.
type Facade struct {
	catalog  *catalog.Catalog
	dispatch *catalog.Dispatch
	logger   *logging.Logger
	observer CallObserver
}

// NewFacade constructs a Facade over a frozen toolset
func NewFacade(ts *Toolset, logger *logging.Logger, observer CallObserver) *Facade {
	return &Facade{
		catalog:  ts.Catalog,
		dispatch: ts.Dispatch,
		logger:   logger.Named("facade"),
		observer: observer,
	}
}

// Tools lists every advertised descriptor sorted by name
func (f *Facade) Tools() []catalog.Descriptor {
	return f.catalog.List()
}

// Handle runs one tool call. Every returned error is a *catalog.Error.
func (f *Facade) Handle(ctx context.Context, call ToolCall) (res catalog.Result, err error) {
	callID := uuid.NewString()
	start := time.Now()
	log := f.logger.With("tool", call.Name, "call_id", callID)
	log.Debug("tool call received", "params", len(call.Parameters))

	defer func() {
		if r := recover(); r != nil {
			res = catalog.Result{}
			err = catalog.Internal(call.Name, fmt.Errorf("panic: %v", r))
		}
		f.finish(log, call.Name, err, time.Since(start))
	}()

	return f.handle(ctx, call)
}

func (f *Facade) handle(ctx context.Context, call ToolCall) (catalog.Result, error) {
	desc, ok := f.catalog.Lookup(call.Name)
	if !ok {
		return catalog.Result{}, catalog.NotFound(call.Name)
	}

	handler, ok := f.dispatch.Lookup(call.Name)
	if !ok {
		return catalog.Result{}, catalog.NotImplemented(call.Name)
	}

	if err := desc.Validate(call.Parameters); err != nil {
		return catalog.Result{}, err
	}

	args := catalog.Args(call.Parameters)
	if args == nil {
		args = catalog.Args{}
	}

	res, err := handler(ctx, args)
	if err != nil {
		return catalog.Result{}, boundaryError(call.Name, err)
	}
	return res, nil
}

// boundaryError lets caller mistakes through and folds everything else into
// an internal error carrying the original message.
func boundaryError(tool string, err error) *catalog.Error {
	var e *catalog.Error
	if errors.As(err, &e) && e.Kind == catalog.KindClientInput {
		if e.Tool == "" {
			e.Tool = tool
		}
		return e
	}
	return catalog.Internal(tool, err)
}

func (f *Facade) finish(log *logging.Logger, tool string, err error, elapsed time.Duration) {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = catalog.KindOf(err).String()
	}

	label := tool
	if _, ok := f.catalog.Lookup(tool); !ok {
		label = unknownTool
	}
	if f.observer != nil {
		f.observer.ObserveCall(label, outcome, elapsed)
	}

	switch {
	case err == nil:
		log.Info("tool call completed", "duration", elapsed)
	case catalog.KindOf(err) == catalog.KindInternal:
		log.Error("tool call failed", "err", err, "duration", elapsed)
	default:
		log.Warn("tool call rejected", "err", err, "kind", outcome, "duration", elapsed)
	}
}
