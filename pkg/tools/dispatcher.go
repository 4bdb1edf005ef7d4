package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/logging"
)

// Dispatcher is the single entry point for tool calls. It routes each call
// to the matching tool, serializes execution through one lock so at most one
// call touches the page at a time, and converts every outcome into the
// uniform Result envelope. Calls queue on the lock in arrival order.
type Dispatcher struct {
	mu sync.Mutex // the execution lock

	registerMu sync.Mutex
	tools      map[string]Tool
	order      []string

	log *logging.Logger
}

// NewDispatcher creates a dispatcher. The logger may be nil in tests.
func NewDispatcher(log *logging.Logger) *Dispatcher {
	return &Dispatcher{
		tools: make(map[string]Tool),
		log:   log,
	}
}

// Register adds a tool. Registering a duplicate name replaces the earlier
// tool; registration happens once at startup, before calls arrive.
func (d *Dispatcher) Register(tool Tool) {
	d.registerMu.Lock()
	defer d.registerMu.Unlock()
	if _, exists := d.tools[tool.Name()]; !exists {
		d.order = append(d.order, tool.Name())
	}
	d.tools[tool.Name()] = tool
}

// Tools returns the registered tools in registration order.
func (d *Dispatcher) Tools() []Tool {
	d.registerMu.Lock()
	defer d.registerMu.Unlock()
	out := make([]Tool, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.tools[name])
	}
	return out
}

// Dispatch executes one call and always returns an envelope; no failure
// propagates as a raw crash to the caller. The execution lock is released in
// all outcomes, including panics inside a tool.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) Result {
	d.registerMu.Lock()
	tool, ok := d.tools[call.Name]
	d.registerMu.Unlock()
	if !ok {
		return d.failure(call.Name, browser.ValidationErrorf("unknown tool %q", call.Name))
	}

	args := call.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.debugf("dispatching %s", call.Name)
	value, err := d.execute(ctx, tool, args)
	if err != nil {
		return d.failure(call.Name, err)
	}
	d.debugf("%s succeeded", call.Name)
	return Result{OK: true, Value: value}
}

// execute runs the tool, converting panics into errors so the lock is never
// poisoned by a misbehaving tool.
func (d *Dispatcher) execute(ctx context.Context, tool Tool, args json.RawMessage) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = browser.Unknownf(fmt.Errorf("panic: %v", r), "tool %s panicked", tool.Name())
		}
	}()
	return tool.Execute(ctx, args)
}

func (d *Dispatcher) failure(name string, err error) Result {
	typed := browser.Classify(err)
	if typed.Kind == browser.KindUnknown {
		d.errorf("%s failed unexpectedly: %v", name, typed)
	} else {
		d.debugf("%s failed: %v", name, typed)
	}
	return Result{
		OK: false,
		Error: &ErrorInfo{
			Kind:    string(typed.Kind),
			Message: typed.Message,
		},
	}
}

func (d *Dispatcher) debugf(format string, args ...interface{}) {
	if d.log != nil {
		d.log.Debugf(format, args...)
	}
}

func (d *Dispatcher) errorf(format string, args ...interface{}) {
	if d.log != nil {
		d.log.Errorf(format, args...)
	}
}
