package browser

import (
	engine "github.com/entrhq/browserd/pkg/browser"
	"github.com/entrhq/browserd/pkg/logging"
	"github.com/entrhq/browserd/pkg/tools"
)

// Registry wires the browser tools to the session manager.
type Registry struct {
	manager *engine.Manager
	log     *logging.Logger
}

// NewRegistry creates a registry. The logger may be nil in tests.
func NewRegistry(manager *engine.Manager, log *logging.Logger) *Registry {
	return &Registry{manager: manager, log: log}
}

// Tools returns all browser tools in their stable registration order.
func (r *Registry) Tools() []tools.Tool {
	return []tools.Tool{
		NewRestartTool(r.manager),
		NewNavigateTool(r.manager),
		NewExplorePageTool(r.manager),
		NewExploreElementTool(r.manager),
		NewFindElementsTool(r.manager),
		NewWaitTool(r.manager),
		NewClickTool(r.manager, r.log),
		NewTextContentTool(r.manager),
		NewFillTool(r.manager, r.log),
		NewReloadTool(r.manager),
		NewEvaluateTool(r.manager),
		NewConsoleLogsTool(r.manager),
		NewNetworkRequestsTool(r.manager),
		NewPressKeyTool(r.manager, r.log),
	}
}

// newInteractor builds an interactor whose warnings (first-match-wins on an
// ambiguous selector) land in the component log.
func newInteractor(manager *engine.Manager, log *logging.Logger) *engine.Interactor {
	interactor := &engine.Interactor{
		Waiter: &engine.Waiter{Interval: manager.PollInterval()},
	}
	if log != nil {
		interactor.Warnf = log.Warnf
	}
	return interactor
}
