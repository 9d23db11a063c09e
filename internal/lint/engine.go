package lint

import (
	"github.com/hashicorp/go-hclog"
)

// Engine runs an ordered list of checks over one Context
type Engine struct {
	checks []Check
	logger hclog.Logger
}

func NewEngine(logger hclog.Logger, checks ...Check) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{
		checks: append([]Check(nil), checks...),
		logger: logger,
	}
}

// NewEngineFromSelection registers the checks named by a selector such as "all" or "1,3,5".
// Unrecognised tokens are returned and skipped.
func NewEngineFromSelection(logger hclog.Logger, selection string, opts CatalogOptions) (*Engine, []*SelectionError) {
	checks, errs := ParseSelection(selection, opts)
	engine := NewEngine(logger, checks...)
	for _, err := range errs {
		engine.logger.Warn("skipping check selection", "token", err.Token, "reason", err.Reason)
	}
	return engine, errs
}

func (e *Engine) AddCheck(check Check) {
	e.checks = append(e.checks, check)
}

func (e *Engine) CheckCount() int {
	return len(e.checks)
}

func (e *Engine) Checks() []Check {
	return append([]Check(nil), e.checks...)
}

// Analyze runs every check in registration order and concatenates their findings
func (e *Engine) Analyze(ctx *Context) []Violation {
	var all []Violation
	for _, check := range e.checks {
		e.logger.Debug("running check", "name", check.Name())
		violations := check.Analyze(ctx)
		e.logger.Debug("check finished", "name", check.Name(), "violations", len(violations))
		all = append(all, violations...)
	}
	return all
}
