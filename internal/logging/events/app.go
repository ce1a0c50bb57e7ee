package events

import "github.com/atomicstack/lineedit/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Fallback records a requested front-end that could not be used.
func (AppTracer) Fallback(requested, used, reason string) {
	logging.Trace("app.fallback", map[string]interface{}{"requested": requested, "used": used, "reason": reason})
}

func (AppTracer) Exit(reason string, lines int) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason, "lines": lines})
}
