package events

import "github.com/atomicstack/lineedit/internal/logging"

type DocumentTracer struct{}

type EditTracer struct{}

var (
	Document = DocumentTracer{}
	Edit     = EditTracer{}
)

func (DocumentTracer) Save(path string, lines int) {
	logging.Trace("document.save", map[string]interface{}{"path": path, "lines": lines})
}

func (DocumentTracer) SaveFailed(path string, err error) {
	logging.Trace("document.save.error", map[string]interface{}{"path": path, "error": errString(err)})
}

func (DocumentTracer) Load(path string, lines int) {
	logging.Trace("document.load", map[string]interface{}{"path": path, "lines": lines})
}

// LoadFailed records a failed load; kept is the line count left in memory.
func (DocumentTracer) LoadFailed(path string, err error, kept int) {
	logging.Trace("document.load.error", map[string]interface{}{"path": path, "error": errString(err), "kept": kept})
}

func (EditTracer) Start(existing int) {
	logging.Trace("edit.start", map[string]interface{}{"existing": existing})
}

func (EditTracer) End(added int, reason string) {
	logging.Trace("edit.end", map[string]interface{}{"added": added, "reason": reason})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
