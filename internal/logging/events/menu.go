package events

import "github.com/scriptdeck/scriptdeck/internal/logging"

type MenuTracer struct{}

type FilterTracer struct{}

type PreviewTracer struct{}

type ActionTracer struct{}

var (
	Menu    = MenuTracer{}
	Filter  = FilterTracer{}
	Preview = PreviewTracer{}
	Action  = ActionTracer{}
)

func (MenuTracer) Enter(path, label string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"path":  path,
		"label": label,
	})
}

func (MenuTracer) Ascend(path string) {
	logging.Trace("menu.ascend", map[string]interface{}{"path": path})
}

func (MenuTracer) Cursor(path string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"path": path, "cursor": cursor})
}

func (FilterTracer) Append(query string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Backspace(query string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (PreviewTracer) Open(label string, lines int) {
	logging.Trace("preview.open", map[string]interface{}{"label": label, "lines": lines})
}

func (PreviewTracer) Close(label string) {
	logging.Trace("preview.close", map[string]interface{}{"label": label})
}

func (PreviewTracer) LoadError(label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("preview.load-error", map[string]interface{}{"label": label, "error": err.Error()})
}

func (ActionTracer) Resolved(label string) {
	logging.Trace("action.resolved", map[string]interface{}{"label": label})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
