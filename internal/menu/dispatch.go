package menu

import "github.com/scriptdeck/scriptdeck/internal/catalog"

// Op is the action the core takes in response to one key event.
type Op int

const (
	OpNone Op = iota
	OpMoveDown
	OpMoveUp
	OpTogglePreview
	OpEnter
	OpScrollPreviewDown
	OpScrollPreviewUp
)

// Kind distinguishes key event kinds. Only presses and repeats are
// acted on; releases are always no-ops.
type Kind int

const (
	KindPress Kind = iota
	KindRepeat
	KindRelease
)

// Key is the subset of keys the core understands. Everything else maps
// to KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyDown
	KeyUp
	KeyEnter
	KeyPreview
)

// Event is one key event as seen by the dispatcher.
type Event struct {
	Kind Kind
	Key  Key
}

// Route maps a key event and the preview-open flag to an operation.
// While the preview is open the movement keys scroll it and enter is
// swallowed; the preview key always toggles.
func Route(ev Event, previewOpen bool) Op {
	if ev.Kind == KindRelease {
		return OpNone
	}
	switch ev.Key {
	case KeyDown:
		if previewOpen {
			return OpScrollPreviewDown
		}
		return OpMoveDown
	case KeyUp:
		if previewOpen {
			return OpScrollPreviewUp
		}
		return OpMoveUp
	case KeyPreview:
		return OpTogglePreview
	case KeyEnter:
		if previewOpen {
			return OpNone
		}
		return OpEnter
	default:
		return OpNone
	}
}

// Handle routes one event and applies the resulting operation. It
// returns the resolved action when the event resolved a command, and an
// error when a preview source failed to load.
func (c *Controller) Handle(ev Event, read ScriptReader) (catalog.Action, bool, error) {
	switch Route(ev, c.PreviewOpen()) {
	case OpMoveDown:
		c.MoveDown()
	case OpMoveUp:
		c.MoveUp()
	case OpScrollPreviewDown:
		c.preview.ScrollDown()
	case OpScrollPreviewUp:
		c.preview.ScrollUp()
	case OpTogglePreview:
		if err := c.TogglePreview(read); err != nil {
			return nil, false, err
		}
	case OpEnter:
		if action, ok := c.Enter(); ok {
			return action, true, nil
		}
	}
	return nil, false, nil
}
