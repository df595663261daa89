package menu

import (
	"fmt"
	"strings"

	"github.com/scriptdeck/scriptdeck/internal/catalog"
)

// Preview holds the text of a resolved command and an independent
// scroll offset. It exists only while the overlay is open and is
// created fresh (scroll 0) on every open.
type Preview struct {
	lines  []string
	scroll int
}

// NewPreview wraps the given lines with the scroll at the top.
func NewPreview(lines []string) *Preview {
	return &Preview{lines: lines}
}

// Lines returns the full preview text.
func (p *Preview) Lines() []string {
	return p.lines
}

// Scroll returns the current line offset.
func (p *Preview) Scroll() int {
	return p.scroll
}

// ScrollDown moves one line toward the end, stopping at the last line.
func (p *Preview) ScrollDown() {
	if p.scroll+1 < len(p.lines) {
		p.scroll++
	}
}

// ScrollUp moves one line toward the start, floored at zero.
func (p *Preview) ScrollUp() {
	if p.scroll > 0 {
		p.scroll--
	}
}

// Window returns up to height lines starting at the scroll offset.
func (p *Preview) Window(height int) []string {
	if height <= 0 || p.scroll >= len(p.lines) {
		return nil
	}
	end := p.scroll + height
	if end > len(p.lines) {
		end = len(p.lines)
	}
	return p.lines[p.scroll:end]
}

// ScriptReader loads the text of a ScriptFile action. The path is
// relative; the reader supplies the base directory.
type ScriptReader func(path string) (string, error)

// PreviewOpen reports whether the overlay is showing.
func (c *Controller) PreviewOpen() bool {
	return c.preview != nil
}

// Preview returns the open overlay state, or nil.
func (c *Controller) Preview() *Preview {
	return c.preview
}

// ClosePreview discards the overlay state entirely.
func (c *Controller) ClosePreview() {
	c.preview = nil
}

// TogglePreview closes an open overlay, or resolves the selected
// action's text and opens a fresh one. Group placeholders yield no
// preview and leave all state untouched. A failed script read is
// recoverable: the error is returned and the preview stays closed.
func (c *Controller) TogglePreview(read ScriptReader) error {
	if c.preview != nil {
		c.preview = nil
		return nil
	}
	action, ok := c.SelectedAction()
	if !ok {
		return nil
	}
	lines, ok, err := actionText(action, read)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	c.preview = NewPreview(lines)
	return nil
}

// actionText resolves an action to preview lines. NoAction reports
// !ok without error.
func actionText(action catalog.Action, read ScriptReader) ([]string, bool, error) {
	switch a := action.(type) {
	case catalog.InlineScript:
		return strings.Split(a.Source, "\n"), true, nil
	case catalog.ScriptFile:
		if read == nil {
			return nil, false, fmt.Errorf("no script reader configured for %s", a.Path)
		}
		text, err := read(a.Path)
		if err != nil {
			return nil, false, fmt.Errorf("load script %s: %w", a.Path, err)
		}
		return strings.Split(text, "\n"), true, nil
	default:
		return nil, false, nil
	}
}
