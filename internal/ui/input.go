package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptdeck/scriptdeck/internal/logging/events"
	"github.com/scriptdeck/scriptdeck/internal/menu"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if m.ctrl.PreviewOpen() {
		return m.handlePreviewKeyMsg(msg)
	}
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscape()
	case "down", "ctrl+n":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyDown})
	case "up", "ctrl+p":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyUp})
	case "enter":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyEnter})
	case "tab":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyPreview})
	case "ctrl+u":
		if m.filter == "" {
			return nil
		}
		m.setFilter("")
		events.Filter.Cleared()
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.removeFilterRune()
		return nil
	case tea.KeySpace:
		m.appendToFilter(" ")
		return nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.appendToFilter(string(msg.Runes))
		return nil
	}
	return nil
}

// handlePreviewKeyMsg routes keys while the preview overlay is open.
// Text input is suspended so the visible set and selection cannot
// change underneath the overlay; p closes it again and j/k scroll.
func (m *Model) handlePreviewKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscape()
	case "p", "tab":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyPreview})
	case "down", "ctrl+n", "j":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyDown})
	case "up", "ctrl+p", "k":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyUp})
	case "enter":
		return m.dispatch(menu.Event{Kind: menu.KindPress, Key: menu.KeyEnter})
	}
	return nil
}

// handleEscape backs out one layer at a time: preview, filter, menu
// level, then the program itself.
func (m *Model) handleEscape() tea.Cmd {
	if m.ctrl.PreviewOpen() {
		m.ctrl.ClosePreview()
		events.Preview.Close(m.selectedLabel())
		return nil
	}
	if m.filter != "" {
		m.setFilter("")
		events.Filter.Cleared()
		return nil
	}
	if !m.ctrl.AtRoot() {
		m.ascend()
		return nil
	}
	return tea.Quit
}

// ascend pops one level by entering the synthetic up row.
func (m *Model) ascend() {
	for sel, ok := m.ctrl.Selection(); ok && sel > 0; sel, ok = m.ctrl.Selection() {
		m.ctrl.MoveUp()
	}
	m.ctrl.Enter()
	m.viewportOffset = 0
	m.syncViewport()
	events.Menu.Ascend(m.menuHeader())
}

func (m *Model) dispatch(ev menu.Event) tea.Cmd {
	wasOpen := m.ctrl.PreviewOpen()
	depth := m.ctrl.Depth()
	action, ok, err := m.ctrl.Handle(ev, m.reader)
	if err != nil {
		// Preview load failures are recoverable; show them and move on.
		m.errMsg = err.Error()
		m.previewErr = true
		events.Preview.LoadError(m.selectedLabel(), err)
		return nil
	}
	m.errMsg = ""
	m.previewErr = false
	if ok {
		m.result = action
		m.done = true
		events.Action.Resolved(m.selectedLabel())
		return tea.Quit
	}
	switch {
	case !wasOpen && m.ctrl.PreviewOpen():
		events.Preview.Open(m.selectedLabel(), len(m.ctrl.Preview().Lines()))
	case wasOpen && !m.ctrl.PreviewOpen():
		events.Preview.Close(m.selectedLabel())
	case m.ctrl.Depth() > depth:
		path := m.ctrl.Path()
		events.Menu.Enter(m.menuHeader(), path[len(path)-1])
	}
	if sel, selOK := m.ctrl.Selection(); selOK {
		events.Menu.Cursor(m.menuHeader(), sel)
	}
	m.syncViewport()
	return nil
}

func (m *Model) selectedLabel() string {
	rows := m.ctrl.Rows()
	if sel, ok := m.ctrl.Selection(); ok && sel < len(rows) {
		return rows[sel].Name
	}
	return ""
}

func (m *Model) setFilter(query string) {
	m.filter = query
	m.ctrl.SetFilter(query)
	m.viewportOffset = 0
	m.errMsg = ""
	m.previewErr = false
	m.syncViewport()
}

func (m *Model) appendToFilter(text string) {
	if text == "" {
		return
	}
	m.setFilter(m.filter + text)
	events.Filter.Append(m.filter, m.ctrl.VisibleCount())
}

func (m *Model) removeFilterRune() {
	if m.filter == "" {
		return
	}
	runes := []rune(m.filter)
	m.setFilter(string(runes[:len(runes)-1]))
	events.Filter.Backspace(m.filter, m.ctrl.VisibleCount())
}
