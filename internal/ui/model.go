// Package ui implements the Bubble Tea front end over the menu controller.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptdeck/scriptdeck/internal/catalog"
	"github.com/scriptdeck/scriptdeck/internal/menu"
	"github.com/scriptdeck/scriptdeck/internal/theme"
)

const (
	menuHeaderSeparator = " → "
	rootTitle           = "script menu"
)

// Options configures the interactive model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Styles     *theme.Styles
	Reader     menu.ScriptReader
}

// Model implements tea.Model for the script menu.
type Model struct {
	ctrl   *menu.Controller
	styles *theme.Styles
	reader menu.ScriptReader

	filter       string
	filterCursor cursor.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	viewportOffset int
	errMsg         string
	previewErr     bool

	result catalog.Action
	done   bool
}

// NewModel initialises the UI state over the given catalog.
func NewModel(tree *catalog.Tree, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		ctrl:       menu.NewController(tree),
		styles:     styles,
		reader:     opts.Reader,
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	return m
}

// Result reports the action resolved by the session, if any.
func (m *Model) Result() (catalog.Action, bool) {
	return m.result, m.done
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cursorCmd tea.Cmd
	m.filterCursor, cursorCmd = m.filterCursor.Update(msg)
	if cursorCmd != nil {
		cmds = append(cmds, cursorCmd)
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKeyMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		m.syncViewport()
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// syncViewport keeps the selected row inside the visible window.
func (m *Model) syncViewport() {
	max := m.maxVisibleItems()
	if max <= 0 {
		m.viewportOffset = 0
		return
	}
	sel, ok := m.ctrl.Selection()
	if !ok {
		m.viewportOffset = 0
		return
	}
	if sel < m.viewportOffset {
		m.viewportOffset = sel
	}
	if sel >= m.viewportOffset+max {
		m.viewportOffset = sel - max + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

func (m *Model) headerSegments() []string {
	segments := []string{rootTitle}
	for _, name := range m.ctrl.Path() {
		segment := strings.TrimSpace(strings.ToLower(name))
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

func (m *Model) menuHeader() string {
	return strings.Join(m.headerSegments(), menuHeaderSeparator)
}
