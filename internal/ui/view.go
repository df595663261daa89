package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/scriptdeck/scriptdeck/internal/menu"
)

const (
	previewMaxDisplayLines = 20  // inline (vertical) preview only
	previewPanelMinWidth   = 40  // minimum cols for the panel; below this no split
	previewPanelFraction   = 0.6 // fraction of total width given to the panel
)

var (
	previewBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	previewScrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// hasSidePreview reports whether the open preview should be rendered as a
// panel on the right rather than inline below the items.
func (m *Model) hasSidePreview() bool {
	return m.ctrl.PreviewOpen() && m.previewPanelWidth() > 0
}

// previewPanelWidth returns the width in columns for the right-hand
// preview panel. Returns 0 when the terminal is too narrow to split.
func (m *Model) previewPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) menuColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	if m.hasSidePreview() {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

// viewVertical is the single-column layout with an optional inline preview
// block below the menu items.
func (m *Model) viewVertical(header string) string {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: m.styles.Header})
	}
	lines = append(lines, m.menuLines(m.width)...)
	if m.ctrl.PreviewOpen() {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.previewTitle(), style: m.styles.PreviewTitle})
		for _, line := range m.ctrl.Preview().Window(previewMaxDisplayLines) {
			lines = append(lines, styledLine{text: line, style: m.styles.PreviewBody})
		}
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: m.styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	lines = append(lines, m.bottomBar()...)
	return renderLines(lines)
}

// viewSideBySide renders the menu on the left and the preview panel on
// the right.
func (m *Model) viewSideBySide(header string) string {
	menuW := m.menuColumnWidth()
	prevW := m.previewPanelWidth()
	const bottomBarRows = 2

	contentLines := make([]styledLine, 0, 16)
	if header != "" {
		contentLines = append(contentLines, styledLine{text: header, style: m.styles.Header})
	}
	contentLines = append(contentLines, m.menuLines(menuW)...)
	if m.showFooter {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: footerText, style: m.styles.Footer})
	}

	panelH := m.height - bottomBarRows
	if panelH < 1 {
		panelH = 1
	}
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}

	contentLines = applyWidth(contentLines, menuW)
	leftStr := renderLines(contentLines)

	// Pad every rendered row to exactly menuW visible columns so
	// JoinHorizontal keeps the panel flush to the right edge.
	leftRows := strings.Split(leftStr, "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > menuW {
			leftRows[i] = truncate.StringWithTail(row, uint(menuW-1), "…")
		} else if w < menuW {
			leftRows[i] = row + strings.Repeat(" ", menuW-w)
		}
	}
	leftStr = strings.Join(leftRows, "\n")

	rightStr := m.renderPreviewPanel(prevW, panelH)
	topSection := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)

	bottomStr := renderLines(applyWidth(m.bottomBar(), m.width))
	return topSection + "\n" + bottomStr
}

const footerText = "↑/↓ move  enter select  tab preview  esc back  ctrl+c quit"

// menuLines builds the visible slice of menu rows for the current level.
func (m *Model) menuLines(width int) []styledLine {
	rows := m.ctrl.Rows()
	if len(rows) == 0 {
		msg := "(no entries)"
		if m.ctrl.FilterActive() {
			msg = fmt.Sprintf("No matches for %q", m.ctrl.Query())
		}
		return []styledLine{{text: msg, style: m.styles.Info}}
	}
	start := 0
	display := rows
	if max := m.maxVisibleItems(); max > 0 && len(rows) > max {
		start = m.viewportOffset
		if start < 0 {
			start = 0
		}
		if start+max > len(rows) {
			start = len(rows) - max
			m.viewportOffset = start
		}
		display = rows[start : start+max]
	}
	lines := make([]styledLine, 0, len(display))
	sel, _ := m.ctrl.Selection()
	for i, row := range display {
		lines = append(lines, m.buildItemLine(row, start+i == sel, width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a menu row. width is
// the target column width; when > 0 the text is padded so the selected
// row's background spans the full container.
func (m *Model) buildItemLine(row menu.Row, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	icon := m.styles.CommandIcon
	switch {
	case row.Up:
		icon = m.styles.UpIcon
		lineStyle = m.styles.UpRow
	case row.Group:
		icon = m.styles.GroupIcon
		lineStyle = m.styles.Group
	}
	if selected {
		indicatorStyle = m.styles.SelectedIndicator
		lineStyle = m.styles.SelectedItem
	}
	fullText := indicator + " " + icon + " " + row.Name
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) previewTitle() string {
	label := strings.TrimSpace(m.selectedLabel())
	if label == "" {
		label = "(unknown)"
	}
	return "Preview: " + label
}

// renderPreviewPanel builds the bordered preview box as a string with
// exactly height rows and totalWidth columns.
func (m *Model) renderPreviewPanel(totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	preview := m.ctrl.Preview()
	contentLines := preview.Window(innerH)
	scrollInfo := ""
	if total := len(preview.Lines()); total > 0 {
		scrollInfo = fmt.Sprintf(" %d/%d ", preview.Scroll()+len(contentLines), total)
	}

	titleSeg := " " + m.previewTitle() + " "
	scrollSeg := scrollInfo
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(scrollSeg))
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := previewBorderStyle.Render(tlc+hz) +
		m.styles.PreviewTitle.Render(titleSeg) +
		previewBorderStyle.Render(strings.Repeat(hz, dashes)) +
		previewScrollStyle.Render(scrollSeg) +
		previewBorderStyle.Render(hz+trc)
	bottomLine := previewBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(contentLines) {
			content = contentLines[i]
		}
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content = content + strings.Repeat(" ", innerW-w)
		}
		styledContent := content
		if m.styles.PreviewBody != nil {
			styledContent = m.styles.PreviewBody.Render(content)
		}
		rows = append(rows, previewBorderStyle.Render(vt)+styledContent+previewBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// bottomBar is the error/status line plus the filter prompt.
func (m *Model) bottomBar() []styledLine {
	var statusLine styledLine
	if m.errMsg != "" {
		style := m.styles.Error
		if m.previewErr && m.styles.PreviewError != nil {
			style = m.styles.PreviewError
		}
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: style}
	}
	return []styledLine{
		statusLine,
		{text: m.filterPrompt()},
	}
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := render(m.styles.FilterPrompt, "» ")
	if m.filter == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		if m.styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = m.styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(m.styles.FilterPlaceholder, string(runes[1:]))
	}
	if m.styles.Filter != nil {
		m.filterCursor.TextStyle = m.styles.Filter.Copy()
	}
	return prompt + render(m.styles.Filter, m.filter) + m.renderFilterCursor(" ")
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if m.styles.Cursor != nil {
		cursorStyle := m.styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

// maxVisibleItems computes how many menu rows fit in the current height.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	used++    // header
	if m.showFooter {
		used += 2
	}
	if m.ctrl.PreviewOpen() && !m.hasSidePreview() {
		used += 2 // blank separator + title line
		window := len(m.ctrl.Preview().Lines())
		if window > previewMaxDisplayLines {
			window = previewMaxDisplayLines
		}
		used += window
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
