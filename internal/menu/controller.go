// Package menu is the navigation core of the script menu: a state
// machine over a catalog tree that tracks the current group, the
// selection, the filter query, and the preview overlay. It knows
// nothing about terminals; the ui package adapts key events to it and
// renders the rows it reports.
package menu

import "github.com/scriptdeck/scriptdeck/internal/catalog"

// Row is one visible line of the main list.
type Row struct {
	Name  string
	Group bool
	Up    bool
}

// Controller owns the visit stack and selection index for one catalog
// tree. It is not safe for concurrent use; one key event is fully
// processed before the next arrives.
type Controller struct {
	tree      *catalog.Tree
	visit     []catalog.NodeID
	selection int // index into the visible rows, -1 when nothing is selectable
	query     string
	filtered  []catalog.Item
	preview   *Preview
}

// NewController starts navigation at the tree root with the first row
// selected.
func NewController(tree *catalog.Tree) *Controller {
	c := &Controller{
		tree:      tree,
		visit:     []catalog.NodeID{catalog.Root},
		selection: -1,
	}
	c.clampSelection(0)
	return c
}

// AtRoot reports whether the visit stack is at the tree root.
func (c *Controller) AtRoot() bool {
	return len(c.visit) == 1
}

// Current returns the group whose children are being displayed.
func (c *Controller) Current() catalog.NodeID {
	return c.visit[len(c.visit)-1]
}

// Depth returns the visit stack length; 1 means "at root".
func (c *Controller) Depth() int {
	return len(c.visit)
}

// Path returns the names of the groups from the first descended level
// down to the current one. Empty at the root.
func (c *Controller) Path() []string {
	if c.AtRoot() {
		return nil
	}
	names := make([]string, 0, len(c.visit)-1)
	for _, id := range c.visit[1:] {
		names = append(names, c.tree.Item(id).Name)
	}
	return names
}

// FilterActive reports whether a non-empty query replaces the
// navigation view.
func (c *Controller) FilterActive() bool {
	return c.query != ""
}

// Query returns the current filter query.
func (c *Controller) Query() string {
	return c.query
}

// SetFilter replaces the filter query. A non-empty query flattens the
// view to the sorted matching leaves; an empty query restores the
// navigation view at the unchanged visit stack. The selection is reset
// because the visible set changed size.
func (c *Controller) SetFilter(query string) {
	c.query = query
	if query == "" {
		c.filtered = nil
	} else {
		c.filtered = Filter(c.tree, query)
	}
	c.clampSelection(0)
}

// VisibleCount returns the number of rows the list currently shows,
// including the synthetic ".." row when applicable.
func (c *Controller) VisibleCount() int {
	if c.FilterActive() {
		return len(c.filtered)
	}
	count := len(c.tree.Children(c.Current()))
	if !c.AtRoot() {
		count++
	}
	return count
}

// Rows returns the visible list in display order.
func (c *Controller) Rows() []Row {
	if c.FilterActive() {
		rows := make([]Row, 0, len(c.filtered))
		for _, item := range c.filtered {
			rows = append(rows, Row{Name: item.Name})
		}
		return rows
	}
	children := c.tree.Children(c.Current())
	rows := make([]Row, 0, len(children)+1)
	if !c.AtRoot() {
		rows = append(rows, Row{Name: "..", Up: true})
	}
	for _, id := range children {
		rows = append(rows, Row{
			Name:  c.tree.Item(id).Name,
			Group: c.tree.HasChildren(id),
		})
	}
	return rows
}

// Selection returns the selected row index, or false when the visible
// list is empty.
func (c *Controller) Selection() (int, bool) {
	if c.selection < 0 {
		return 0, false
	}
	return c.selection, true
}

// MoveDown advances the selection, clamped to the last visible row.
func (c *Controller) MoveDown() {
	if c.selection < 0 {
		return
	}
	if next := c.selection + 1; next < c.VisibleCount() {
		c.selection = next
	}
}

// MoveUp retreats the selection, stopping at the first row. No
// wraparound in either direction.
func (c *Controller) MoveUp() {
	if c.selection > 0 {
		c.selection--
	}
}

// Enter resolves the current selection. It returns the selected leaf's
// action when one was chosen; descending into a group or ascending via
// the ".." row mutates the visit stack and returns no action.
func (c *Controller) Enter() (catalog.Action, bool) {
	if c.selection < 0 {
		if c.VisibleCount() == 0 {
			return nil, false
		}
		c.selection = 0
	}
	if c.FilterActive() {
		// The visit stack is never touched while filtering.
		if c.selection < len(c.filtered) {
			return c.filtered[c.selection].Action, true
		}
		return nil, false
	}
	if !c.AtRoot() && c.selection == 0 {
		c.visit = c.visit[:len(c.visit)-1]
		c.clampSelection(0)
		return nil, false
	}
	children := c.tree.Children(c.Current())
	idx := displayIndexToChildIndex(c.selection, c.AtRoot())
	if idx < 0 || idx >= len(children) {
		return nil, false
	}
	child := children[idx]
	if c.tree.HasChildren(child) {
		c.visit = append(c.visit, child)
		c.clampSelection(0)
		return nil, false
	}
	return c.tree.Item(child).Action, true
}

// SelectedAction returns the action under the selection without
// mutating any state. The ".." row and group rows report false.
func (c *Controller) SelectedAction() (catalog.Action, bool) {
	if c.selection < 0 {
		return nil, false
	}
	if c.FilterActive() {
		if c.selection < len(c.filtered) {
			return c.filtered[c.selection].Action, true
		}
		return nil, false
	}
	if !c.AtRoot() && c.selection == 0 {
		return nil, false
	}
	children := c.tree.Children(c.Current())
	idx := displayIndexToChildIndex(c.selection, c.AtRoot())
	if idx < 0 || idx >= len(children) {
		return nil, false
	}
	child := children[idx]
	if c.tree.HasChildren(child) {
		return nil, false
	}
	return c.tree.Item(child).Action, true
}

// displayIndexToChildIndex maps a visible row index to a child index of
// the current group. The synthetic ".." row occupies position 0 when
// not at the root, shifting every child down by one.
func displayIndexToChildIndex(display int, atRoot bool) int {
	if atRoot {
		return display
	}
	return display - 1
}

// clampSelection re-validates the selection after the visible set
// changed size: preferred index when in range, none when the list is
// empty.
func (c *Controller) clampSelection(preferred int) {
	count := c.VisibleCount()
	if count == 0 {
		c.selection = -1
		return
	}
	if preferred < 0 {
		preferred = 0
	}
	if preferred >= count {
		preferred = count - 1
	}
	c.selection = preferred
}
