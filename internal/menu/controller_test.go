package menu

import (
	"testing"

	"github.com/scriptdeck/scriptdeck/internal/catalog"
)

// sampleTree builds: root → group "A" (leaves "x", "y") and leaf "z".
func sampleTree() *catalog.Tree {
	b := catalog.NewBuilder()
	group := b.Group(catalog.Root, "A")
	b.Add(group, catalog.Item{Name: "x", Action: catalog.InlineScript{Source: "echo x"}})
	b.Add(group, catalog.Item{Name: "y", Action: catalog.InlineScript{Source: "echo y"}})
	b.Add(catalog.Root, catalog.Item{Name: "z", Action: catalog.InlineScript{Source: "echo z"}})
	return b.Build()
}

func inlineSource(t *testing.T, action catalog.Action) string {
	t.Helper()
	inline, ok := action.(catalog.InlineScript)
	if !ok {
		t.Fatalf("expected InlineScript, got %#v", action)
	}
	return inline.Source
}

func TestRootRows(t *testing.T) {
	c := NewController(sampleTree())
	rows := c.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows at root, got %d", len(rows))
	}
	if rows[0].Name != "A" || !rows[0].Group {
		t.Fatalf("expected group row A first, got %#v", rows[0])
	}
	if rows[1].Name != "z" || rows[1].Group || rows[1].Up {
		t.Fatalf("expected leaf row z second, got %#v", rows[1])
	}
	if sel, ok := c.Selection(); !ok || sel != 0 {
		t.Fatalf("expected initial selection 0, got %d/%v", sel, ok)
	}
}

func TestEnterDescendsIntoGroup(t *testing.T) {
	c := NewController(sampleTree())
	action, ok := c.Enter()
	if ok || action != nil {
		t.Fatalf("expected descend to return no action, got %#v", action)
	}
	if c.AtRoot() {
		t.Fatalf("expected to be inside group A")
	}
	if sel, ok := c.Selection(); !ok || sel != 0 {
		t.Fatalf("expected selection reset to 0, got %d/%v", sel, ok)
	}
	rows := c.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected ['..','x','y'], got %#v", rows)
	}
	if !rows[0].Up || rows[0].Name != ".." {
		t.Fatalf("expected synthetic up row first, got %#v", rows[0])
	}
	if rows[1].Name != "x" || rows[2].Name != "y" {
		t.Fatalf("unexpected child rows %#v", rows)
	}
}

func TestEnterOnLeafReturnsActionWithoutMutatingStack(t *testing.T) {
	c := NewController(sampleTree())
	c.Enter() // into A
	c.MoveDown()
	c.MoveDown() // onto y
	depth := c.Depth()
	action, ok := c.Enter()
	if !ok {
		t.Fatalf("expected resolved action")
	}
	if got := inlineSource(t, action); got != "echo y" {
		t.Fatalf("expected y's action, got %q", got)
	}
	if c.Depth() != depth {
		t.Fatalf("expected visit stack unchanged, depth %d → %d", depth, c.Depth())
	}
}

func TestEnterOnUpRowPopsExactlyOneLevel(t *testing.T) {
	c := NewController(sampleTree())
	c.Enter() // into A
	c.MoveDown()
	c.MoveUp() // back onto the up row
	action, ok := c.Enter()
	if ok || action != nil {
		t.Fatalf("expected up row to return no action, got %#v", action)
	}
	if !c.AtRoot() {
		t.Fatalf("expected to be back at root")
	}
	if sel, selOK := c.Selection(); !selOK || sel != 0 {
		t.Fatalf("expected selection reset after ascend, got %d/%v", sel, selOK)
	}
}

func TestUpRowNeverAscendsPastRoot(t *testing.T) {
	c := NewController(sampleTree())
	c.Enter() // descend into A; selection resets onto the up row
	c.Enter() // ascend back to root
	if !c.AtRoot() {
		t.Fatalf("expected ascend back to root")
	}
	// At root there is no up row, so entering selection 0 descends again.
	c.Enter()
	if c.AtRoot() {
		t.Fatalf("expected descend into A")
	}
}

func TestMoveBoundsStayWithinVisibleCount(t *testing.T) {
	c := NewController(sampleTree())
	for i := 0; i < 10; i++ {
		c.MoveDown()
	}
	sel, ok := c.Selection()
	if !ok || sel != c.VisibleCount()-1 {
		t.Fatalf("expected clamp at last row %d, got %d", c.VisibleCount()-1, sel)
	}
	for i := 0; i < 10; i++ {
		c.MoveUp()
	}
	if sel, ok = c.Selection(); !ok || sel != 0 {
		t.Fatalf("expected clamp at first row, got %d", sel)
	}
}

func TestMoveBoundsInsideGroupIncludeUpRow(t *testing.T) {
	c := NewController(sampleTree())
	c.Enter() // into A: rows are .., x, y
	for i := 0; i < 10; i++ {
		c.MoveDown()
	}
	sel, _ := c.Selection()
	if sel != 2 {
		t.Fatalf("expected selection clamped to 2 (row y), got %d", sel)
	}
}

func TestFilterFlattensAndClearingRestoresGroup(t *testing.T) {
	c := NewController(sampleTree())
	c.Enter() // inside A
	c.SetFilter("x")
	rows := c.Rows()
	if len(rows) != 1 || rows[0].Name != "x" || rows[0].Up || rows[0].Group {
		t.Fatalf("expected flat filtered row x, got %#v", rows)
	}
	if c.VisibleCount() != 1 {
		t.Fatalf("expected visible count 1, got %d", c.VisibleCount())
	}
	depth := c.Depth()
	action, ok := c.Enter()
	if !ok || inlineSource(t, action) != "echo x" {
		t.Fatalf("expected x's action, got %#v", action)
	}
	if c.Depth() != depth {
		t.Fatalf("expected filtered enter to leave visit stack alone")
	}
	c.SetFilter("")
	if c.AtRoot() {
		t.Fatalf("expected to still be inside A after clearing filter")
	}
	if got := len(c.Rows()); got != 3 {
		t.Fatalf("expected navigation view restored with 3 rows, got %d", got)
	}
}

func TestFilterWithNoMatchesHasNoSelection(t *testing.T) {
	c := NewController(sampleTree())
	c.SetFilter("nothing-matches-this")
	if c.VisibleCount() != 0 {
		t.Fatalf("expected no visible rows")
	}
	if _, ok := c.Selection(); ok {
		t.Fatalf("expected no selection for an empty list")
	}
	if action, ok := c.Enter(); ok || action != nil {
		t.Fatalf("expected enter on empty list to be a no-op")
	}
	c.MoveDown()
	c.MoveUp()
	if _, ok := c.Selection(); ok {
		t.Fatalf("expected selection to stay unset after movement")
	}
}

func TestFilterSelectionResetsWhenResultsShrink(t *testing.T) {
	c := NewController(sampleTree())
	c.MoveDown() // row z
	c.SetFilter("x")
	sel, ok := c.Selection()
	if !ok || sel != 0 {
		t.Fatalf("expected selection reset to 0 on filter change, got %d/%v", sel, ok)
	}
}

func TestEnterDefaultsSelectionWhenUnset(t *testing.T) {
	c := NewController(sampleTree())
	c.SetFilter("z")
	// Force the "no selection" path even though rows exist.
	c.selection = -1
	action, ok := c.Enter()
	if !ok || inlineSource(t, action) != "echo z" {
		t.Fatalf("expected defaulted selection to resolve z, got %#v", action)
	}
}

func TestFilteredResultsAreSortedForIndexLookup(t *testing.T) {
	b := catalog.NewBuilder()
	b.Add(catalog.Root, catalog.Item{Name: "beta", Action: catalog.InlineScript{Source: "echo beta"}})
	b.Add(catalog.Root, catalog.Item{Name: "alpha", Action: catalog.InlineScript{Source: "echo alpha"}})
	c := NewController(b.Build())
	c.SetFilter("a")
	rows := c.Rows()
	if rows[0].Name != "alpha" || rows[1].Name != "beta" {
		t.Fatalf("expected sorted rows, got %#v", rows)
	}
	// Index 1 must resolve the item displayed at index 1.
	c.MoveDown()
	action, ok := c.Enter()
	if !ok || inlineSource(t, action) != "echo beta" {
		t.Fatalf("expected beta resolved at index 1, got %#v", action)
	}
}

func TestPathNamesFollowVisitStack(t *testing.T) {
	c := NewController(sampleTree())
	if got := c.Path(); got != nil {
		t.Fatalf("expected empty path at root, got %v", got)
	}
	c.Enter()
	path := c.Path()
	if len(path) != 1 || path[0] != "A" {
		t.Fatalf("expected path [A], got %v", path)
	}
}

func TestEmptyCatalogHasNoSelection(t *testing.T) {
	c := NewController(catalog.NewBuilder().Build())
	if c.VisibleCount() != 0 {
		t.Fatalf("expected empty visible list")
	}
	if _, ok := c.Selection(); ok {
		t.Fatalf("expected no selection")
	}
	if action, ok := c.Enter(); ok || action != nil {
		t.Fatalf("expected enter no-op on empty catalog")
	}
}

func TestDisplayIndexToChildIndex(t *testing.T) {
	cases := []struct {
		display int
		atRoot  bool
		want    int
	}{
		{0, true, 0},
		{2, true, 2},
		{1, false, 0},
		{3, false, 2},
		{0, false, -1},
	}
	for _, tc := range cases {
		if got := displayIndexToChildIndex(tc.display, tc.atRoot); got != tc.want {
			t.Fatalf("displayIndexToChildIndex(%d, %v) = %d, want %d", tc.display, tc.atRoot, got, tc.want)
		}
	}
}
