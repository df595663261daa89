package menu

import (
	"sort"
	"strings"

	"github.com/scriptdeck/scriptdeck/internal/catalog"
)

// Filter walks the whole tree and collects the leaf items whose name
// contains query, case-insensitively. Group nodes never match, even
// when their name contains the query. Results are sorted by name so the
// displayed order is stable regardless of traversal order.
//
// An empty query is handled upstream (filter inactive); passing it here
// returns every leaf, which no caller relies on.
func Filter(tree *catalog.Tree, query string) []catalog.Item {
	needle := strings.ToLower(query)
	var items []catalog.Item
	stack := []catalog.NodeID{catalog.Root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !tree.HasChildren(id) {
			if id == catalog.Root {
				// An empty catalog has a childless root; the
				// placeholder itself is never a result.
				continue
			}
			item := tree.Item(id)
			if strings.Contains(strings.ToLower(item.Name), needle) {
				items = append(items, item)
			}
			continue
		}
		stack = append(stack, tree.Children(id)...)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items
}
