package menu

import (
	"testing"

	"github.com/scriptdeck/scriptdeck/internal/catalog"
)

// filterTree nests a leaf two levels deep to prove the search walks the
// whole tree, not just the current level.
func filterTree() *catalog.Tree {
	b := catalog.NewBuilder()
	apps := b.Group(catalog.Root, "Applications")
	editors := b.Group(apps, "Editors Setup")
	b.Add(editors, catalog.Item{Name: "Neovim", Action: catalog.InlineScript{Source: "echo nvim"}})
	b.Add(editors, catalog.Item{Name: "Kitty", Action: catalog.InlineScript{Source: "echo kitty"}})
	b.Add(apps, catalog.Item{Name: "Rofi", Action: catalog.InlineScript{Source: "echo rofi"}})
	b.Add(catalog.Root, catalog.Item{Name: "System Update", Action: catalog.InlineScript{Source: "echo update"}})
	return b.Build()
}

func names(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestFilterMatchesLeavesOnly(t *testing.T) {
	// "Setup" appears only in the group name "Editors Setup" and must
	// not produce a result. "Update" names a leaf and must.
	if got := Filter(filterTree(), "Setup"); len(got) != 0 {
		t.Fatalf("expected group names excluded, got %v", names(got))
	}
	got := Filter(filterTree(), "Update")
	if len(got) != 1 || got[0].Name != "System Update" {
		t.Fatalf("expected [System Update], got %v", names(got))
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	got := Filter(filterTree(), "neoVIM")
	if len(got) != 1 || got[0].Name != "Neovim" {
		t.Fatalf("expected case-insensitive match, got %v", names(got))
	}
}

func TestFilterSubstringMatchesAnywhere(t *testing.T) {
	got := Filter(filterTree(), "ofi")
	if len(got) != 1 || got[0].Name != "Rofi" {
		t.Fatalf("expected substring match, got %v", names(got))
	}
}

func TestFilterResultsAreSorted(t *testing.T) {
	got := Filter(filterTree(), "i")
	want := []string{"Kitty", "Neovim", "Rofi"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, names(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("expected sorted order %v, got %v", want, names(got))
		}
	}
}

func TestFilterNoMatchReturnsEmpty(t *testing.T) {
	if got := Filter(filterTree(), "zzz"); len(got) != 0 {
		t.Fatalf("expected no results, got %v", names(got))
	}
}

func TestFilterEmptyQueryReachesAllLeaves(t *testing.T) {
	got := Filter(filterTree(), "")
	if len(got) != 4 {
		t.Fatalf("expected all 4 leaves, got %v", names(got))
	}
}
