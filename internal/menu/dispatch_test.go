package menu

import (
	"testing"
)

func TestRoute(t *testing.T) {
	cases := []struct {
		name        string
		ev          Event
		previewOpen bool
		want        Op
	}{
		{"down press list", Event{Kind: KindPress, Key: KeyDown}, false, OpMoveDown},
		{"up press list", Event{Kind: KindPress, Key: KeyUp}, false, OpMoveUp},
		{"down repeat list", Event{Kind: KindRepeat, Key: KeyDown}, false, OpMoveDown},
		{"enter press list", Event{Kind: KindPress, Key: KeyEnter}, false, OpEnter},
		{"preview press list", Event{Kind: KindPress, Key: KeyPreview}, false, OpTogglePreview},
		{"down press preview", Event{Kind: KindPress, Key: KeyDown}, true, OpScrollPreviewDown},
		{"up press preview", Event{Kind: KindPress, Key: KeyUp}, true, OpScrollPreviewUp},
		{"down repeat preview", Event{Kind: KindRepeat, Key: KeyDown}, true, OpScrollPreviewDown},
		{"preview press preview", Event{Kind: KindPress, Key: KeyPreview}, true, OpTogglePreview},
		{"enter swallowed preview", Event{Kind: KindPress, Key: KeyEnter}, true, OpNone},
		{"release ignored", Event{Kind: KindRelease, Key: KeyDown}, false, OpNone},
		{"other key ignored", Event{Kind: KindPress, Key: KeyOther}, false, OpNone},
	}
	for _, tc := range cases {
		if got := Route(tc.ev, tc.previewOpen); got != tc.want {
			t.Fatalf("%s: Route = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHandleResolvesLeafAction(t *testing.T) {
	c := NewController(sampleTree())
	c.Handle(Event{Kind: KindPress, Key: KeyDown}, nil) // onto z
	action, ok, err := c.Handle(Event{Kind: KindPress, Key: KeyEnter}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || inlineSource(t, action) != "echo z" {
		t.Fatalf("expected z resolved, got %#v", action)
	}
}

func TestHandleScrollsPreviewNotList(t *testing.T) {
	c := NewController(sampleTree())
	c.Handle(Event{Kind: KindPress, Key: KeyDown}, nil) // onto z (multi-line not needed for routing)
	if _, _, err := c.Handle(Event{Kind: KindPress, Key: KeyPreview}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.PreviewOpen() {
		t.Fatalf("expected preview open")
	}
	before, _ := c.Selection()
	c.Handle(Event{Kind: KindPress, Key: KeyDown}, nil)
	after, _ := c.Selection()
	if before != after {
		t.Fatalf("expected list selection frozen while preview open, %d → %d", before, after)
	}
	// Enter is swallowed while the preview is open.
	action, ok, err := c.Handle(Event{Kind: KindPress, Key: KeyEnter}, nil)
	if err != nil || ok || action != nil {
		t.Fatalf("expected enter swallowed, got %#v/%v/%v", action, ok, err)
	}
}
