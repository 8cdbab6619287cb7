package tape

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/deskcalc/pkg/theme"
)

func TestPushAndEntries(t *testing.T) {
	tp := New(4)
	tp.Push("2+3", "5")
	tp.Push("10/4", "2.5")

	got := tp.Entries()
	if len(got) != 2 {
		t.Fatalf("Len = %d, want 2", len(got))
	}
	if got[0].Expr != "2+3" || got[0].Result != "5" {
		t.Errorf("first entry = %+v, want 2+3 = 5", got[0])
	}
	if got[1].Expr != "10/4" || got[1].Result != "2.5" {
		t.Errorf("second entry = %+v, want 10/4 = 2.5", got[1])
	}
}

func TestPushEvictsOldest(t *testing.T) {
	tp := New(2)
	tp.Push("1+1", "2")
	tp.Push("2+2", "4")
	tp.Push("3+3", "6")

	got := tp.Entries()
	if len(got) != 2 {
		t.Fatalf("Len = %d, want 2", len(got))
	}
	if got[0].Expr != "2+2" {
		t.Errorf("oldest entry = %q, want 2+2", got[0].Expr)
	}
	if got[1].Expr != "3+3" {
		t.Errorf("newest entry = %q, want 3+3", got[1].Expr)
	}
}

func TestNewClampsCap(t *testing.T) {
	tp := New(0)
	tp.Push("1", "1")
	tp.Push("2", "2")
	if tp.Len() != 1 {
		t.Errorf("Len = %d, want 1 after cap clamp", tp.Len())
	}
}

func TestClear(t *testing.T) {
	tp := New(4)
	tp.Push("2+3", "5")
	tp.Clear()
	if tp.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", tp.Len())
	}
}

func TestRenderEmpty(t *testing.T) {
	tp := New(4)
	out := tp.Render(theme.Get("default"), 24)
	if !strings.Contains(out, "no history") {
		t.Errorf("empty tape render = %q, want placeholder", out)
	}
}

func TestRenderLinesNewestLast(t *testing.T) {
	tp := New(4)
	tp.Push("2+3", "5")
	tp.Push("7*6", "42")

	out := tp.Render(theme.Get("default"), 24)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("render produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "2+3") || !strings.Contains(lines[1], "7*6") {
		t.Errorf("render order wrong: %q", out)
	}
}

func TestRenderTruncatesLongExpr(t *testing.T) {
	tp := New(1)
	tp.Push(strings.Repeat("1+", 40)+"1", "41")

	out := tp.Render(theme.Get("default"), 20)
	if !strings.Contains(out, "…") {
		t.Errorf("expected truncated expression in %q", out)
	}
	if !strings.Contains(out, "41") {
		t.Errorf("result missing from %q", out)
	}
}
