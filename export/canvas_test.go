package export

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func newTestCanvas() (*Canvas, *recorder) {
	rec := &recorder{}
	c := NewCanvas(rec)
	c.NewPage(nil)
	rec.reset()
	return c, rec
}

func TestNewPageBackground(t *testing.T) {
	rec := &recorder{}
	c := NewCanvas(rec)

	c.NewPage(nil)
	bg := Color{1, 2, 3}
	c.NewPage(&bg)

	want := []drawOp{
		{Op: "page"},
		{Op: "rect", Rect: Rect{0, 0, 297, 210}, Paint: filled(Navy)},
		{Op: "page"},
		{Op: "rect", Rect: Rect{0, 0, 297, 210}, Paint: filled(bg)},
	}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
	if c.Pages() != 2 {
		t.Errorf("Pages() = %d, want 2", c.Pages())
	}
}

func TestNewPageResetsCursor(t *testing.T) {
	c, _ := newTestCanvas()
	c.BulletAt("x", 25, 150, "")
	c.NewPage(nil)
	if x, y := c.Cursor(); x != Margin || y != Margin {
		t.Errorf("cursor after NewPage = (%g, %g), want (%g, %g)", x, y, Margin, Margin)
	}
}

func TestStatTile(t *testing.T) {
	c, rec := newTestCanvas()
	c.Stat(40, 55, "50", "Test Cases")

	want := []drawOp{
		{Op: "rect", Rect: Rect{40, 55, 70, 50}, Paint: filled(Color{40, 40, 60})},
		{Op: "cell", Rect: Rect{40, 63, 70, 15}, Text: "50", Style: textStyle(Helvetica, true, 28, Color{255, 107, 107}), Align: AlignCenter},
		{Op: "cell", Rect: Rect{40, 85, 70, 10}, Text: "Test Cases", Style: textStyle(Helvetica, false, 11, Gray(150)), Align: AlignCenter},
	}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("stat tile mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyBox(t *testing.T) {
	c, rec := newTestCanvas()
	c.Box(20, 70, 125, 70, "Bull Markets (Greed)", nil)

	want := []drawOp{
		{Op: "rect", Rect: Rect{20, 70, 125, 70}, Paint: framed(Color{40, 40, 60}, Color{80, 80, 100})},
		{Op: "cell", Rect: Rect{25, 75, 115, 8}, Text: "Bull Markets (Greed)", Style: textStyle(Helvetica, true, 14, Cyan), Align: AlignLeft},
	}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("empty box mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxItems(t *testing.T) {
	c, rec := newTestCanvas()
	c.Box(152, 50, 125, 75, "On-Chain", []string{"a", "b", "c"})

	dots := rec.only("ellipse")
	if len(dots) != 3 {
		t.Fatalf("got %d dots, want 3", len(dots))
	}
	cells := rec.only("cell")[1:]
	for i, cell := range cells {
		row := 50 + 18 + 7*float64(i)
		if want := (Rect{166, row, 105, 6}); cell.Rect != want {
			t.Errorf("item %d cell = %+v, want %+v", i, cell.Rect, want)
		}
		if want := (Rect{160, row + 2, 3, 3}); dots[i].Rect != want {
			t.Errorf("item %d dot = %+v, want %+v", i, dots[i].Rect, want)
		}
	}
}

func TestValueRow(t *testing.T) {
	c, rec := newTestCanvas()
	c.ValueRow("Neutral (50)", "0.345% fee", Amber, 100)

	want := []drawOp{
		{Op: "rect", Rect: Rect{30, 100, 237, 18}, Paint: filled(Color{40, 40, 60})},
		{Op: "cell", Rect: Rect{35, 104, 100, 10}, Text: "Neutral (50)", Style: textStyle(Helvetica, false, 14, Gray(180)), Align: AlignLeft},
		{Op: "cell", Rect: Rect{200, 103, 60, 10}, Text: "0.345% fee", Style: textStyle(Helvetica, true, 18, Amber), Align: AlignRight},
	}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("value row mismatch (-want +got):\n%s", diff)
	}
}

func TestCode(t *testing.T) {
	c, rec := newTestCanvas()
	c.Code("forge test", 65)

	want := []drawOp{
		{Op: "rect", Rect: Rect{40, 65, 217, 14}, Paint: framed(Color{20, 20, 30}, Color{60, 60, 80})},
		{Op: "cell", Rect: Rect{40, 68, 217, 8}, Text: "forge test", Style: textStyle(Courier, false, 12, Cyan), Align: AlignCenter},
	}
	if diff := cmp.Diff(want, rec.ops); diff != "" {
		t.Errorf("code strip mismatch (-want +got):\n%s", diff)
	}
}

func TestPageNumberKeepsCursor(t *testing.T) {
	c, rec := newTestCanvas()
	c.MoveTo(25, 115)
	c.PageNumber(6)

	if x, y := c.Cursor(); x != 25 || y != 115 {
		t.Errorf("cursor = (%g, %g), want (25, 115)", x, y)
	}
	want := drawOp{Op: "cell", Rect: Rect{280, 195, 10, 10}, Text: "6", Style: textStyle(Helvetica, false, 10, Gray(150)), Align: AlignRight}
	if diff := cmp.Diff([]drawOp{want}, rec.ops); diff != "" {
		t.Errorf("page number mismatch (-want +got):\n%s", diff)
	}
}

func TestKickerUppercase(t *testing.T) {
	c, rec := newTestCanvas()
	c.Kicker("Uniswap v4 Hook", 40)

	cells := rec.only("cell")
	if len(cells) != 1 || cells[0].Text != "UNISWAP V4 HOOK" {
		t.Fatalf("kicker cells = %+v", cells)
	}
	if cells[0].Rect != (Rect{20, 40, 257, 10}) || cells[0].Align != AlignCenter {
		t.Errorf("kicker placed at %+v align %s", cells[0].Rect, cells[0].Align)
	}
}

func TestBulletsFlow(t *testing.T) {
	c, rec := newTestCanvas()
	c.MoveTo(25, 115)
	for _, s := range []string{"one", "two", "three"} {
		c.Bullet(s, 25, "")
	}

	dots := rec.only("ellipse")
	for i, dot := range dots {
		y := 115 + 10*float64(i)
		if want := (Rect{25, y + 3, 4, 4}); dot.Rect != want {
			t.Errorf("dot %d = %+v, want %+v", i, dot.Rect, want)
		}
	}
	if x, y := c.Cursor(); x != Margin || y != 145 {
		t.Errorf("cursor = (%g, %g), want (%g, 145)", x, y, Margin)
	}
}

func TestBodyAdvancesCursor(t *testing.T) {
	c, rec := newTestCanvas()
	c.Body("short", 20, 45, 14)

	blocks := rec.only("block")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	if _, y := c.Cursor(); y != 45+blocks[0].Rect.H {
		t.Errorf("cursor y = %g, want %g", y, 45+blocks[0].Rect.H)
	}
}

func TestSplitHighlight(t *testing.T) {
	tests := []struct {
		text, hl          string
		pre, match, post string
		ok                bool
	}{
		{"Bounded fees: Always", "Bounded fees", "", "Bounded fees", ": Always", true},
		{"a fee b", "fee", "a ", "fee", " b", true},
		{"fee fee", "fee", "", "", "", false},
		{"plain", "", "", "", "", false},
		{"plain", "zzz", "", "", "", false},
	}
	for _, tt := range tests {
		pre, match, post, ok := SplitHighlight(tt.text, tt.hl)
		if ok != tt.ok || pre != tt.pre || match != tt.match || post != tt.post {
			t.Errorf("SplitHighlight(%q, %q) = %q, %q, %q, %v", tt.text, tt.hl, pre, match, post, ok)
		}
	}
}

var wordGen = rapid.StringMatching(`[A-Za-z0-9 .:%]{0,12}`)

func TestBulletHighlightSpans(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pre := wordGen.Draw(t, "pre")
		hl := rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "hl")
		post := wordGen.Draw(t, "post")
		text := pre + hl + post
		if strings.Count(text, hl) != 1 {
			t.Skip("highlight repeats")
		}
		x := rapid.Float64Range(10, 150).Draw(t, "x")

		rec := &recorder{}
		c := NewCanvas(rec)
		c.NewPage(nil)
		c.MoveTo(x, 100)
		rec.reset()
		c.Bullet(text, x, hl)

		cells := rec.only("cell")
		if len(cells) != 3 {
			t.Fatalf("got %d spans, want 3", len(cells))
		}
		if cells[0].Text != pre || cells[1].Text != hl || cells[2].Text != post {
			t.Fatalf("spans %q %q %q, want %q %q %q", cells[0].Text, cells[1].Text, cells[2].Text, pre, hl, post)
		}
		if cells[1].Style != highlightStyle || cells[0].Style != bulletStyle || cells[2].Style != bulletStyle {
			t.Fatalf("span styles %+v %+v %+v", cells[0].Style, cells[1].Style, cells[2].Style)
		}
		if cells[0].Rect.X != x+8 {
			t.Fatalf("first span at %g, want %g", cells[0].Rect.X, x+8)
		}
		for i := 1; i < 3; i++ {
			if cells[i].Rect.X != cells[i-1].Rect.Right() {
				t.Fatalf("span %d starts at %g, previous ends at %g", i, cells[i].Rect.X, cells[i-1].Rect.Right())
			}
		}
	})
}

func TestBulletWithoutMatchIsPlain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := wordGen.Draw(t, "text")
		hl := rapid.OneOf(
			rapid.Just(""),
			rapid.Just("#"),
			wordGen,
		).Draw(t, "hl")
		if hl != "" && strings.Count(text, hl) == 1 {
			t.Skip("highlight matches once")
		}

		plain, withHL := &recorder{}, &recorder{}
		a, b := NewCanvas(plain), NewCanvas(withHL)
		a.MoveTo(25, 115)
		b.MoveTo(25, 115)
		a.Bullet(text, 25, "")
		b.Bullet(text, 25, hl)

		if diff := cmp.Diff(plain.ops, withHL.ops); diff != "" {
			t.Fatalf("highlight %q changed rendering of %q:\n%s", hl, text, diff)
		}
	})
}

func TestChipPacking(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9 .]{0,16}`), 1, 8).Draw(t, "items")
		start := rapid.Float64Range(0, 100).Draw(t, "x")

		rec := &recorder{}
		c := NewCanvas(rec)
		end := c.Chips(items, start, 120)

		rects := rec.only("rect")
		if len(rects) != len(items) {
			t.Fatalf("got %d chips, want %d", len(rects), len(items))
		}
		x := start
		for i, r := range rects {
			tw := rec.TextWidth(items[i], chipStyle.Font)
			if r.Rect.W < tw+12 {
				t.Fatalf("chip %d width %g < text width %g + padding", i, r.Rect.W, tw)
			}
			if r.Rect.X != x {
				t.Fatalf("chip %d at %g, want %g", i, r.Rect.X, x)
			}
			if i > 0 && r.Rect.Overlaps(rects[i-1].Rect) {
				t.Fatalf("chip %d overlaps chip %d", i, i-1)
			}
			x += r.Rect.W + 5
		}
		if end != x {
			t.Fatalf("Chips returned %g, want %g", end, x)
		}
	})
}

func TestChipReturnsAdvance(t *testing.T) {
	c, rec := newTestCanvas()
	adv := c.Chip("Foundry", 40, 120)
	rects := rec.only("rect")
	if len(rects) != 1 {
		t.Fatalf("got %d rects", len(rects))
	}
	if adv != rects[0].Rect.W+5 {
		t.Errorf("advance = %g, want %g", adv, rects[0].Rect.W+5)
	}
	if rects[0].Paint.Stroke == nil || *rects[0].Paint.Stroke != Coral {
		t.Errorf("chip outline = %v, want coral", rects[0].Paint.Stroke)
	}
}
