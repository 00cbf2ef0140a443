package tower

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vovakirdan/tower-time/internal/core"
)

// findRune returns the first position of r on the screen, or (-1, -1).
func findRune(s *core.Screen, r rune) (int, int) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune == r {
				return x, y
			}
		}
	}
	return -1, -1
}

func countRune(s *core.Screen, r rune) int {
	return strings.Count(s.String(), string(r))
}

// rowText returns screen row y as plain text.
func rowText(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

// floorRow returns the screen row labelled with the 1-based floor number.
func floorRow(t *testing.T, s *core.Screen, label string) int {
	t.Helper()
	left, _ := platformGeometry(s.Width())
	for y := headerRows; y < s.Height()-footerRows; y++ {
		if strings.TrimSpace(string([]rune(rowText(s, y))[left-labelWidth:left-2])) == label {
			return y
		}
	}
	t.Fatalf("no row labelled %q:\n%s", label, s.String())
	return -1
}

func renderPlaying(t *testing.T, w, h int, climbs int) (*Game, *core.Screen) {
	t.Helper()
	g := newTestGame(t, nil)
	g.StartGame()
	press(g, core.ActionUp, climbs)
	s := core.NewScreen(w, h)
	g.Render(s)
	return g, s
}

func TestRenderFloorOrder(t *testing.T) {
	_, s := renderPlaying(t, 80, 24, 0)

	top := floorRow(t, s, "20")
	bottom := floorRow(t, s, "1")
	if top != headerRows {
		t.Errorf("floor 20 drawn at row %d, expected %d", top, headerRows)
	}
	if bottom != headerRows+19 {
		t.Errorf("floor 1 drawn at row %d, expected %d", bottom, headerRows+19)
	}
}

func TestRenderPlayerOnCurrentFloor(t *testing.T) {
	_, s := renderPlaying(t, 80, 24, 4)

	if n := countRune(s, PlayerChar); n != 1 {
		t.Fatalf("expected exactly one player glyph, got %d", n)
	}

	_, py := findRune(s, PlayerChar)
	if row := floorRow(t, s, "5"); py != row {
		t.Errorf("player on row %d, expected floor 5 row %d", py, row)
	}

	left, _ := platformGeometry(s.Width())
	cell := s.GetCell(left, py)
	if cell.Rune != CurrentChar || cell.Color != core.ColorYellow {
		t.Errorf("current floor should be highlighted, got %+v", cell)
	}
	if s.GetCell(left-labelWidth-1, py).Rune != MarkerChar {
		t.Error("current floor should carry the marker")
	}
	if other := floorRow(t, s, "4"); s.GetCell(left, other).Rune != PlatformChar {
		t.Errorf("other floors should use plain platform, got %q", s.GetCell(left, other).Rune)
	}
}

func TestRenderPlayerColumnFollowsPosition(t *testing.T) {
	g, s := renderPlaying(t, 80, 24, 0)
	startX, _ := findRune(s, PlayerChar)

	press(g, core.ActionLeft, 10)
	g.Render(s)
	leftX, _ := findRune(s, PlayerChar)

	press(g, core.ActionRight, 10)
	g.Render(s)
	rightX, _ := findRune(s, PlayerChar)

	if !(leftX < startX && startX < rightX) {
		t.Errorf("columns should order left < start < right, got %d, %d, %d", leftX, startX, rightX)
	}

	left, width := platformGeometry(s.Width())
	if leftX < left || rightX >= left+width {
		t.Errorf("player left the platform: [%d, %d] vs platform [%d, %d)", leftX, rightX, left, left+width)
	}
}

func TestRenderHeader(t *testing.T) {
	slots := newFakeSlots()
	slots.values[recordKey] = "4"
	g := newTestGame(t, slots)
	g.StartGame()
	press(g, core.ActionUp, 2)
	g.Tick()

	s := core.NewScreen(80, 24)
	g.Render(s)
	header := rowText(s, 1)

	for _, want := range []string{"Floor: 3", "Time: 59s", "Coins: $30", "Record: 5"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q missing %q", header, want)
		}
	}
	if !strings.Contains(rowText(s, 0), "TOWER OF TIME") {
		t.Errorf("title missing: %q", rowText(s, 0))
	}
}

func TestRenderStartOverlay(t *testing.T) {
	g := newTestGame(t, nil)
	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.String(), "Press Enter to start") {
		t.Errorf("start overlay missing:\n%s", s.String())
	}
	if strings.Contains(s.String(), "GAME OVER") {
		t.Error("start screen should not show the end overlay")
	}
}

func TestRenderEndOverlay(t *testing.T) {
	slots := newFakeSlots()
	slots.values[recordKey] = "5"
	g := newTestGame(t, slots)
	s := core.NewScreen(80, 24)

	playSession(g, 3)
	g.Render(s)
	out := s.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Floor reached: 4") {
		t.Errorf("end overlay missing results:\n%s", out)
	}
	if !strings.Contains(out, "Coins earned: $60") {
		t.Errorf("end overlay missing coins:\n%s", out)
	}
	if strings.Contains(out, "NEW RECORD!") {
		t.Error("worse session should not show NEW RECORD!")
	}

	playSession(g, 9)
	g.Render(s)
	if !strings.Contains(s.String(), "NEW RECORD!") {
		t.Errorf("record session should show NEW RECORD!:\n%s", s.String())
	}
}

func TestRenderPlayingFooter(t *testing.T) {
	_, s := renderPlaying(t, 80, 24, 0)
	if !strings.Contains(rowText(s, 23), "arrow keys") {
		t.Errorf("footer missing instructions: %q", rowText(s, 23))
	}
}

func TestRenderViewportKeepsPlayerVisible(t *testing.T) {
	tests := []struct {
		name   string
		climbs int
	}{
		{"ground", 0},
		{"middle", 10},
		{"top", 19},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, s := renderPlaying(t, 80, 12, tc.climbs)

			_, py := findRune(s, PlayerChar)
			if py < 0 {
				t.Fatalf("player not visible:\n%s", s.String())
			}
			label := []rune(rowText(s, py))
			left, _ := platformGeometry(s.Width())
			if got := strings.TrimSpace(string(label[left-labelWidth : left-2])); got != itoa(tc.climbs+1) {
				t.Errorf("player row labelled %q, expected %d", got, tc.climbs+1)
			}
		})
	}
}

func itoa(n int) string {
	return FormatRecord(n)
}

func TestVisibleFloors(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartGame()

	if lo, hi := g.visibleFloors(40); lo != 0 || hi != 19 {
		t.Errorf("tall screen window = [%d, %d], expected [0, 19]", lo, hi)
	}

	press(g, core.ActionUp, 19)
	if lo, hi := g.visibleFloors(8); lo != 12 || hi != 19 {
		t.Errorf("top window = [%d, %d], expected [12, 19]", lo, hi)
	}
}

func TestRenderFitsDefaultTerminal(t *testing.T) {
	cfg := core.DefaultConfig()

	// The host keeps the last row for its help bar
	_, s := renderPlaying(t, cfg.ScreenW, cfg.ScreenH-1, 0)

	if top := floorRow(t, s, "20"); top != headerRows {
		t.Errorf("floor 20 drawn at row %d, expected %d", top, headerRows)
	}
	if bottom := floorRow(t, s, "1"); bottom != headerRows+19 {
		t.Errorf("floor 1 drawn at row %d, expected %d", bottom, headerRows+19)
	}
	if !strings.Contains(rowText(s, s.Height()-1), "arrow keys") {
		t.Errorf("footer should stay on the last row: %q", rowText(s, s.Height()-1))
	}
}

func TestRenderWalls(t *testing.T) {
	_, s := renderPlaying(t, 80, 24, 0)
	left, width := platformGeometry(s.Width())

	for y := headerRows; y < headerRows+20; y++ {
		for _, x := range []int{left - 1, left + width} {
			if cell := s.GetCell(x, y); cell.Rune != WallChar || cell.Color != core.ColorBlue {
				t.Fatalf("expected wall at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
	if s.GetCell(left-1, headerRows+20).Rune == WallChar {
		t.Error("walls should stop below floor 1")
	}
}

func TestRenderOverlayInsideBox(t *testing.T) {
	for _, w := range []int{80, 81} {
		g := newTestGame(t, nil)
		s := core.NewScreen(w, 23)
		g.Render(s)

		boxL, _ := findRune(s, '┌')
		boxR, _ := findRune(s, '┐')
		if boxL < 0 || boxR <= boxL {
			t.Fatalf("width %d: overlay box not drawn:\n%s", w, s.String())
		}

		for _, text := range []string{
			"Welcome!",
			"Climb the tower and collect coins!",
			"The higher you climb, the more coins you get!",
			"Press Enter to start",
		} {
			x, y := findText(s, text)
			if y < 0 {
				t.Fatalf("width %d: %q not drawn:\n%s", w, text, s.String())
			}
			if x <= boxL || x+utf8.RuneCountInString(text) > boxR {
				t.Errorf("width %d: %q at [%d, %d) leaves box (%d, %d)",
					w, text, x, x+utf8.RuneCountInString(text), boxL, boxR)
			}
		}

		x, y := findText(s, "Climb the tower")
		if c := s.GetCell(x, y).Color; c != core.ColorDefault {
			t.Errorf("plain overlay line should be uncolored, got %v", c)
		}
		x, y = findText(s, "Press Enter")
		if c := s.GetCell(x, y).Color; c != core.ColorBrightGreen {
			t.Errorf("prompt color = %v, expected bright green", c)
		}
	}
}

// findText returns the column and row where text starts, or (-1, -1).
func findText(s *core.Screen, text string) (int, int) {
	for y, row := range strings.Split(s.String(), "\n") {
		if i := strings.Index(row, text); i >= 0 {
			return utf8.RuneCountInString(row[:i]), y
		}
	}
	return -1, -1
}

func TestRenderTooSmall(t *testing.T) {
	_, s := renderPlaying(t, 30, 3, 0)
	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected size warning:\n%s", s.String())
	}
}
