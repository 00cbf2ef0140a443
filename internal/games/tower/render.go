package tower

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tower-time/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	PlatformChar = '─'
	CurrentChar  = '═'
	WallChar     = '║'
	MarkerChar   = '►'
)

// Screen layout
const (
	headerRows   = 2  // Title, stats
	footerRows   = 1  // Instructions
	labelWidth   = 4  // Marker + floor number + space
	maxPlatformW = 60 // Platform cells between the walls
	minPlatformW = 10
)

// line is one row of overlay text.
type line struct {
	text  string
	color core.Color
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawHeader(dst)

	if !g.drawTower(dst) {
		dst.DrawTextCenteredColored(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	switch g.mode {
	case ModeStart:
		g.drawStartOverlay(dst)
	case ModeEnded:
		g.drawEndOverlay(dst)
	case ModePlaying:
		dst.DrawTextCenteredColored(dst.Height()-1,
			"Use the arrow keys to move. Climb higher to earn more coins!", core.ColorGray)
	}
}

// drawHeader renders the title and the stats bar.
func (g *Game) drawHeader(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "TOWER OF TIME", core.ColorBrightYellow)

	timeColor := core.ColorBrightWhite
	if g.mode == ModePlaying && g.timeLeft <= 10 {
		timeColor = core.ColorBrightRed
	}

	// Floor and record are shown 1-based
	segments := []line{
		{fmt.Sprintf("Floor: %d", g.floor+1), core.ColorBrightCyan},
		{fmt.Sprintf("Time: %ds", g.timeLeft), timeColor},
		{fmt.Sprintf("Coins: $%d", g.coins), core.ColorYellow},
		{fmt.Sprintf("Record: %d", g.highScore+1), core.ColorBrightMagenta},
	}

	const gap = 3
	total := gap * (len(segments) - 1)
	for _, s := range segments {
		total += utf8.RuneCountInString(s.text)
	}

	x := (dst.Width() - total) / 2
	for _, s := range segments {
		dst.DrawTextColored(x, 1, s.text, s.color)
		x += utf8.RuneCountInString(s.text) + gap
	}
}

// visibleFloors returns the lowest and highest floor that fit on screen.
// The window always contains the current floor.
func (g *Game) visibleFloors(rows int) (lo, hi int) {
	height := g.cfg.Tower.Height
	if rows >= height {
		return 0, height - 1
	}
	lo = core.Clamp(g.floor-rows/2, 0, height-rows)
	return lo, lo + rows - 1
}

// platformGeometry returns the x of the first platform cell and the platform width.
func platformGeometry(screenW int) (left, width int) {
	width = core.Clamp(screenW-labelWidth-4, minPlatformW, maxPlatformW)
	total := labelWidth + width + 2
	left = (screenW-total)/2 + labelWidth + 1
	return left, width
}

// playerColumn maps a percentage position onto a platform.
func playerColumn(left, width, x int) int {
	return left + x*(width-1)/100
}

// drawTower renders the floors. Returns false if nothing fits.
func (g *Game) drawTower(dst *core.Screen) bool {
	rows := dst.Height() - headerRows - footerRows
	if rows < 1 || dst.Width() < labelWidth+minPlatformW+2 {
		return false
	}

	lo, hi := g.visibleFloors(rows)
	left, width := platformGeometry(dst.Width())

	for i := hi; i >= lo; i-- {
		y := headerRows + (hi - i)
		current := i == g.floor

		labelColor, platChar, platColor := core.ColorGray, PlatformChar, core.ColorGray
		if current {
			labelColor, platChar, platColor = core.ColorBrightYellow, CurrentChar, core.ColorYellow
			dst.SetColored(left-labelWidth-1, y, MarkerChar, core.ColorBrightYellow)
		}

		dst.DrawTextColored(left-labelWidth, y, fmt.Sprintf("%2d", i+1), labelColor)
		dst.DrawHLine(left, y, width, platChar, platColor)

		if current {
			dst.SetColored(playerColumn(left, width, g.x), y, PlayerChar, core.ColorBrightGreen)
		}
	}

	dst.DrawVLine(left-1, headerRows, hi-lo+1, WallChar, core.ColorBlue)
	dst.DrawVLine(left+width, headerRows, hi-lo+1, WallChar, core.ColorBlue)
	return true
}

// drawStartOverlay renders the welcome screen.
func (g *Game) drawStartOverlay(dst *core.Screen) {
	drawOverlay(dst, "Welcome!", []line{
		{"Climb the tower and collect coins!", core.ColorDefault},
		{fmt.Sprintf("You have %d seconds.", g.cfg.Timer.GameTime), core.ColorDefault},
		{"", core.ColorDefault},
		{"Up / Space   climb", core.ColorBrightCyan},
		{"Down         descend", core.ColorBrightCyan},
		{"Left/Right   move", core.ColorBrightCyan},
		{"", core.ColorDefault},
		{"The higher you climb, the more coins you get!", core.ColorYellow},
		{"", core.ColorDefault},
		{"Press Enter to start", core.ColorBrightGreen},
	})
}

// drawEndOverlay renders the results screen.
func (g *Game) drawEndOverlay(dst *core.Screen) {
	lines := []line{
		{fmt.Sprintf("Floor reached: %d", g.floor+1), core.ColorBrightCyan},
		{fmt.Sprintf("Coins earned: $%d", g.coins), core.ColorYellow},
	}
	if g.NewRecord() {
		lines = append(lines, line{"NEW RECORD!", core.ColorBrightMagenta})
	}
	lines = append(lines,
		line{"", core.ColorDefault},
		line{"Press Enter or R to play again", core.ColorBrightGreen},
	)
	drawOverlay(dst, "GAME OVER", lines)
}

// drawOverlay draws a titled message box in the center of the screen.
// Lines are centered on the screen, which keeps them inside the box.
func drawOverlay(dst *core.Screen, title string, lines []line) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l.text))
	}
	boxW += 4
	boxH := len(lines) + 4

	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorBrightWhite)

	for i, l := range lines {
		if l.color == core.ColorDefault {
			dst.DrawTextCentered(box.Y+3+i, l.text)
			continue
		}
		dst.DrawTextCenteredColored(box.Y+3+i, l.text, l.color)
	}
}
