package cyberninja

import (
	"fmt"

	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/world"
)

var (
	backgroundBase = [3]uint8{10, 10, 40}

	playerColor   = core.RGB(0, 255, 200)
	headbandColor = core.RGB(0, 0, 255)
	enemyColor    = core.RGB(255, 80, 80)
	faceColor     = core.RGB(0, 0, 0)
	starColor     = core.RGB(255, 255, 0)
	titleColor    = core.RGB(0, 255, 200)
	uiColor       = core.RGB(180, 180, 180)
	alertColor    = core.RGB(255, 0, 0)
	textColor     = core.RGB(255, 255, 255)
)

// starGlyphs cycle to animate star rotation.
var starGlyphs = []rune{'✦', '✶', '✷', '✸', '✷', '✶'}

const starFramesPerGlyph = 8

// Render draws the current game state to the screen. It reads state only,
// so the star animation is derived from the frame counter.
func (g *Game) Render(dst *core.Screen) {
	g.backdrop.Paint(dst)
	vp := core.NewViewport(int(g.bounds.W), int(g.bounds.H), dst)

	glyph := starGlyphs[(g.state.Frame/starFramesPerGlyph)%len(starGlyphs)]
	g.state.Each(world.KindCollectible, func(e *world.Entity) {
		if e.Collected {
			return
		}
		r := vp.Project(e.Bounds)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.Set(x, y, glyph)
				dst.SetFg(x, y, starColor)
			}
		}
	})

	drawPlayer(dst, vp.Project(g.state.Player.Bounds))
	g.state.Each(world.KindPursuer, func(e *world.Entity) {
		drawEnemy(dst, vp.Project(e.Bounds))
	})

	g.drawHUD(dst, vp)

	if g.state.GameOver {
		drawCenteredMessage(dst,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d", g.state.Score),
			"Press R to Restart or Q to Quit",
		)
	}
}

// drawPlayer draws the ninja with a headband across the top row.
func drawPlayer(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, core.Cell{Rune: ' ', Bg: playerColor})
	for x := r.X; x < r.Right(); x++ {
		dst.SetCell(x, r.Y, core.Cell{Rune: '━', Fg: headbandColor, Bg: playerColor})
	}
}

// drawEnemy draws a red box with an angry face when there is room.
func drawEnemy(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, core.Cell{Rune: ' ', Bg: enemyColor})
	if r.W >= 4 {
		dst.SetCell(r.X+1, r.Y, core.Cell{Rune: '▘', Fg: faceColor, Bg: enemyColor})
		dst.SetCell(r.Right()-2, r.Y, core.Cell{Rune: '▝', Fg: faceColor, Bg: enemyColor})
	}
	if r.H >= 2 && r.W >= 3 {
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.SetCell(x, r.Bottom()-1, core.Cell{Rune: '─', Fg: faceColor, Bg: enemyColor})
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, vp core.Viewport) {
	left := vp.Column(10)

	dst.DrawTextCentered(vp.Line(40), "Cyber Ninja Assault", titleColor)
	dst.DrawTextColor(left, vp.Line(10), fmt.Sprintf("Score: %d", g.state.Score), uiColor)
	dst.DrawTextColor(left, vp.Line(10)+1, fmt.Sprintf("Stars: %d (Total: %d)", g.waveStars, g.totalStars), uiColor)

	level := fmt.Sprintf("Level: %d", g.state.Level)
	dst.DrawTextColor(min(vp.Column(g.bounds.W-100), dst.Width()-len(level)), vp.Line(10), level, uiColor)

	dst.DrawTextCentered(dst.Height()-1, "Use arrow keys or WASD to move. ESC to return to launcher.", uiColor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, score, hint string) {
	boxW := max(len(title), len(score), len(hint)) + 4
	boxH := 7
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' ', Fg: textColor, Bg: core.RGB(0, 0, 0)})
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, title, alertColor)
	dst.DrawTextCentered(box.Y+3, score, textColor)
	dst.DrawTextCentered(box.Y+5, hint, uiColor)
}
