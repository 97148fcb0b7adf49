package shadowops

import (
	"fmt"

	"github.com/arenablitz/arcade/internal/core"
	"github.com/arenablitz/arcade/internal/world"
)

var (
	backgroundBase = [3]uint8{10, 10, 30}

	playerColor = core.RGB(0, 255, 180)
	enemyColor  = core.RGB(255, 60, 60)
	textColor   = core.RGB(255, 255, 255)
	hintColor   = core.RGB(180, 180, 180)
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.backdrop.Paint(dst)
	vp := core.NewViewport(int(g.bounds.W), int(g.bounds.H), dst)

	g.state.Each(world.KindFaller, func(e *world.Entity) {
		r := vp.Project(e.Bounds)
		dst.FillRect(r, core.Cell{Rune: ' ', Bg: enemyColor})
		cx, _ := r.Center()
		dst.SetCell(cx, r.Bottom()-1, core.Cell{Rune: '▼', Fg: textColor, Bg: enemyColor})
	})

	pr := vp.Project(g.state.Player.Bounds)
	dst.FillRect(pr, core.Cell{Rune: ' ', Bg: playerColor})
	cx, _ := pr.Center()
	dst.SetCell(cx, pr.Y, core.Cell{Rune: '▲', Fg: core.RGB(0, 0, 0), Bg: playerColor})

	dst.DrawTextColor(vp.Column(10), vp.Line(10), fmt.Sprintf("Score: %d", g.state.Score), textColor)
	dst.DrawTextCentered(dst.Height()-1, "Left/Right or A/D to move. ESC to return to launcher.", hintColor)

	if g.state.GameOver {
		y := dst.Height()/2 - 2
		dst.DrawTextCentered(y, "Game Over", enemyColor)
		dst.DrawTextCentered(y+2, fmt.Sprintf("Score: %d", g.state.Score), textColor)
		dst.DrawTextCentered(y+3, "Press R to Restart or Q to Quit", textColor)
	}
}
