package game

import (
	"fmt"
	"image/color"

	"github.com/glimmergames/lanternmaze/internal/core/vision"
	"github.com/glimmergames/lanternmaze/internal/render"
)

var (
	colorBackground = color.NRGBA{8, 8, 12, 255}
	colorPath       = color.NRGBA{150, 140, 120, 255}
	colorWall       = color.NRGBA{70, 55, 45, 255}
	colorExit       = color.NRGBA{90, 200, 120, 255}
	colorPlayer     = color.NRGBA{240, 220, 160, 255}
	colorText       = color.NRGBA{255, 255, 255, 255}
)

// Draw renders the current frame. The scene snapshot is internally
// consistent: maze, player position and light map all come from the state
// left by this frame's Update.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(colorBackground)

	switch g.Session.Phase() {
	case PhaseIdle:
		g.drawMenu(screen)
	case PhasePlaying:
		g.drawScene(screen)
		g.drawHUD(screen)
	case PhaseWon:
		g.drawScene(screen)
		g.drawBanner(screen, "You found the way out!", "Press R to play again")
	case PhaseLost:
		g.drawScene(screen)
		g.drawBanner(screen, "The lantern went dark.", "Press R to try again")
	}
}

// drawMenu renders the difficulty selection screen.
func (g *Game) drawMenu(screen render.Image) {
	g.drawCenteredText(screen, "L A N T E R N M A Z E", g.ScreenHeight/3)
	g.drawCenteredText(screen, "Reach the exit before the light runs out", g.ScreenHeight/3+24)

	y := g.ScreenHeight / 2
	for i, id := range g.menu {
		if i >= 3 {
			break
		}
		d := g.cfg.Difficulties[id]
		line := fmt.Sprintf("%d) %-8s %3ds on the clock", i+1, id, d.TimeLimitSeconds)
		g.drawCenteredText(screen, line, y)
		y += 20
	}
}

// drawScene renders the maze, the lantern light and the player.
func (g *Game) drawScene(screen render.Image) {
	m := g.Session.Maze()
	p := g.Session.Player()
	if m == nil || p == nil {
		return
	}

	cell := g.cfg.CellSize
	px, py := p.Position()
	radius := g.Session.Difficulty().LightRadius

	lm := vision.Compute(m, px, py, radius, cell)
	exit := m.Exit()

	for cy := lm.MinY; cy < lm.MinY+lm.Height; cy++ {
		for cx := lm.MinX; cx < lm.MinX+lm.Width; cx++ {
			v := lm.Intensity(cx, cy)
			if v <= 0 {
				continue
			}
			base := colorPath
			if m.IsWall(cx, cy) {
				base = colorWall
			} else if cx == exit.X && cy == exit.Y {
				base = colorExit
			}
			g.Renderer.FillRect(screen,
				float32(float64(cx)*cell), float32(float64(cy)*cell),
				float32(cell), float32(cell),
				shade(base, v))
		}
	}

	boundary := vision.CastBoundary(m, px, py, radius, cell, g.cfg.RayCount, g.cfg.RayStep)
	g.drawLightGlow(screen, px, py, boundary)

	g.Renderer.FillCircle(screen, float32(px), float32(py), float32(p.Radius()), colorPlayer)
}

// drawLightGlow overlays the lit-region polygon as a soft triangle fan
// centered on the player.
func (g *Game) drawLightGlow(screen render.Image, px, py float64, boundary []vision.Point) {
	if len(boundary) < 3 {
		return
	}
	if g.whiteImg == nil {
		g.whiteImg = g.Renderer.NewImage(3, 3)
		g.whiteImg.Fill(color.White)
	}

	const centerAlpha = 0.20

	vertices := make([]render.Vertex, 0, len(boundary)+1)
	vertices = append(vertices, render.Vertex{
		DstX: float32(px), DstY: float32(py),
		SrcX: 1, SrcY: 1,
		ColorR: 1, ColorG: 0.95, ColorB: 0.8, ColorA: centerAlpha,
	})
	for _, b := range boundary {
		vertices = append(vertices, render.Vertex{
			DstX: float32(b.X), DstY: float32(b.Y),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 0.95, ColorB: 0.8, ColorA: 0,
		})
	}

	n := len(boundary)
	indices := make([]uint16, 0, n*3)
	for i := 1; i < n; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	indices = append(indices, 0, uint16(n), 1)

	screen.DrawTriangles(vertices, indices, g.whiteImg, &render.DrawTrianglesOptions{AntiAlias: true})
}

// drawHUD renders the timer and difficulty readout.
func (g *Game) drawHUD(screen render.Image) {
	hud := fmt.Sprintf("Time %3ds   %s", g.Session.TimeRemaining(), g.Session.DifficultyID())
	g.Renderer.DrawText(screen, hud, 8, 8, colorText, 1.0)
}

// drawBanner renders an end-of-game message over the scene.
func (g *Game) drawBanner(screen render.Image, title, hint string) {
	g.drawCenteredText(screen, title, g.ScreenHeight/2-20)
	g.drawCenteredText(screen, hint, g.ScreenHeight/2)
}

func (g *Game) drawCenteredText(screen render.Image, text string, y int) {
	w, _ := g.Renderer.MeasureText(text, 1.0)
	g.Renderer.DrawText(screen, text, (g.ScreenWidth-w)/2, y, colorText, 1.0)
}

// shade scales a color's channels by a light intensity in [0, 1].
func shade(c color.NRGBA, v float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * v),
		G: uint8(float64(c.G) * v),
		B: uint8(float64(c.B) * v),
		A: c.A,
	}
}
