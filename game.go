package icoview

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is what one tick of the host loop saw of the keyboard and mouse.
type input struct {
	cursorX, cursorY int
	pressed          bool // a tracked button went down this tick
	held             MouseButtons

	quit            bool
	moreAccuracy    bool
	lessAccuracy    bool
	toggleWhite     bool
	toggleYellow    bool
	toggleShading   bool
	toggleWireframe bool
}

func readInput() input {
	var in input
	in.cursorX, in.cursorY = ebiten.CursorPosition()
	in.pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.held |= MouseButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		in.held |= MouseButtonRight
	}

	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.moreAccuracy = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	in.lessAccuracy = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)
	in.toggleWhite = inpututil.IsKeyJustPressed(ebiten.KeyDigit1)
	in.toggleYellow = inpututil.IsKeyJustPressed(ebiten.KeyDigit2)
	in.toggleShading = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.toggleWireframe = inpututil.IsKeyJustPressed(ebiten.KeyW)
	return in
}

// Game hosts a Viewer in an ebiten window. It only repaints when the
// viewer asked for a redraw or the window changed size.
type Game struct {
	viewer   *Viewer
	renderer *Renderer
	cfg      Config

	width, height int
	initialized   bool
	resized       bool
	dirty         bool

	lastCursorX, lastCursorY int
	angles                   [3]int
}

func NewGame(cfg Config) *Game {
	cfg.MaxAccuracy = max(cfg.MaxAccuracy, cfg.Accuracy)
	g := &Game{
		viewer:   NewViewer(cfg),
		renderer: NewRenderer(),
		cfg:      cfg,
		dirty:    true,
	}
	g.renderer.Wireframe = cfg.Wireframe
	g.viewer.SetRedrawFunc(g.requestRedraw)
	g.viewer.Subscribe(func(axis Axis, angle int) {
		g.angles[axis] = angle
	})
	return g
}

func (g *Game) requestRedraw() {
	g.dirty = true
}

func (g *Game) Update() error {
	return g.handleInput(readInput())
}

func (g *Game) handleInput(in input) error {
	if in.quit {
		return ebiten.Termination
	}

	if in.pressed {
		g.viewer.MousePress(in.cursorX, in.cursorY)
	} else if in.held != 0 && (in.cursorX != g.lastCursorX || in.cursorY != g.lastCursorY) {
		g.viewer.MouseMove(in.cursorX, in.cursorY, in.held)
	}
	g.lastCursorX, g.lastCursorY = in.cursorX, in.cursorY

	if in.moreAccuracy || in.lessAccuracy {
		acc := g.viewer.Accuracy()
		if in.moreAccuracy {
			acc++
		} else {
			acc--
		}
		g.viewer.SetAccuracy(clamp(acc, 0, g.cfg.MaxAccuracy))
	}
	if in.toggleWhite {
		g.viewer.SetWhiteLight(!g.viewer.WhiteLight())
	}
	if in.toggleYellow {
		g.viewer.SetYellowLight(!g.viewer.YellowLight())
	}
	if in.toggleShading {
		smooth := 1
		if g.viewer.SmoothShading() {
			smooth = 0
		}
		g.viewer.SetSmoothShading(smooth)
	}
	if in.toggleWireframe {
		g.renderer.Wireframe = !g.renderer.Wireframe
		g.requestRedraw()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.initialized {
		g.viewer.Initialize(g.renderer)
		g.initialized = true
	}
	if g.resized {
		g.viewer.Resize(g.renderer, g.width, g.height)
		g.resized = false
		g.dirty = true
	}
	if !g.dirty {
		return
	}

	g.renderer.SetTarget(screen)
	g.viewer.Paint(g.renderer)
	ebitenutil.DebugPrint(screen, g.status())
	g.dirty = false
}

func (g *Game) status() string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	shading := ShadeFlat
	if g.viewer.SmoothShading() {
		shading = ShadeSmooth
	}
	return fmt.Sprintf("rot %d/%d/%d  accuracy %d (%d tris)\nwhite %s  yellow %s  %s",
		g.angles[AxisX], g.angles[AxisY], g.angles[AxisZ],
		g.viewer.Accuracy(), TriangleCount(g.viewer.Accuracy()),
		onOff(g.viewer.WhiteLight()), onOff(g.viewer.YellowLight()), shading)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

// RunGame opens the viewer window and blocks until it closes or Escape is
// pressed.
func RunGame(cfg Config) error {
	g := NewGame(cfg)
	minW, minH := g.viewer.MinimumSizeHint()
	w, h := g.viewer.SizeHint()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowSizeLimits(minW, minH, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	log.Printf("Starting viewer: accuracy %d, %d triangles", cfg.Accuracy, TriangleCount(cfg.Accuracy))
	return ebiten.RunGame(g)
}
