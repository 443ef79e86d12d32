package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"canvas2d/canvas"
	"canvas2d/config"
	"canvas2d/input"
	"canvas2d/palette"
	"canvas2d/scene"
	"canvas2d/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

type Game struct {
	cfg    *config.Config
	log    *log.Logger
	canvas *canvas.Canvas
	script *scene.Script
	face   font.Face

	// Sub-systems
	pointer *input.Pointer
	ui      *ui.System

	background   color.Color
	showGrid     bool
	frame        int
	lastErr      string
	screenWidth  int
	screenHeight int

	screenshotRequested bool
}

func NewGame(cfg *config.Config, logger *log.Logger) (*Game, error) {
	filter := ebiten.FilterNearest
	if cfg.Filter == config.FilterLinear {
		filter = ebiten.FilterLinear
	}
	c, err := canvas.New(cfg.Canvas.Width, cfg.Canvas.Height,
		canvas.WithFilter(filter),
		canvas.WithLetterbox(cfg.LetterboxColor()),
	)
	if err != nil {
		return nil, err
	}

	script, err := loadScript(cfg)
	if err != nil {
		return nil, err
	}
	script.SetPrint(func(msg string) { logger.Info(msg, "script", script.Name()) })

	face, err := ui.LoadFace(cfg.Font, cfg.FontSize)
	if err != nil {
		logger.Warn("using built-in font", "err", err)
	}

	g := &Game{
		cfg:          cfg,
		log:          logger,
		canvas:       c,
		script:       script,
		face:         face,
		pointer:      input.NewPointer(input.EbitenSource{}, c.Mapper()),
		ui:           ui.NewSystem(face),
		background:   cfg.BackgroundColor(),
		showGrid:     cfg.Grid.Enabled,
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
	}
	g.ui.Debug.Visible = cfg.Debug
	g.initButtons()
	return g, nil
}

func loadScript(cfg *config.Config) (*scene.Script, error) {
	if cfg.Script == "" {
		return scene.Load("default.star", scene.DefaultScript, cfg.Canvas.Width, cfg.Canvas.Height)
	}
	src, err := os.ReadFile(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return scene.Load(filepath.Base(cfg.Script), string(src), cfg.Canvas.Width, cfg.Canvas.Height)
}

func (g *Game) initButtons() {
	const w, h, margin = 70.0, 24.0, 8.0
	x := float64(g.canvas.Width()) - w - margin
	y := float64(g.canvas.Height()) - 2*h - 2*margin
	if x < 0 {
		x = 0
	}

	g.ui.Add(&ui.Button{
		Label:   "grid",
		X:       x - w - margin,
		Y:       y,
		W:       w,
		H:       h,
		OnClick: g.toggleGrid,
		Active:  func() bool { return g.showGrid },
	})
	g.ui.Add(&ui.Button{
		Label:   "smooth",
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		OnClick: g.toggleFilter,
		Active:  func() bool { return g.canvas.Filter() == ebiten.FilterLinear },
	})
}

func (g *Game) toggleGrid() {
	g.showGrid = !g.showGrid
	g.log.Debug("grid toggled", "enabled", g.showGrid)
}

func (g *Game) toggleFilter() {
	if g.canvas.Filter() == ebiten.FilterNearest {
		g.canvas.SetFilter(ebiten.FilterLinear)
	} else {
		g.canvas.SetFilter(ebiten.FilterNearest)
	}
	g.log.Debug("filter toggled", "linear", g.canvas.Filter() == ebiten.FilterLinear)
}

func (g *Game) Update() error {
	g.handleControlKeys()

	w, h := float64(g.screenWidth), float64(g.screenHeight)
	placement := g.canvas.Placement(w, h)
	g.pointer.Update(w, h, placement.Contains)
	g.ui.Update(g.pointer.State())

	g.frame++
	return nil
}

func (g *Game) handleControlKeys() {
	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}
	// --- Debug panel ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.ui.Debug.Visible = !g.ui.Debug.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.toggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFilter()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Clear(g.background)
	target := g.canvas.Target()

	ptr := g.pointer.State()
	cmds, err := g.script.Frame(g.frame, ptr.X, ptr.Y)
	g.reportScriptError(err)
	scene.Render(target, cmds, ui.TextDrawer(g.face))

	if g.showGrid {
		canvas.DrawGrid(target, g.cfg.Grid.Spacing, palette.Grid, palette.CenterCross)
		canvas.DrawBorder(target, palette.Border)
	}
	g.ui.Draw(target)

	if g.screenshotRequested {
		g.screenshotRequested = false
		g.saveScreenshot(target)
	}

	g.canvas.Draw(screen)
	g.ui.Debug.Draw(screen, g.face, g.canvas.Placement(g.canvas.ScreenSize()), ptr, ebiten.ActualTPS())
}

// reportScriptError logs each distinct script error once and shows it in the
// debug panel until the script recovers.
func (g *Game) reportScriptError(err error) {
	if err == nil {
		if g.lastErr != "" {
			g.lastErr = ""
			g.ui.Debug.Clear()
		}
		return
	}
	if msg := err.Error(); msg != g.lastErr {
		g.lastErr = msg
		g.ui.Debug.SetError(msg)
		g.log.Error("script failed", "err", err)
	}
}

// saveScreenshot writes the canvas at its logical resolution.
func (g *Game) saveScreenshot(img *ebiten.Image) {
	name := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(g.cfg.ScreenshotDir, name)

	if err := writePNG(path, img); err != nil {
		g.log.Error("screenshot failed", "err", err)
		return
	}
	g.log.Info("screenshot saved", "path", path)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		p := g.canvas.Placement(float64(outsideWidth), float64(outsideHeight))
		g.log.Debug("resized", "width", outsideWidth, "height", outsideHeight, "scale", p.Scale)
	}
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
