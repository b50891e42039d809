package drafter

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const snapMarkerRadius = 6 // screen pixels

// pointerSample is one frame's worth of pointer input, in screen
// coordinates. Synthetic samples from the injection queue and real
// samples from ebiten go through the same path.
type pointerSample struct {
	x, y   float64
	down   bool
	cancel bool
}

// snapMarker is the fading highlight drawn where a point snapped to
// existing geometry. Purely visual feedback.
type snapMarker struct {
	tween  *gween.Tween
	alpha  float32
	x, y   float64 // screen coordinates
	source SnapSource
}

func (m *snapMarker) pulse(x, y float64, source SnapSource) {
	m.x, m.y = x, y
	m.source = source
	m.tween = gween.New(1, 0, 0.6, ease.OutQuad)
	m.alpha = 1
}

func (m *snapMarker) update(dt float32) {
	if m.tween == nil {
		return
	}
	val, done := m.tween.Update(dt)
	m.alpha = val
	if done {
		m.tween = nil
		m.alpha = 0
	}
}

// Canvas adapts ebiten input to the drawing engine and paints a minimal
// view of the document: committed shapes, the live preview, the grid,
// and a snap marker. It implements [ebiten.Game].
//
// Keyboard: 1/2/3 select the line/rect/circle tool, G toggles the grid,
// O toggles ortho, S toggles object snap, Tab cycles the grid module
// between 600 and 1200 mm, Escape cancels the gesture in progress.
type Canvas struct {
	Registry *Registry
	Doc      *Document
	Config   *SnapConfig
	Scale    float64 // document units per screen pixel

	ClearColor   color.RGBA
	GridColor    color.RGBA
	ShapeColor   color.RGBA
	PreviewColor color.RGBA
	MarkerColor  color.RGBA

	width, height int
	prevDown      bool
	preview       *Shape
	marker        snapMarker
	injectQueue   []pointerSample
	lastResult    ToolResult
}

// NewCanvas creates a canvas of the given screen size. Scale defaults
// to 10 document units (mm) per pixel, so a 640 px window spans 6.4 m.
func NewCanvas(reg *Registry, doc *Document, cfg *SnapConfig, width, height int) *Canvas {
	return &Canvas{
		Registry:     reg,
		Doc:          doc,
		Config:       cfg,
		Scale:        10,
		ClearColor:   color.RGBA{24, 24, 32, 255},
		GridColor:    color.RGBA{48, 48, 60, 255},
		ShapeColor:   color.RGBA{220, 220, 230, 255},
		PreviewColor: color.RGBA{110, 190, 255, 255},
		MarkerColor:  color.RGBA{255, 200, 80, 255},
		width:        width,
		height:       height,
	}
}

// LastResult returns the tool result from the most recent processed
// sample. Useful for status displays and tests.
func (c *Canvas) LastResult() ToolResult {
	return c.lastResult
}

// --- Synthetic input injection ---

// InjectPress queues a pointer press at screen coordinates. The sample
// is consumed on the next Update, exactly like real mouse input.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, pointerSample{x: x, y: y, down: true})
}

// InjectMove queues a pointer move with the button held down.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, pointerSample{x: x, y: y, down: true})
}

// InjectRelease queues a pointer release at screen coordinates.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, pointerSample{x: x, y: y, down: false})
}

// InjectCancel queues an explicit gesture cancel.
func (c *Canvas) InjectCancel() {
	c.injectQueue = append(c.injectQueue, pointerSample{cancel: true})
}

// --- ebiten.Game ---

// Update consumes one pointer sample (injected if any are queued,
// otherwise real mouse state), routes it to the active tool, and
// advances the snap marker animation.
func (c *Canvas) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	var sample pointerSample
	if len(c.injectQueue) > 0 {
		sample = c.injectQueue[0]
		c.injectQueue = c.injectQueue[1:]
	} else {
		c.handleKeys()
		mx, my := ebiten.CursorPosition()
		sample = pointerSample{
			x:      float64(mx),
			y:      float64(my),
			down:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			cancel: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		}
	}

	c.processSample(sample)
	c.marker.update(dt)
	return nil
}

// handleKeys applies tool-switch and snap-toggle shortcuts.
func (c *Canvas) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		c.Registry.Activate(ToolLine)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		c.Registry.Activate(ToolRect)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		c.Registry.Activate(ToolCircle)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		c.Config.GridEnabled = !c.Config.GridEnabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		c.Config.OrthoEnabled = !c.Config.OrthoEnabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		c.Config.ObjectSnapEnabled = !c.Config.ObjectSnapEnabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if c.Config.GridSize == GridFine {
			c.Config.GridSize = GridCoarse
		} else {
			c.Config.GridSize = GridFine
		}
	}
}

// processSample runs the press/drag/release edge detection against the
// previous frame's button state and routes the event to the active
// tool. Exported behavior is identical for injected and real samples.
func (c *Canvas) processSample(sample pointerSample) {
	if sample.cancel {
		c.lastResult = c.Registry.HandleCancel()
		c.preview = nil
		c.prevDown = false
		return
	}

	p := c.screenToDoc(sample.x, sample.y)
	var res ToolResult
	switch {
	case sample.down && !c.prevDown:
		res = c.Registry.HandlePointerDown(p)
	case sample.down && c.prevDown:
		res = c.Registry.HandlePointerMove(p)
	case !sample.down && c.prevDown:
		res = c.Registry.HandlePointerUp(p)
	default:
		c.prevDown = sample.down
		return
	}
	c.prevDown = sample.down
	c.lastResult = res
	c.preview = res.Preview

	if res.Committed != nil || res.Rejected != nil {
		c.preview = nil
	}
	if res.Snap.IsObject() {
		sx, sy := c.docToScreen(res.Resolved)
		c.marker.pulse(sx, sy, res.Snap)
	}
}

func (c *Canvas) screenToDoc(x, y float64) Point {
	return Point{X: x * c.Scale, Y: y * c.Scale}
}

func (c *Canvas) docToScreen(p Point) (float64, float64) {
	return p.X / c.Scale, p.Y / c.Scale
}

// Draw paints the grid, committed shapes, live preview, and snap
// marker.
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(c.ClearColor)

	if c.Config.GridEnabled && c.Config.GridSize > 0 {
		c.drawGrid(screen)
	}
	for _, s := range c.Doc.Snapshot() {
		c.strokeShape(screen, s, c.ShapeColor)
	}
	if c.preview != nil {
		c.strokeShape(screen, *c.preview, c.PreviewColor)
	}
	if c.marker.alpha > 0 {
		col := c.MarkerColor
		col.A = uint8(float32(col.A) * c.marker.alpha)
		vector.StrokeCircle(screen, float32(c.marker.x), float32(c.marker.y),
			snapMarkerRadius, 2, col, true)
	}
}

func (c *Canvas) drawGrid(screen *ebiten.Image) {
	step := float32(c.Config.GridSize / c.Scale)
	if step < 2 {
		return
	}
	w := float32(c.width)
	h := float32(c.height)
	for x := float32(0); x <= w; x += step {
		vector.StrokeLine(screen, x, 0, x, h, 1, c.GridColor, false)
	}
	for y := float32(0); y <= h; y += step {
		vector.StrokeLine(screen, 0, y, w, y, 1, c.GridColor, false)
	}
}

func (c *Canvas) strokeShape(screen *ebiten.Image, s Shape, col color.RGBA) {
	switch s.Kind {
	case ShapeLine:
		x1, y1 := c.docToScreen(s.Start)
		x2, y2 := c.docToScreen(s.End)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 2, col, true)
	case ShapeRect:
		x, y := c.docToScreen(Point{X: s.X, Y: s.Y})
		vector.StrokeRect(screen, float32(x), float32(y),
			float32(s.Width/c.Scale), float32(s.Height/c.Scale), 2, col, true)
	case ShapeCircle:
		x, y := c.docToScreen(s.Center)
		vector.StrokeCircle(screen, float32(x), float32(y),
			float32(s.Radius/c.Scale), 2, col, true)
	}
}

// Layout implements ebiten.Game.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.width, c.height
}

// RunConfig holds window options for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a window and drives the canvas until it is closed. For full
// control over the game loop, implement [ebiten.Game] yourself and call
// [Canvas.Update] and [Canvas.Draw] directly.
func Run(c *Canvas, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(c)
}
