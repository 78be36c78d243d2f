package screen

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/matt-g-everett/cube/anim"
)

// Title shown above the cube.
const Title = "Moving Cube Animation"

var (
	buttonColour = color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	buttonBorder = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
)

// A FrameSender receives the cube's style after each tick.
type FrameSender interface {
	SendFrame()
}

// Game is the cube screen. It implements ebiten.Game and drives the
// Controller from its Update loop.
type Game struct {
	controller *anim.Controller
	sender     FrameSender

	cube     *ebiten.Image
	touchIDs []ebiten.TouchID
}

// NewGame creates the screen. sender may be nil.
func NewGame(controller *anim.Controller, sender FrameSender) *Game {
	g := new(Game)
	g.controller = controller
	g.sender = sender
	return g
}

// Update handles input and advances the animation by one tick.
func (g *Game) Update() error {
	if g.pressed() {
		g.toggle()
	}

	g.controller.Tick(time.Second / time.Duration(ebiten.TPS()))
	if g.sender != nil && g.controller.Running() {
		g.sender.SendFrame()
	}
	return nil
}

// toggle is the action of the Start/Stop button.
func (g *Game) toggle() {
	if g.controller.Running() {
		g.controller.Stop()
	} else {
		g.controller.Start()
	}
}

func (g *Game) pressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if toggleButton.Contains(ebiten.CursorPosition()) {
			return true
		}
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		if toggleButton.Contains(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

// Draw renders the title, cube, button and position label.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	ebitenutil.DebugPrintAt(screen, Title, centredX(Title), titleY)

	g.drawCube(screen)
	g.drawButton(screen)

	label := g.controller.Label()
	ebitenutil.DebugPrintAt(screen, label, centredX(label), labelY)
}

func (g *Game) drawCube(screen *ebiten.Image) {
	if g.cube == nil {
		g.cube = ebiten.NewImage(CubeSize, CubeSize)
		g.cube.Fill(color.White)
	}

	style := g.controller.Style()
	t := cubeTransform(style)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-CubeSize/2, -CubeSize/2)
	op.GeoM.Scale(t.ScaleX, t.ScaleY)
	op.GeoM.Translate(t.CenterX, t.CenterY)

	// Colour scales are premultiplied.
	c := style.Background.Clamped()
	a := float32(style.Opacity)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(g.cube, op)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	b := toggleButton
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), buttonColour, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, buttonBorder, true)

	label := buttonLabel(g.controller.Running())
	y := int(b.Y+b.Height/2) - glyphHeight/2
	ebitenutil.DebugPrintAt(screen, label, centredX(label), y)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
