// Package term draws the cube screen in a terminal.
package term

import (
	"context"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/cube/anim"
)

// Pixels covered by one terminal cell.
const (
	cellWidth  = 8.0
	cellHeight = 20.0
)

const (
	cubeSize = 150.0
	originX  = 4
	originY  = 2

	startLabel = "[s] Start Animation"
	stopLabel  = "[s] Stop Animation"
	title      = "Moving Cube Animation"
)

var (
	background, _ = colorful.Hex("#4e73df")
	baseStyle     = tcell.StyleDefault.Background(cellColour(background)).Foreground(tcell.ColorWhite)
	buttonStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x21, 0x96, 0xf3)).Foreground(tcell.ColorWhite).Bold(true)
)

// A FrameSender receives the cube's style after each tick.
type FrameSender interface {
	SendFrame()
}

// Terminal renders the cube with tcell and drives the Controller.
type Terminal struct {
	screen     tcell.Screen
	controller *anim.Controller
	sender     FrameSender
	interval   time.Duration
}

// New creates a Terminal on an initialised screen ticking tps times per
// second. sender may be nil.
func New(screen tcell.Screen, controller *anim.Controller, sender FrameSender, tps int) *Terminal {
	t := new(Terminal)
	t.screen = screen
	t.controller = controller
	t.sender = sender
	t.interval = time.Second / time.Duration(tps)
	return t
}

// Run draws and handles keys until the user quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	last := time.Now()
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
			t.Draw()
		case now := <-ticker.C:
			t.controller.Tick(now.Sub(last))
			last = now
			if t.sender != nil && t.controller.Running() {
				t.sender.SendFrame()
			}
			t.Draw()
		}
	}
}

// HandleEvent applies a terminal event. It returns false when the user
// asked to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 's') {
			t.toggle()
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) toggle() {
	if t.controller.Running() {
		t.controller.Stop()
	} else {
		t.controller.Start()
	}
}

// Draw renders one frame.
func (t *Terminal) Draw() {
	t.screen.SetStyle(baseStyle)
	t.screen.Clear()

	_, height := t.screen.Size()
	t.print(originX, 0, title, baseStyle.Bold(true))

	style := t.controller.Style()
	x0, y0, x1, y1 := cubeCells(style)
	// Opacity is drawn as a blend towards the screen background.
	colour := cellColour(background.BlendRgb(style.Background, style.Opacity))
	cubeStyle := tcell.StyleDefault.Background(colour)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ' ', nil, cubeStyle)
		}
	}

	row := buttonRow()
	if row >= height {
		row = height - 2
	}
	label := startLabel
	if t.controller.Running() {
		label = stopLabel
	}
	t.print(originX, row, " "+label+" ", buttonStyle)
	t.print(originX, row+1, t.controller.Label(), baseStyle)

	t.screen.Show()
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// cubeCells returns the cell rectangle [x0, x1) x [y0, y1) covered by the
// cube. Rotation foreshortens the cube as in the graphical screen.
func cubeCells(s anim.Style) (x0, y0, x1, y1 int) {
	cx := float64(originX) + (s.MarginLeft+cubeSize/2)/cellWidth
	cy := float64(originY) + (s.MarginTop+cubeSize/2)/cellHeight
	w := cubeSize * math.Abs(s.Scale*math.Cos(s.RotateY*math.Pi/180)) / cellWidth
	h := cubeSize * math.Abs(s.Scale*math.Cos(s.RotateX*math.Pi/180)) / cellHeight

	x0 = int(math.Round(cx - w/2))
	x1 = int(math.Round(cx + w/2))
	y0 = int(math.Round(cy - h/2))
	y1 = int(math.Round(cy + h/2))
	return
}

// buttonRow is the first row below the cube's full range of travel.
func buttonRow() int {
	return originY + int(math.Ceil((anim.Travel+cubeSize*1.25)/cellHeight)) + 1
}

func cellColour(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
