// Package tcellui is a lightweight terminal frontend built directly on tcell.
// Events are read by a polling goroutine and consumed by a single ticker
// loop, which steps the game and redraws.
package tcellui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/platform"
)

// palette maps each cell role to a terminal palette index.
var palette = map[core.Color]tcell.Color{
	core.ColorPipe:      tcell.PaletteColor(2),
	core.ColorGround:    tcell.PaletteColor(130),
	core.ColorBall:      tcell.PaletteColor(11),
	core.ColorTitle:     tcell.PaletteColor(15),
	core.ColorText:      tcell.PaletteColor(7),
	core.ColorAlert:     tcell.PaletteColor(9),
	core.ColorHighScore: tcell.PaletteColor(11),
}

// styleFor returns the tcell style for a color.
func styleFor(c core.Color) tcell.Style {
	if tc, ok := palette[c]; ok {
		return tcell.StyleDefault.Foreground(tc)
	}
	return tcell.StyleDefault
}

// Frontend draws the game on a tcell screen.
type Frontend struct {
	screen    tcell.Screen
	driver    *platform.Driver
	buf       *core.Screen
	tickRate  int
	mouseDown bool
}

// New wraps an initialised screen. The caller keeps ownership of the screen
// and must call Fini on it.
func New(screen tcell.Screen, d *platform.Driver, tickRate int) *Frontend {
	if tickRate <= 0 {
		tickRate = 60
	}
	w, h := screen.Size()
	return &Frontend{
		screen:   screen,
		driver:   d,
		buf:      core.NewScreen(w, h),
		tickRate: tickRate,
	}
}

// Run opens the terminal, plays until the player quits and restores the
// terminal afterwards.
func Run(d *platform.Driver, tickRate int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	New(screen, d, tickRate).Loop()
	return nil
}

// Loop runs until the driver reports a quit.
func (f *Frontend) Loop() {
	ticker := time.NewTicker(time.Second / time.Duration(f.tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go f.poll(events, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			f.HandleEvent(ev)

		case t := <-ticker.C:
			if !f.Tick(t) {
				return
			}
		}
	}
}

// poll forwards screen events until the screen is finalised or done closes.
func (f *Frontend) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			// Screen finalised
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent queues the action for an input event and reacts to resizes.
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		f.driver.Push(MapKey(ev))

	case *tcell.EventMouse:
		// Only the transition to pressed counts as a click
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !f.mouseDown {
			f.driver.Push(core.ActionActivate)
		}
		f.mouseDown = down

	case *tcell.EventResize:
		f.screen.Sync()
	}
}

// Tick steps the game at t and redraws. Returns false once the player quit.
func (f *Frontend) Tick(t time.Time) bool {
	f.driver.Step(t)
	if f.driver.Quit() {
		return false
	}
	f.Draw()
	return true
}

// Draw renders the latest snapshot to the terminal.
func (f *Frontend) Draw() {
	w, h := f.screen.Size()
	f.buf.Resize(w, h)
	f.driver.Snapshot().Render(f.buf)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := f.buf.GetCell(x, y)
			f.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	f.screen.Show()
}

// MapKey translates a key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	return mapKey(ev.Key(), ev.Rune())
}

func mapKey(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyUp, tcell.KeyEnter:
		return core.ActionActivate
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return core.ActionQuit
		case ' ', 'w', 'W':
			return core.ActionActivate
		}
	}
	return core.ActionNone
}
