// grid-sandbox is an interactive terminal viewer for the grid rasterizers
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	debugFlag  = flag.Bool("debug", false, "write debug logs to logs/grid-sandbox.log")
	audioFlag  = flag.Bool("audio", false, "play audio cues when placing shapes")
	volumeFlag = flag.Float64("volume", 0.5, "audio cue volume, 0 to 1")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Deferred Fini below has already restored the terminal when this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nGRID-SANDBOX CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	tick := newTicker(*audioFlag, *volumeFlag)
	defer tick.close()
	defer screen.Fini()

	w, h := screen.Size()
	s := NewSandbox(w, h)
	s.onPlace = func() {
		logrus.WithField("shapes", len(s.shapes)).Debug("shape placed")
		tick.place()
	}
	s.onBlocked = tick.blocked
	run(screen, s)
}

// run drives input and redraw at ~60 FPS until the sandbox asks to quit
func run(screen tcell.Screen, s *Sandbox) {
	frame := time.NewTicker(16 * time.Millisecond)
	defer frame.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				s.Resize(w, h)
				logrus.WithFields(logrus.Fields{"width": w, "height": h}).Debug("resized")
				screen.Sync()
			}
		case now := <-frame.C:
			draw(screen, s, now)
		}
	}
}

func draw(screen tcell.Screen, s *Sandbox, now time.Time) {
	screen.Clear()
	s.compose(now).Draw(screen, 0, 0)

	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightSkyBlue)
	x := 0
	for _, r := range s.Status() {
		if x >= s.width {
			break
		}
		screen.SetContent(x, s.height, r, nil, style)
		x++
	}
	for ; x < s.width; x++ {
		screen.SetContent(x, s.height, ' ', nil, style)
	}
	screen.Show()
}
