package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/render"
)

func TestSandboxPlaceLine(t *testing.T) {
	s := NewSandbox(20, 11)
	if s.cursor != core.Pt(10, 5) {
		t.Fatalf("Expected cursor at center (10,5), got %v", s.cursor)
	}

	placedCount := 0
	s.onPlace = func() { placedCount++ }

	s.handleKey(tcell.KeyRune, ' ')
	if !s.anchored || s.anchor != core.Pt(10, 5) {
		t.Fatalf("Expected anchor at cursor, got %v (anchored=%v)", s.anchor, s.anchored)
	}
	for range 3 {
		s.handleKey(tcell.KeyRune, 'l')
	}
	s.handleKey(tcell.KeyRune, 'j')

	preview, err := s.Preview()
	if err != nil {
		t.Fatal(err)
	}
	if preview.Count() != 4 || !preview.Contains(core.Pt(13, 6)) {
		t.Errorf("Expected 4-cell line ending at (13,6), got %d cells", preview.Count())
	}

	s.handleKey(tcell.KeyEnter, 0)
	if len(s.shapes) != 1 || placedCount != 1 {
		t.Fatalf("Expected one placed shape and callback, got %d shapes, %d callbacks", len(s.shapes), placedCount)
	}
	if s.anchored {
		t.Error("Expected anchor cleared after placing")
	}
	if s.Covered().Count() != 4 {
		t.Errorf("Expected 4 covered cells, got %d", s.Covered().Count())
	}
}

func TestSandboxKinds(t *testing.T) {
	tests := []struct {
		kind int
		want int
	}{
		{kindCircle, 12}, // radius 2
		{kindEllipse, 3}, // flat: a single row
		{kindBox, 3},     // 3x1 rectangle
		{kindRadius, 13}, // circle metric radius 2
	}
	for _, tt := range tests {
		t.Run(kindNames[tt.kind], func(t *testing.T) {
			s := NewSandbox(20, 11)
			for s.kind != tt.kind {
				s.handleKey(tcell.KeyTab, 0)
			}
			s.handleKey(tcell.KeyRune, ' ')
			s.Move(core.DirRight)
			s.Move(core.DirRight)
			a, err := s.Preview()
			if err != nil {
				t.Fatal(err)
			}
			if a.Count() != tt.want {
				t.Errorf("Expected %d cells, got %d", tt.want, a.Count())
			}
		})
	}
}

func TestSandboxCycles(t *testing.T) {
	s := NewSandbox(10, 5)
	s.handleKey(tcell.KeyRune, 'a')
	if !strings.Contains(s.Status(), "dda") {
		t.Errorf("Expected status to show dda, got %q", s.Status())
	}
	for range kindRadius {
		s.handleKey(tcell.KeyTab, 0)
	}
	s.handleKey(tcell.KeyRune, 'm')
	if !strings.Contains(s.Status(), "Square") {
		t.Errorf("Expected status to show Square metric, got %q", s.Status())
	}
	s.handleKey(tcell.KeyTab, 0)
	if s.kind != kindLine {
		t.Errorf("Expected kind to wrap to line, got %d", s.kind)
	}
}

func TestSandboxEdges(t *testing.T) {
	s := NewSandbox(3, 3) // 3x2 drawable
	s.cursor = core.Pt(0, 0)
	s.Move(core.DirUp)
	if s.cursor != core.Pt(0, 0) || !s.cursorError {
		t.Errorf("Expected blocked move with error flag, got %v (error=%v)", s.cursor, s.cursorError)
	}

	s.cursor = core.Pt(2, 1)
	s.Resize(2, 2)
	if s.cursor != core.Pt(1, 0) {
		t.Errorf("Expected cursor clamped to (1,0), got %v", s.cursor)
	}
}

func TestSandboxUndo(t *testing.T) {
	s := NewSandbox(10, 6)
	s.Place()
	s.Move(core.DirLeft)
	s.Place()
	s.Place()
	s.Undo()
	if s.anchored {
		t.Error("Expected Undo to drop the pending anchor")
	}
	if len(s.shapes) != 1 {
		t.Fatalf("Expected one shape kept, got %d", len(s.shapes))
	}
	s.Undo()
	if len(s.shapes) != 0 {
		t.Errorf("Expected shapes empty after second undo, got %d", len(s.shapes))
	}

	s.Place()
	s.Place()
	s.handleKey(tcell.KeyRune, 'c')
	if len(s.shapes) != 0 || s.anchored {
		t.Error("Expected clear to remove shapes and anchor")
	}
}

func TestSandboxQuit(t *testing.T) {
	s := NewSandbox(10, 5)
	if s.handleKey(tcell.KeyRune, 'x') != true {
		t.Error("Expected unbound key to keep running")
	}
	if s.handleKey(tcell.KeyRune, 'q') {
		t.Error("Expected q to quit")
	}
	if s.handleKey(tcell.KeyEscape, 0) {
		t.Error("Expected Escape to quit")
	}
}

func TestSandboxCompose(t *testing.T) {
	s := NewSandbox(12, 7)
	s.cursor = core.Pt(1, 1)
	s.Place()
	s.cursor = core.Pt(5, 1)
	s.Place()

	now := s.cursorBlinkTime
	c := s.compose(now)
	cell, ok := c.Cell(core.Pt(3, 1))
	if !ok || cell.Rune != '*' || cell.Fg != render.LayerColor(0) {
		t.Errorf("Expected placed line glyph at (3,1), got %+v", cell)
	}
	cursor, _ := c.Cell(core.Pt(5, 1))
	if cursor.Bg != render.RgbCursor {
		t.Errorf("Expected cursor background, got %v", cursor.Bg)
	}
	grid, _ := c.Cell(core.Pt(8, 2))
	if grid.Rune != '·' {
		t.Errorf("Expected grid dot at (8,2), got %q", grid.Rune)
	}

	// Past the blink interval the cursor hides
	c = s.compose(now.Add(time.Second))
	cursor, _ = c.Cell(core.Pt(5, 1))
	if cursor.Bg == render.RgbCursor {
		t.Error("Expected cursor hidden after blink interval")
	}
}
