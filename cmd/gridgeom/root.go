package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/render"
)

// env carries the persistent flags and logger shared by every subcommand
type env struct {
	width, height int
	png           string
	scale         int
	verbose       bool

	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{log: logrus.New()}
	e.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableSorting:   true,
	})

	root := &cobra.Command{
		Use:   "gridgeom",
		Short: "Rasterize grid shapes",
		Long: "gridgeom draws lines, circles, ellipses, boxes and radius floods on an " +
			"integer grid and prints them as text, or writes a PNG with --png.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			e.log.SetOutput(cmd.ErrOrStderr())
			if e.verbose {
				e.log.SetLevel(logrus.DebugLevel)
			} else {
				e.log.SetLevel(logrus.InfoLevel)
			}
		},
	}

	e.bindFlags(root.PersistentFlags())

	root.AddCommand(
		newLineCmd(e),
		newCircleCmd(e),
		newEllipseCmd(e),
		newBoxCmd(e),
		newRadiusCmd(e),
		newSceneCmd(e),
	)
	return root
}

// bindFlags registers the output and logging options shared by every subcommand
func (e *env) bindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&e.width, "width", 0, "canvas width in cells; 0 fits the shape")
	fs.IntVar(&e.height, "height", 0, "canvas height in cells; 0 fits the shape")
	fs.StringVar(&e.png, "png", "", "write a PNG image to this file instead of text")
	fs.IntVar(&e.scale, "scale", 8, "pixels per cell for PNG output")
	fs.BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")
}

// frame picks the canvas rectangle: explicit size anchored at the origin, or the shape bounds
func (e *env) frame(bounds core.Rectangle) core.Rectangle {
	if e.width > 0 && e.height > 0 {
		return core.NewRectangle(0, 0, e.width, e.height)
	}
	return bounds
}

// emit writes the canvas as text to stdout, or as PNG when --png is set
func (e *env) emit(cmd *cobra.Command, c *render.Canvas) error {
	if e.png == "" {
		_, err := c.WriteTo(cmd.OutOrStdout())
		return err
	}
	if e.scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %d", e.scale)
	}

	f, err := os.Create(e.png)
	if err != nil {
		return fmt.Errorf("problem creating PNG file: %w", err)
	}
	if err := c.WritePNG(f, e.scale); err != nil {
		f.Close()
		return fmt.Errorf("problem encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{
		"file":  e.png,
		"cells": fmt.Sprintf("%dx%d", c.Width(), c.Height()),
		"scale": e.scale,
	}).Info("wrote image")
	return nil
}

// plotArea renders a single area with glyph and emits it
func (e *env) plotArea(cmd *cobra.Command, kind string, a *core.Area, glyph rune) error {
	e.log.WithFields(logrus.Fields{
		"kind":   kind,
		"points": a.Count(),
		"bounds": a.Bounds().String(),
	}).Debug("rasterized")

	c := render.NewCanvasFor(e.frame(a.Bounds()))
	c.PlotArea(a, glyph, render.LayerColor(0))
	return e.emit(cmd, c)
}

// intArgs parses positional integer arguments
func intArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not an integer", i+1, a)
		}
		out[i] = v
	}
	return out, nil
}
