package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridgeom/core"
	"github.com/lixenwraith/gridgeom/raster"
	"github.com/lixenwraith/gridgeom/render"
)

func newLineCmd(e *env) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "line x0 y0 x1 y1",
		Short: "Draw a line between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := intArgs(args)
			if err != nil {
				return err
			}
			alg, err := raster.ParseLineAlgorithm(algorithm)
			if err != nil {
				return err
			}
			seq, err := raster.Line(core.Pt(v[0], v[1]), core.Pt(v[2], v[3]), alg)
			if err != nil {
				return err
			}
			return e.plotArea(cmd, "line", core.AreaFromSeq(seq), '*')
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", raster.Bresenham.String(),
		"line algorithm: bresenham, dda or orthogonal")
	return cmd
}

func newCircleCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "circle x y r",
		Short: "Draw a circle outline around a center",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := intArgs(args)
			if err != nil {
				return err
			}
			seq, err := raster.Circle(core.Pt(v[0], v[1]), v[2])
			if err != nil {
				return err
			}
			return e.plotArea(cmd, "circle", core.AreaFromSeq(seq), 'o')
		},
	}
}

func newEllipseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ellipse x0 y0 x1 y1",
		Short: "Draw the ellipse inscribed in the rectangle with the given corners",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := intArgs(args)
			if err != nil {
				return err
			}
			seq := raster.Ellipse(core.Pt(v[0], v[1]), core.Pt(v[2], v[3]))
			return e.plotArea(cmd, "ellipse", core.AreaFromSeq(seq), 'o')
		},
	}
}

func newBoxCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "box x y w h",
		Short: "Draw a rectangle outline",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := intArgs(args)
			if err != nil {
				return err
			}
			if v[2] <= 0 || v[3] <= 0 {
				return fmt.Errorf("box size must be positive, got %dx%d", v[2], v[3])
			}
			r := core.NewRectangle(v[0], v[1], v[2], v[3])
			return e.plotArea(cmd, "box", core.AreaFromSeq(raster.Box(r)), '#')
		},
	}
}

func newRadiusCmd(e *env) *cobra.Command {
	var (
		shape  string
		bounds []int
	)
	cmd := &cobra.Command{
		Use:   "radius x y r",
		Short: "Flood the cells within a radius of a center",
		Long: "radius enumerates every cell within r of the center under the shape's " +
			"distance metric. Text output labels each cell with its distance modulo 10; " +
			"PNG output shades cells from the center outward.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := intArgs(args)
			if err != nil {
				return err
			}
			metric, err := core.ParseRadius(shape)
			if err != nil {
				return err
			}
			limit := core.EmptyRectangle
			switch len(bounds) {
			case 0:
			case 4:
				limit = core.NewRectangle(bounds[0], bounds[1], bounds[2], bounds[3])
			default:
				return fmt.Errorf("--bounds needs x,y,w,h, got %d values", len(bounds))
			}

			center := core.Pt(v[0], v[1])
			area, err := raster.RadiusArea(metric, center, v[2], limit)
			if err != nil {
				return err
			}
			e.log.WithField("points", area.Count()).Debug("flood complete")

			c := render.NewCanvasFor(e.frame(area.Bounds()))
			dist := core.DistanceFor(metric)
			span := float64(max(v[2], 1))
			for p := range area.All() {
				d := dist.Calculate(center, p)
				c.Set(p, rune('0'+int(d)%10), render.RgbForeground,
					render.DistancePalette.At(d/span), render.BlendReplace, 1)
			}
			return e.emit(cmd, c)
		},
	}
	cmd.Flags().StringVarP(&shape, "shape", "s", "circle", "radius shape: square, diamond or circle")
	cmd.Flags().IntSliceVar(&bounds, "bounds", nil, "restrict the flood to x,y,w,h")
	return cmd
}
