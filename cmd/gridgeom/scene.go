package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridgeom/scene"
)

func newSceneCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "scene file.toml",
		Short: "Render every shape listed in a TOML scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			c, layers, err := s.Render()
			if err != nil {
				return err
			}
			for i, l := range layers {
				e.log.WithFields(logrus.Fields{
					"layer":  i,
					"kind":   l.Kind,
					"points": l.Area.Count(),
				}).Debug("built layer")
			}
			return e.emit(cmd, c)
		},
	}
}
