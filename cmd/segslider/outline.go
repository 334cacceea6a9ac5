package main

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/segslider"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var optFlatten float64

// outlineCmd prints the point centers and outline without opening a window.
var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print point centers and the outline path as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := sliderConfig(viper.GetViper())
		s := segslider.New(cfg)
		g := s.Geometry()

		out := outlineReport{Points: g.Points}
		for i := 0; i < g.Points; i++ {
			out.Centers = append(out.Centers, g.Center(i))
		}
		for _, seg := range s.Outline().Segments {
			out.Segments = append(out.Segments, segmentReport{
				Center: seg.Arc.Center,
				Start:  seg.Arc.StartAngle,
				End:    seg.Arc.EndAngle,
				Sweep:  seg.Arc.Sweep(),
				LineTo: seg.LineTo,
			})
		}
		if optFlatten > 0 {
			out.Polyline = s.Outline().Flatten(optFlatten)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode outline: %w", err)
		}
		return nil
	},
}

type outlineReport struct {
	Points   int              `json:"points"`
	Centers  []segslider.Vec2 `json:"centers"`
	Segments []segmentReport  `json:"segments"`
	Polyline []segslider.Vec2 `json:"polyline,omitempty"`
}

type segmentReport struct {
	Center segslider.Vec2 `json:"center"`
	Start  float64        `json:"start"`
	End    float64        `json:"end"`
	Sweep  float64        `json:"sweep"`
	LineTo segslider.Vec2 `json:"lineTo"`
}

func init() {
	rootCmd.AddCommand(outlineCmd)

	outlineCmd.Flags().AddFlagSet(sliderFlags)
	outlineCmd.Flags().Float64Var(&optFlatten, "flatten", 0, "also print the outline flattened to this tolerance")
}
