package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/segslider"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runCmd opens the demo window.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window with an interactive slider",
	Long: `Open a window with an interactive slider.

With --script, the JSON test script is played against the slider and the
window closes once it finishes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		s := segslider.New(sliderConfig(v))
		s.SetDelegate(segslider.DelegateFunc(func(_ *segslider.Slider, i int) {
			slog.Info("Index changed", "index", i)
		}))

		rc := segslider.RunConfig{
			Title:   "segslider",
			Width:   v.GetInt("window-width"),
			Height:  v.GetInt("window-height"),
			ShowFPS: v.GetBool("fps"),
		}
		f := s.Frame()
		f.X = (float64(rc.Width) - f.Width) / 2
		f.Y = (float64(rc.Height) - f.Height) / 2
		s.SetFrame(f)

		if path := v.GetString("script"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := segslider.LoadTestScript(data)
			if err != nil {
				return err
			}
			s.SetTestRunner(runner)
			rc.ExitOnScriptDone = true
			slog.Info("Running test script", "path", path)
		}
		return segslider.Run(s, rc)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().AddFlagSet(sliderFlags)
	runCmd.Flags().Int("window-width", 640, "window width")
	runCmd.Flags().Int("window-height", 480, "window height")
	runCmd.Flags().Bool("fps", false, "show TPS/FPS overlay")
	runCmd.Flags().String("script", "", "JSON test script to play")
	runCmd.Flags().String("screenshot-dir", "screenshots", "directory for script screenshots")
}

// sliderConfig builds a slider config from bound flags, environment and
// config file. The frame is sized but not positioned.
func sliderConfig(v *viper.Viper) segslider.Config {
	return segslider.Config{
		Points:         v.GetInt("points"),
		Index:          v.GetInt("index"),
		Frame:          segslider.Rect{Width: v.GetFloat64("width"), Height: v.GetFloat64("height")},
		TrackHeight:    v.GetFloat64("track-height"),
		ThumbRadius:    v.GetFloat64("thumb-radius"),
		CircleRadius:   v.GetFloat64("circle-radius"),
		SettleDuration: float32(v.GetFloat64("settle")),
		ScreenshotDir:  v.GetString("screenshot-dir"),
		Logger:         slog.Default(),
	}
}
