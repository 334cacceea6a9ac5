package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "segslider",
	Short: "Discrete slider demo and geometry tool",
	Long: `segslider shows a horizontal slider with N evenly spaced points and a
thumb that snaps to one of them.

Every flag can also be set in a config file (--config) or through an
environment variable prefixed with SEGSLIDER_, e.g. SEGSLIDER_POINTS=7.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// sliderFlags is shared by every command that builds a slider.
var sliderFlags = pflag.NewFlagSet("slider", pflag.ContinueOnError)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("verbosity", "info", "log level: debug, info, warn or error")

	sliderFlags.Int("points", 5, "number of selectable points")
	sliderFlags.Int("index", 0, "initially selected index")
	sliderFlags.Float64("width", 560, "slider width in pixels")
	sliderFlags.Float64("height", 40, "slider height in pixels")
	sliderFlags.Float64("track-height", 2, "thickness of the band joining the points")
	sliderFlags.Float64("thumb-radius", 14, "radius of the thumb")
	sliderFlags.Float64("circle-radius", 4, "radius of each point")
	sliderFlags.Float64("settle", 0.25, "settle animation duration in seconds")
}

// initConfig binds flags, environment and the optional config file into
// viper, then configures the default logger.
func initConfig(cmd *cobra.Command) error {
	v := viper.GetViper()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix("SEGSLIDER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	setDefaultSlog(cmd, v.GetString("verbosity"))
	if v.ConfigFileUsed() != "" {
		slog.Debug("Using config file", "path", v.ConfigFileUsed())
	}
	return nil
}

func setDefaultSlog(cmd *cobra.Command, verbosity string) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(verbosity)); err != nil {
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
