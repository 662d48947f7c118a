/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colorcheck/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"strings"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorcheck",
	Short: "Checks camera color balance with CIEDE2000",
	Long: `colorcheck measures perceptual color differences with the CIEDE2000
formula. It converts RGB to Lab, compares colors, finds the offset that
produces a given difference, and reports how far the patches of a color card
captured by a camera are from their reference colors.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorcheck.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().String("card", "small24", "color card: "+strings.Join(palette.IDs(), ", "))
	rootCmd.PersistentFlags().String("engine", "native", "difference engine: native or chromath")
	rootCmd.PersistentFlags().Float64("threshold", 5.0, "largest failing ΔE00; patches pass below it")

	for _, key := range []string{"log-level", "card", "engine", "threshold"} {
		viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	viper.SetDefault("cap", 100.0)
	viper.SetDefault("intensity.min", 120.0)
	viper.SetDefault("intensity.max", 180.0)
	viper.SetDefault("title", "Camera Calibration Report")
	viper.SetDefault("template", "")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".colorcheck" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".colorcheck")
	}

	viper.SetEnvPrefix("colorcheck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.ReadInConfig()

	setupLogging()

	if err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		slog.Warn("could not read config file", "path", cfgFile, "err", err)
	}
}

func setupLogging() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log-level"))); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
