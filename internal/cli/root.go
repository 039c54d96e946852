// Package cli implements the jyotish command line.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/akhenakh/jyotish/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Sidereal birth charts and Vimshottari dasha timelines",
	Long: `jyotish computes sidereal positions of the Sun, Moon, planets and lunar
nodes for a birth date, time and place, the birth nakshatra, whole-sign
houses, divisional charts and the three-level Vimshottari dasha timeline.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .jyotish.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("mode", "", "dasha mode: astronomical or compatibility")
	rootCmd.PersistentFlags().String("ephemeris", "", "ephemeris source: series or jpl")
	rootCmd.PersistentFlags().String("jpl-file", "", "JPL DE binary file for the jpl source")
}

// bindFlags maps flags onto their config keys.
func bindFlags() {
	persistent := rootCmd.PersistentFlags()
	bindings := []struct {
		key  string
		flag *pflag.Flag
	}{
		{"verbose", persistent.Lookup("verbose")},
		{"dasha.mode", persistent.Lookup("mode")},
		{"ephemeris.source", persistent.Lookup("ephemeris")},
		{"ephemeris.jpl_file", persistent.Lookup("jpl-file")},
		{"server.port", serveCmd.Flags().Lookup("port")},
		{"store.driver", serveCmd.Flags().Lookup("store-driver")},
		{"store.dsn", serveCmd.Flags().Lookup("store-dsn")},
	}
	for _, b := range bindings {
		_ = viper.BindPFlag(b.key, b.flag)
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".jyotish")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()
	bindFlags()

	// No config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// loadConfig reads the merged configuration for a command.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Verbose {
		if f := viper.ConfigFileUsed(); f != "" {
			log.Printf("Using config file %s", f)
		}
	}
	return cfg, nil
}
