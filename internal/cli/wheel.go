package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var wheelCmd = &cobra.Command{
	Use:   "wheel [YYYY-MM-DD HH:MM ±HH:MM LAT LON [MODE]]",
	Short: "Write the sidereal zodiac wheel of a chart as SVG",
	RunE:  runWheel,
}

func init() {
	addBirthFlags(wheelCmd)
	wheelCmd.Flags().StringP("output", "o", "chart.svg", "output file, - for stdout")
	rootCmd.AddCommand(wheelCmd)
}

func runWheel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b, err := readBirth(cmd, args, cfg)
	if err != nil {
		return err
	}
	c, err := computeChart(b, cfg)
	if err != nil {
		return err
	}

	svg := c.GenerateWheelSVG()
	path, _ := cmd.Flags().GetString("output")
	if path == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write wheel: %w", err)
	}
	if cfg.Verbose {
		log.Printf("Wrote %s", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "SVG chart saved to %s\n", path)
	return nil
}
