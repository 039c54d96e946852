package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/ephemeris"
)

var ingressCmd = &cobra.Command{
	Use:   "ingress",
	Short: "List the nakshatra ingresses of a body over a window",
	Example: `  jyotish ingress --body Moon --from 2026-01-01 --days 30
  jyotish ingress --body Rahu --days 3650`,
	Args: cobra.NoArgs,
	RunE: runIngress,
}

func init() {
	ingressCmd.Flags().String("body", "Moon", "body to follow")
	ingressCmd.Flags().String("from", "", "window start as YYYY-MM-DD or Julian day (UT), default now")
	ingressCmd.Flags().Float64("days", 30, "window length in days")
	rootCmd.AddCommand(ingressCmd)
}

func runIngress(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("body")
	body, err := ephemeris.ParseBody(name)
	if err != nil {
		return err
	}
	from, _ := cmd.Flags().GetString("from")
	start, err := parseWhen(from)
	if err != nil {
		return err
	}
	days, _ := cmd.Flags().GetFloat64("days")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, closeSrc, err := cfg.OpenSource()
	if err != nil {
		return err
	}
	defer closeSrc()

	s := jyotish.TransitSearch{Source: src, Ayanamsa: cfg.AyanamsaModel(), Mode: cfg.DashaMode()}
	ings, err := s.FindIngresses(body, start.JDTT, start.JDTT+days)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%s nakshatra ingresses, %d found", body, len(ings))))
	t := newTable("Date", "JD (TT)", "From", "To")
	for _, in := range ings {
		t.add(in.Date, fmt.Sprintf("%.5f", in.JD), in.From.Name, in.To.Name)
	}
	fmt.Fprint(out, t)
	return nil
}
