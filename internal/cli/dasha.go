package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/timescale"
)

var dashaCmd = &cobra.Command{
	Use:   "dasha [YYYY-MM-DD HH:MM ±HH:MM LAT LON [MODE]]",
	Short: "Print the Vimshottari dasha periods running at an instant",
	Long: `Print the mahadasha, antardasha and pratyantardasha running at --at
(default now), followed by the sub-periods of the running period at
--level.`,
	RunE: runDasha,
}

func init() {
	addBirthFlags(dashaCmd)
	dashaCmd.Flags().String("at", "", "instant as YYYY-MM-DD or Julian day (UT), default now")
	dashaCmd.Flags().Int("level", 1, "list periods down to this level: 1 mahadasha, 2 antardasha, 3 pratyantardasha")
	rootCmd.AddCommand(dashaCmd)
}

func runDasha(cmd *cobra.Command, args []string) error {
	level, _ := cmd.Flags().GetInt("level")
	if level < 1 || level > 3 {
		return fmt.Errorf("--level must be 1, 2 or 3")
	}
	at, _ := cmd.Flags().GetString("at")
	inst, err := parseWhen(at)
	if err != nil {
		return err
	}

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

	out := cmd.OutOrStdout()
	nk := c.Nakshatra()
	fmt.Fprintln(out, field("Birth nakshatra", fmt.Sprintf("%s, pada %d, lord %s", nk.Name, nk.Pada, nk.Lord)))
	fmt.Fprintln(out, field("At", fmt.Sprintf("%s (JD %.4f UT)", timescale.FormatJD(inst.JDUT), inst.JDUT)))

	maha, ok := c.CurrentMahadasha(inst.JDTT)
	if !ok {
		fmt.Fprintln(out, "No dasha is running at that instant.")
		return nil
	}
	antar, _ := c.CurrentAntardasha(inst.JDTT)
	prat, _ := c.CurrentPratyantardasha(inst.JDTT)
	fmt.Fprintln(out, field("Running", periodLabel(prat)))
	fmt.Fprintln(out)

	printPeriods(out, "Mahadashas", c.Mahadashas(), inst.JDTT)
	if level >= 2 {
		fmt.Fprintln(out)
		printPeriods(out, "Antardashas of "+maha.Mahadasha, within(c.Antardashas(), maha), inst.JDTT)
	}
	if level >= 3 {
		fmt.Fprintln(out)
		printPeriods(out, "Pratyantardashas of "+periodLabel(antar), within(c.Pratyantardashas(), antar), inst.JDTT)
	}
	return nil
}

// within keeps the sub-periods of parent.
func within(ps []jyotish.PeriodRecord, parent jyotish.PeriodRecord) []jyotish.PeriodRecord {
	var out []jyotish.PeriodRecord
	for _, p := range ps {
		if p.Mahadasha != parent.Mahadasha {
			continue
		}
		if parent.Antardasha == "" || p.Antardasha == parent.Antardasha {
			out = append(out, p)
		}
	}
	return out
}
