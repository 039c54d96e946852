package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/akhenakh/jyotish"
	"github.com/akhenakh/jyotish/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE.json",
	Short: "Compute charts for a JSON array of birth records",
	Long: `Compute a chart for every record of a JSON array such as

  [{"name": "A", "date": "1990-05-15", "time": "08:30", "utc_offset": "+05:30",
    "latitude": 28.6139, "longitude": 77.209, "mode": "astronomical"}]

and print the birth nakshatra and running mahadasha of each. With --save the
charts are stored in the configured archive.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("save", false, "store the charts in the configured archive")
	batchCmd.Flags().String("at", "", "instant for the running mahadasha, YYYY-MM-DD or Julian day (UT)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read batch: %w", err)
	}
	recs, err := jyotish.ParseBirthRecords(data)
	if err != nil {
		return err
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

	var st *store.Store
	if save, _ := cmd.Flags().GetBool("save"); save {
		if !cfg.ArchiveEnabled() {
			return fmt.Errorf("--save needs store.driver to be configured")
		}
		st, err = store.Open(cmd.Context(), cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	t := newTable("Name", "Nakshatra", "Pada", "Mahadasha", "ID")
	for i := range recs {
		r := &recs[i]
		if r.Mode == "" {
			r.Mode = cfg.Dasha.Mode
		}
		b, err := r.ToBirthData()
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		c, err := computeChart(b, cfg)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}

		maha := "-"
		if p, ok := c.CurrentMahadasha(inst.JDTT); ok {
			maha = p.Mahadasha
		}
		id := ""
		if st != nil {
			rec, err := st.Save(cmd.Context(), b, c)
			if err != nil {
				return err
			}
			id = rec.ID
		}
		nk := c.Nakshatra()
		t.add(b.Name, nk.Name, fmt.Sprint(nk.Pada), maha, id)
		if cfg.Verbose {
			log.Printf("Computed %s", b.Name)
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), t)
	return nil
}
