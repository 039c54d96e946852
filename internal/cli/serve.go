package cli

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akhenakh/jyotish/ephemeris"
	"github.com/akhenakh/jyotish/internal/config"
	"github.com/akhenakh/jyotish/internal/server"
	"github.com/akhenakh/jyotish/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chart web server",
	Long: `Start the HTTP server exposing chart computation, the chart archive and
the HTML chart pages. Changes to the config file apply to new requests.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().String("store-driver", "", "chart archive driver: sqlite or postgres")
	serveCmd.Flags().String("store-dsn", "", "chart archive data source")
	rootCmd.AddCommand(serveCmd)
}

// retireDelay is how long a replaced ephemeris stays open for requests
// that picked it up before a reload.
var retireDelay = 30 * time.Second

type retired struct {
	timer *time.Timer
	once  sync.Once
	close func() error
}

func (r *retired) run() {
	r.once.Do(func() {
		if err := r.close(); err != nil {
			log.Printf("close ephemeris: %v", err)
		}
	})
}

// sources owns the server's ephemeris. A reload keeps the open source when
// the ephemeris settings are unchanged, otherwise it opens the new one and
// closes the old one after retireDelay.
type sources struct {
	mu       sync.Mutex
	openFn   func(config.Config) (ephemeris.Source, func() error, error)
	key      config.EphemerisConfig
	current  ephemeris.Source
	closeCur func() error
	retiring []*retired
}

func newSources() *sources {
	return &sources{openFn: config.Config.OpenSource}
}

func (s *sources) open(cfg config.Config) (server.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.key != cfg.Ephemeris {
		src, closeSrc, err := s.openFn(cfg)
		if err != nil {
			return server.Settings{}, err
		}
		if s.current != nil {
			r := &retired{close: s.closeCur}
			r.timer = time.AfterFunc(retireDelay, r.run)
			s.retiring = append(s.retiring, r)
		}
		s.key, s.current, s.closeCur = cfg.Ephemeris, src, closeSrc
	}
	return server.Settings{Mode: cfg.DashaMode(), Ayanamsa: cfg.AyanamsaModel(), Source: s.current}, nil
}

func (s *sources) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.retiring {
		r.timer.Stop()
		r.run()
	}
	s.retiring = nil
	if s.closeCur != nil {
		if err := s.closeCur(); err != nil {
			log.Printf("close ephemeris: %v", err)
		}
	}
	s.current, s.closeCur = nil, nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srcs := newSources()
	defer srcs.close()
	settings, err := srcs.open(cfg)
	if err != nil {
		return err
	}

	var archive server.Archive
	if cfg.ArchiveEnabled() {
		st, err := store.Open(context.Background(), cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return fmt.Errorf("failed to open chart store: %w", err)
		}
		defer st.Close()
		archive = st
		log.Printf("Chart archive: %s", cfg.Store.Driver)
	} else {
		log.Printf("Chart archive disabled")
	}

	srv := server.New(archive, settings)

	if f := viper.ConfigFileUsed(); f != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			next, err := config.Load()
			if err != nil {
				log.Printf("Ignoring config change in %s: %v", e.Name, err)
				return
			}
			st, err := srcs.open(next)
			if err != nil {
				log.Printf("Ignoring config change in %s: %v", e.Name, err)
				return
			}
			srv.SetSettings(st)
			log.Printf("Reloaded %s: mode %s, ayanamsa %.0f\"", e.Name, st.Mode, st.Ayanamsa.J2000Arcsec)
		})
		viper.WatchConfig()
		log.Printf("Watching %s", f)
	}

	return srv.Listen(fmt.Sprintf(":%d", cfg.Server.Port))
}
