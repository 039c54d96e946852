package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/akhenakh/jyotish/dasha"
	"github.com/akhenakh/jyotish/ephemeris"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Ayanamsa", cfg.Ayanamsa.J2000Arcsec, 85905.0},
		{"DashaMode", cfg.Dasha.Mode, "astronomical"},
		{"EphemerisSource", cfg.Ephemeris.Source, "series"},
		{"ServerPort", cfg.Server.Port, 8080},
		{"StoreDriver", cfg.Store.Driver, "sqlite"},
		{"StoreDSN", cfg.Store.DSN, "jyotish.db"},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "dasha.mode",
			envKey: "JYOTISH_DASHA_MODE",
			envVal: "compatibility",
			field:  func(c Config) any { return c.DashaMode() },
			want:   dasha.CompatibilityAdjusted,
		},
		{
			name:   "server.port",
			envKey: "JYOTISH_SERVER_PORT",
			envVal: "9090",
			field:  func(c Config) any { return c.Server.Port },
			want:   9090,
		},
		{
			name:   "ayanamsa.j2000_arcsec",
			envKey: "JYOTISH_AYANAMSA_J2000_ARCSEC",
			envVal: "85000.5",
			field:  func(c Config) any { return c.AyanamsaModel().J2000Arcsec },
			want:   85000.5,
		},
		{
			name:   "verbose",
			envKey: "JYOTISH_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			BindEnv()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key string
		val any
	}{
		{"dasha.mode", "raman"},
		{"ephemeris.source", "vsop2013"},
		{"ephemeris.source", "jpl"},
		{"store.driver", "mysql"},
		{"ayanamsa.j2000_arcsec", -1.0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%v should be rejected", tt.key, tt.val)
			}
		})
	}
}

func TestArchiveDisabledByEmptyDriver(t *testing.T) {
	resetViper()
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.ArchiveEnabled() {
		t.Error("the default sqlite archive should be enabled")
	}

	resetViper()
	viper.Set("store.driver", "")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("empty store.driver rejected: %v", err)
	}
	if cfg.ArchiveEnabled() || cfg.Store.Driver != "" {
		t.Errorf("store = %+v, want the archive disabled", cfg.Store)
	}

	cfg, err = Decode([]byte("[store]\ndriver = ''\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.ArchiveEnabled() {
		t.Errorf("decoded store = %+v, want the archive disabled", cfg.Store)
	}
}

func TestDecodeEncode(t *testing.T) {
	doc := []byte(`
verbose = true

[dasha]
mode = "compatibility"

[server]
port = 7000
`)
	cfg, err := Decode(doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !cfg.Verbose || cfg.DashaMode() != dasha.CompatibilityAdjusted || cfg.Server.Port != 7000 {
		t.Errorf("decoded = %+v", cfg)
	}
	if cfg.Ayanamsa.J2000Arcsec != 85905 {
		t.Errorf("unset ayanamsa = %v, want default", cfg.Ayanamsa.J2000Arcsec)
	}

	data, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	again, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode(Encode()): %v", err)
	}
	if again != cfg {
		t.Errorf("round trip = %+v, want %+v", again, cfg)
	}

	if _, err := Decode([]byte("[dasha]\nmode = 3")); err == nil {
		t.Error("mode of the wrong type should fail")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jyotish.toml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("second WriteDefault should refuse to overwrite")
	}

	resetViper()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("viper cannot read the written file: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("loaded %+v, want defaults", cfg)
	}

	data, _ := os.ReadFile(path)
	if len(data) == 0 {
		t.Error("empty config file")
	}
}

func TestOpenSource(t *testing.T) {
	src, closeFn, err := Default().OpenSource()
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()
	if _, ok := src.(ephemeris.SeriesSource); !ok {
		t.Errorf("default source = %T, want SeriesSource", src)
	}

	cfg := Default()
	cfg.Ephemeris = EphemerisConfig{Source: "jpl", JPLFile: filepath.Join(t.TempDir(), "missing.440")}
	if _, _, err := cfg.OpenSource(); err == nil {
		t.Error("missing JPL file should fail")
	}
}
