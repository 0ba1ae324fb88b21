package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Shared settings
	DBPath string `env:"DB_PATH"`

	// CLI settings
	SessionFile string `env:"SESSION_FILE"`
	PhotoMaxKB  int    `env:"PHOTO_MAX_KB" envDefault:"500"`
	Version     bool   `env:"-"` // show version and exit (flag only)

	// Report server settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	ServerURL   string `env:"-"`
}

// NewConfig loads .env, then environment variables, then flags as a
// fallback for anything the environment did not set, and fills defaults.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the GearTrack SQLite database")
	flag.StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "path to the scan session file")
	flag.IntVar(&cfg.PhotoMaxKB, "photo-max-kb", cfg.PhotoMaxKB, "student photo size limit in KB")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "report server listen address (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "advertise https URLs for the report server")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.PhotoMaxKB <= 0 {
		cfg.PhotoMaxKB = 500
	}
	// BaseURL must be "address:port" (no scheme, no path); otherwise use the default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8090"
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	home, _ := os.UserHomeDir()
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, "geartrack.db")
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = filepath.Join(home, ".gt_session")
	}

	return cfg
}
