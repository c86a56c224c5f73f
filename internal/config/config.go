package config

// Config holds runtime settings for the qrforge CLI.
//
// Fields:
//   - DatabasePath: path to the SQLite file backing the local store.
//   - DownloadDir: directory downloaded code files are written to.
type Config struct {
	DatabasePath string
	DownloadDir  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "qrforge.db"
	c.DownloadDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
