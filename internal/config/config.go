// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Addr     string `yaml:"addr" json:"addr"`
		SiteName string `yaml:"site_name" json:"site_name"`
		DataDir  string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Jobs struct {
		Source       string `yaml:"source" json:"source"`
		PageSize     int    `yaml:"page_size" json:"page_size"`
		RelatedLimit int    `yaml:"related_limit" json:"related_limit"`
	} `yaml:"jobs" json:"jobs"`

	Cache struct {
		TTLSeconds     int `yaml:"ttl_seconds" json:"ttl_seconds"`         // 0 keeps entries until invalidated
		RefreshSeconds int `yaml:"refresh_seconds" json:"refresh_seconds"` // 0 disables the refresher
	} `yaml:"cache" json:"cache"`

	Upstream struct {
		RequestsPerSec float64 `yaml:"requests_per_sec" json:"requests_per_sec"`
		Burst          int     `yaml:"burst" json:"burst"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
	} `yaml:"upstream" json:"upstream"`

	Bookmarks struct {
		Backend string `yaml:"backend" json:"backend"` // noop | sqlite
	} `yaml:"bookmarks" json:"bookmarks"`

	Log struct {
		Level  string `yaml:"level" json:"level"`
		Format string `yaml:"format" json:"format"` // text | json
	} `yaml:"log" json:"log"`

	// Skills adds or replaces category -> skill label lists on the details page.
	Skills map[string][]string `yaml:"skills" json:"skills"`
}

// Default returns the values used for any key a config file leaves out.
func Default() Config {
	var cfg Config
	cfg.App.Addr = "127.0.0.1:8080"
	cfg.App.SiteName = "TiroAfrica"
	cfg.App.DataDir = "."
	cfg.Jobs.Source = "data/jobs-posting.json"
	cfg.Jobs.PageSize = 6
	cfg.Jobs.RelatedLimit = 3
	cfg.Upstream.RequestsPerSec = 2
	cfg.Upstream.Burst = 4
	cfg.Upstream.TimeoutSeconds = 15
	cfg.Bookmarks.Backend = "sqlite"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
