// Package config loads the settings of the calkeys terminal host.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Endpoint is the root of the calendar backend.
	Endpoint string `yaml:"endpoint"`
	// SessionCookie is sent to the backend to authenticate preview lookups.
	SessionCookie string `yaml:"session_cookie"`
	LogFile       string `yaml:"log_file"`
	// CopyLinks copies every navigation URL to the clipboard.
	CopyLinks bool   `yaml:"copy_links"`
	Calendar  bool   `yaml:"calendar"`
	WeekStart string `yaml:"week_start"`
	BasePath  string `yaml:"base_path"`
}

func Default() Config {
	return Config{
		Endpoint:  "http://localhost:8080",
		LogFile:   "calkeys.log",
		Calendar:  true,
		WeekStart: "monday",
		BasePath:  "/",
	}
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q", c.Endpoint)
	}

	switch strings.ToLower(c.WeekStart) {
	case "monday", "sunday":
	default:
		return fmt.Errorf("invalid week_start %q: want monday or sunday", c.WeekStart)
	}

	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("invalid base_path %q: must start with /", c.BasePath)
	}

	return nil
}

// FirstWeekday is the weekday the calendar's weeks start on.
func (c Config) FirstWeekday() time.Weekday {
	if strings.EqualFold(c.WeekStart, "sunday") {
		return time.Sunday
	}
	return time.Monday
}
