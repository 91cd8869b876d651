package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Decks.validate(); err != nil {
		return fmt.Errorf("decks: %w", err)
	}
	if err := c.Viewer.validate(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", s.Driver)
		}
	case DriverPostgres:
		if strings.TrimSpace(s.DSN) == "" {
			return fmt.Errorf("dsn is required for driver %q", s.Driver)
		}
		if s.MaxConns <= 0 {
			return fmt.Errorf("max_conns must be > 0 (got %d)", s.MaxConns)
		}
		if s.MinConns < 0 || s.MinConns > s.MaxConns {
			return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", s.MinConns)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s or %s)", s.Driver, DriverMemory, DriverSQLite, DriverPostgres)
	}

	if strings.TrimSpace(s.CollectionKey) == "" {
		return fmt.Errorf("collection_key must not be empty")
	}
	return nil
}

func (d *DecksConfig) validate() error {
	switch d.Source {
	case SourceDir:
		if strings.TrimSpace(d.Dir) == "" {
			return fmt.Errorf("dir is required for source %q", d.Source)
		}
	case SourceHTTP:
		u, err := url.Parse(d.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url must be an absolute URL for source %q (got %q)", d.Source, d.BaseURL)
		}
	default:
		return fmt.Errorf("unknown source %q (want %s or %s)", d.Source, SourceDir, SourceHTTP)
	}

	if d.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", d.Timeout)
	}
	if d.DefaultDeck == "myDeck" {
		return fmt.Errorf("default_deck must name an external deck")
	}
	return nil
}

func (v *ViewerConfig) validate() error {
	if v.FlipDuration <= 0 {
		return fmt.Errorf("flip_duration must be > 0 (got %v)", v.FlipDuration)
	}
	switch strings.ToUpper(v.Orientation) {
	case "NATIVE", "TRANSLATION":
		v.Orientation = strings.ToUpper(v.Orientation)
	default:
		return fmt.Errorf("orientation must be NATIVE or TRANSLATION (got %q)", v.Orientation)
	}
	return nil
}
