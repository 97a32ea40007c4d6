package config

import (
	"fmt"
	"time"
)

// Config represents the entire user configuration file.
type Config struct {
	Version     int                     `yaml:"version"`
	ProductType string                  `yaml:"product_type"`          // Product priced when no item file names one
	PriceTable  string                  `yaml:"price_table,omitempty"` // Path to a YAML price book; empty uses the built-in one
	Rows        int                     `yaml:"rows"`                  // Editable rows in a blank quote
	Server      *ServerPrefs            `yaml:"server,omitempty"`
	Logging     *LoggingPrefs           `yaml:"logging,omitempty"`
	Servers     map[string]*KnownServer `yaml:"servers,omitempty"` // Editor servers seen on the LAN, keyed by instance name
}

// ServerPrefs configures `quotedesk serve`.
type ServerPrefs struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Advertise bool   `yaml:"advertise"`          // Announce the server over mDNS
	Instance  string `yaml:"instance,omitempty"` // mDNS instance name; defaults to the hostname
}

// LoggingPrefs configures log output.
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error; empty is silent
	File  string `yaml:"file,omitempty"`  // Log file used by the interactive editor
}

// KnownServer remembers an editor server found by a scan.
type KnownServer struct {
	Host     string    `yaml:"host"`
	Port     int       `yaml:"port"`
	Product  string    `yaml:"product,omitempty"`
	LastSeen time.Time `yaml:"last_seen,omitempty"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:     1,
		ProductType: "roller",
		Rows:        5,
		Server:      defaultServerPrefs(),
		Logging:     &LoggingPrefs{},
		Servers:     make(map[string]*KnownServer),
	}
}

func defaultServerPrefs() *ServerPrefs {
	return &ServerPrefs{
		Host: "127.0.0.1",
		Port: 8765,
	}
}

// Addr returns host:port for the server preferences.
func (s *ServerPrefs) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RememberServer records a scanned server.
func (c *Config) RememberServer(instance, host string, port int, product string) {
	if c.Servers == nil {
		c.Servers = make(map[string]*KnownServer)
	}
	c.Servers[instance] = &KnownServer{
		Host:     host,
		Port:     port,
		Product:  product,
		LastSeen: time.Now(),
	}
}

// Validate checks the configuration values.
// Returns a slice of validation errors (empty if valid).
func (c *Config) Validate() []error {
	var errs []error

	if c.ProductType == "" {
		errs = append(errs, fmt.Errorf("product_type cannot be empty"))
	}
	if c.Rows < 0 {
		errs = append(errs, fmt.Errorf("rows must not be negative, got %d", c.Rows))
	}
	if c.Server != nil && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Errorf("server port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Logging != nil {
		switch c.Logging.Level {
		case "", "debug", "info", "warn", "error":
		default:
			errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
		}
	}

	return errs
}
