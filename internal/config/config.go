package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taglme/langswitch/internal/inject"
)

// DefaultConfigPath is read when no -config flag is given
const DefaultConfigPath = "config.yaml"

// Config represents the complete application configuration
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Injection struct {
		Backend    string `yaml:"backend"`
		KeyDelayMS int    `yaml:"key_delay_ms"`
	} `yaml:"injection"`
	// Shortcuts maps a layout name to a comma separated key list
	Shortcuts     map[string]string `yaml:"shortcuts"`
	Notifications struct {
		Enabled     bool `yaml:"enabled"`
		ShowSuccess bool `yaml:"show_success"`
		ShowErrors  bool `yaml:"show_errors"`
	} `yaml:"notifications"`
	Web struct {
		OpenStatusPage bool `yaml:"open_status_page"`
	} `yaml:"web"`
	Logging struct {
		ToFile    bool   `yaml:"to_file"`
		Directory string `yaml:"directory"`
	} `yaml:"logging"`
	Advanced struct {
		SingleInstance bool `yaml:"single_instance"`
	} `yaml:"advanced"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	config := &Config{}

	// Loopback only
	config.Server.Host = "127.0.0.1"
	config.Server.Port = 8181

	config.Injection.Backend = inject.BackendRobotgo
	config.Injection.KeyDelayMS = 10

	config.Shortcuts = map[string]string{
		"english": "alt,shiftleft,2",
		"hebrew":  "alt,shiftleft,1",
	}

	config.Notifications.Enabled = false
	config.Notifications.ShowSuccess = false
	config.Notifications.ShowErrors = true

	config.Web.OpenStatusPage = false

	config.Logging.ToFile = false
	config.Logging.Directory = "logs"

	config.Advanced.SingleInstance = true

	return config
}

// LoadConfig loads configuration from a YAML file, then applies command-line flags from args
func LoadConfig(args []string) (*Config, error) {
	config := DefaultConfig()

	fs := flag.NewFlagSet("langswitch", flag.ContinueOnError)
	configPath := fs.String("config", DefaultConfigPath, "Path to the YAML configuration file")
	host := fs.String("host", "", "Address to bind (default from config, 127.0.0.1)")
	port := fs.Int("port", -1, "Port to listen on (default from config, 8181)")
	backend := fs.String("backend", "", "Key injection backend: robotgo or keybd_event")
	openStatus := fs.Bool("open-status-page", false, "Open the status page in the browser on startup")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if _, err := os.Stat(*configPath); err == nil {
		fmt.Printf("Loading configuration from %s\n", *configPath)
		if err := loadConfigFromFile(config, *configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else if *configPath != DefaultConfigPath {
		return nil, fmt.Errorf("config file %s: %w", *configPath, err)
	}

	// Flags win over the file
	if *host != "" {
		config.Server.Host = *host
	}
	if *port >= 0 {
		config.Server.Port = *port
	}
	if *backend != "" {
		config.Injection.Backend = *backend
	}
	if *openStatus {
		config.Web.OpenStatusPage = true
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadConfigFromFile loads configuration from a YAML file
func loadConfigFromFile(config *Config, filename string) error {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}

	// A shortcuts section in the file replaces the default table instead of merging into it
	defaults := config.Shortcuts
	config.Shortcuts = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		config.Shortcuts = defaults
		return err
	}
	if config.Shortcuts == nil {
		config.Shortcuts = defaults
	}
	return nil
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if config.Server.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}

	if config.Server.Port < 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 0 and 65535, got: %d", config.Server.Port)
	}

	if !inject.IsKnownBackend(config.Injection.Backend) {
		return fmt.Errorf("unknown injection backend: %s", config.Injection.Backend)
	}

	if config.Injection.KeyDelayMS < 0 {
		return fmt.Errorf("key delay must be non-negative, got: %d", config.Injection.KeyDelayMS)
	}

	for name, keys := range config.Shortcuts {
		if name == "" {
			return fmt.Errorf("shortcut name cannot be empty")
		}
		if _, err := inject.ParseKeySequence(keys); err != nil {
			return fmt.Errorf("shortcut %s: %w", name, err)
		}
	}

	return nil
}

// Addr returns host:port for the HTTP listener
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// KeyDelay returns the pause between key events
func (c *Config) KeyDelay() time.Duration {
	return time.Duration(c.Injection.KeyDelayMS) * time.Millisecond
}
