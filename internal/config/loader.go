package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".walletscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file structure.
//
// Example:
//
//	helius_api_key: "xxxx"
//	birdeye_api_key: "yyyy"
//	network: mainnet
//	labels:
//	  exchanges:
//	    "5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9": Binance
//	  protocols:
//	    "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4": Jupiter
type File struct {
	// HeliusAPIKey authenticates the primary data provider.
	HeliusAPIKey string `yaml:"helius_api_key"`

	// BirdeyeAPIKey authenticates the optional portfolio provider.
	BirdeyeAPIKey string `yaml:"birdeye_api_key"`

	// Network is the default cluster ("mainnet" or "devnet").
	Network string `yaml:"network"`

	// Labels holds operator-supplied address labels merged into the
	// built-in registry.
	Labels LabelsFile `yaml:"labels"`
}

// LabelsFile holds the custom label maps from the config file.
type LabelsFile struct {
	// Exchanges maps addresses to exchange labels.
	Exchanges map[string]string `yaml:"exchanges"`

	// Protocols maps addresses to protocol labels.
	Protocols map[string]string `yaml:"protocols"`
}

// LoadConfigFile loads configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .walletscan in the current directory
// 3. Look for .walletscan in the user's home directory
//
// Returns the path to the configuration file, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// LoadEnv loads environment variables from .env.local and .env in the
// current directory, if present. Existing environment variables win over
// file entries, so exported keys are never silently overridden.
// Missing files are not an error.
func LoadEnv() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

// ApplyFile merges config-file values into the Config.
// Only unset Config fields are filled, so flags and environment variables
// keep precedence over the file.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if c.HeliusAPIKey == "" {
		c.HeliusAPIKey = f.HeliusAPIKey
	}
	if c.BirdeyeAPIKey == "" {
		c.BirdeyeAPIKey = f.BirdeyeAPIKey
	}
	if f.Network != "" && c.Network == NetworkMainnet {
		c.Network = Network(f.Network)
	}
	if len(f.Labels.Exchanges) > 0 {
		c.CustomExchangeLabels = f.Labels.Exchanges
	}
	if len(f.Labels.Protocols) > 0 {
		c.CustomProtocolLabels = f.Labels.Protocols
	}
}

// ApplyEnv reads provider credentials from the environment.
// Flag-provided values keep precedence.
func (c *Config) ApplyEnv() {
	if c.HeliusAPIKey == "" {
		c.HeliusAPIKey = os.Getenv("HELIUS_API_KEY")
	}
	if c.BirdeyeAPIKey == "" {
		c.BirdeyeAPIKey = os.Getenv("BIRDEYE_API_KEY")
	}
}
