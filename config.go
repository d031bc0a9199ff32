package savekit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Fallback entity generation when neither hint nor reference context
	// narrows the format
	DefaultGeneration int `env:"SAVEKIT_DEFAULT_GENERATION,default:6"`

	// Boundary logging
	LogLevel  string `env:"SAVEKIT_LOG_LEVEL,default:info"`
	LogFormat string `env:"SAVEKIT_LOG_FORMAT,default:text"` // text or json

	// Default filename pattern for directory scans
	ScanPattern string `env:"SAVEKIT_SCAN_PATTERN,default:*"`

	// Checksum algorithm reported alongside detection results
	ChecksumAlgorithm string `env:"SAVEKIT_CHECKSUM_ALGORITHM,default:xxhash"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
