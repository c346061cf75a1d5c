package config

import (
	"os"
	"path/filepath"
	"strconv"

	"feedlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds interactive UI server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds data handling settings
type DataConfig struct {
	// DefaultFile optionally pre-fills the UI with a dataset path.
	DefaultFile string
	// UploadDir receives files uploaded through the UI.
	UploadDir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	serverConfig, err := loadServerConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load server configuration")
	}

	dataConfig, err := loadDataConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load data configuration")
	}

	return &Config{
		Server: *serverConfig,
		Data:   *dataConfig,
	}, nil
}

func loadServerConfig() (*ServerConfig, error) {
	port := getEnv("PORT", "8080")
	if _, err := strconv.Atoi(port); err != nil {
		return nil, errors.ConfigInvalid("PORT must be numeric: " + port)
	}
	return &ServerConfig{Port: port}, nil
}

func loadDataConfig() (*DataConfig, error) {
	uploadDir := getEnv("UPLOAD_DIR", filepath.Join(os.TempDir(), "feedlens-uploads"))
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "cannot create upload directory %s", uploadDir)
	}
	return &DataConfig{
		DefaultFile: os.Getenv("DATA_FILE"),
		UploadDir:   uploadDir,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
