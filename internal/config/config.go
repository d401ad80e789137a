package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the scan root
const FileName = ".envguard.yaml"

// Config represents the envguard configuration file
type Config struct {
	Ignores  IgnoresConfig `yaml:"ignores"`
	EnvFiles []string      `yaml:"env_files"` // Replaces the default env file list when set
}

// IgnoresConfig contains ignore rules for environment variables
type IgnoresConfig struct {
	Missing []string `yaml:"missing"` // Variables to ignore when reporting as missing
	Folders []string `yaml:"folders"` // Directory-name substrings to skip when scanning
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Ignores: IgnoresConfig{
			Missing: []string{},
			Folders: []string{},
		},
	}
}

// LoadConfig loads the config file from the specified directory. A missing
// file is not an error.
func LoadConfig(rootPath string) (*Config, error) {
	configPath := filepath.Join(rootPath, FileName)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Template is the content written by init-config
const Template = `# .envguard.yaml
# Configuration file for envguard

ignores:
  # Variables that are configured in custom ways (not in .env files)
  # These will not be reported as missing
  missing:
    # - CUSTOM_API_KEY
    # - EXTERNAL_SERVICE_TOKEN

  # Directories to skip when scanning. Any directory whose name contains
  # one of these strings is ignored.
  folders:
    # - fixtures
    # - generated

# Env files to compare against, relative to this directory.
# Defaults to .env, .env.example, .env.local, .env.development,
# .env.production and .env.test
# env_files:
#   - .env.example
#   - docker-compose.yml
`

// WriteTemplate creates the config file in dir. It refuses to overwrite an
// existing file.
func WriteTemplate(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists in %s", FileName, dir)
	}
	if err := os.WriteFile(path, []byte(Template), 0644); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", FileName, err)
	}
	return path, nil
}
