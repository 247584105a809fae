package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/czmate/internal/errors"
)

// Config is the per-user czmate configuration stored in ~/.czmate/config.json.
type Config struct {
	Language   string `json:"language"`
	AutoTicket bool   `json:"auto_ticket"`
	PathFile   string `json:"path_file"`
}

const (
	configDirName     = ".czmate"
	configFileName    = "config.json"
	defaultLang       = LangEN
	defaultAutoTicket = true
)

// LoadConfig reads the user configuration. path is either a .json file or a
// directory (usually the home directory) holding .czmate/config.json. A default
// configuration is written when none exists.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		if path == "" {
			return nil, errors.ErrUserConfig.WithMessage("home directory is not defined")
		}
		configPath = filepath.Join(path, configDirName, configFileName)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	} else if err != nil {
		return nil, errors.ErrUserConfig.WithError(err).WithContext("path", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.ErrUserConfig.WithError(err).WithContext("path", configPath)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.ErrUserConfig.WithError(fmt.Errorf("error decoding JSON: %w", err)).WithContext("path", configPath)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:   defaultLang,
		AutoTicket: defaultAutoTicket,
		PathFile:   path,
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return err
	}

	if config.PathFile == "" {
		return errors.ErrUserConfig.WithMessage("configuration file path is not defined")
	}

	if err := os.MkdirAll(filepath.Dir(config.PathFile), 0755); err != nil {
		return errors.ErrUserConfig.WithError(err).WithContext("path", config.PathFile)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.ErrUserConfig.WithError(err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return errors.ErrUserConfig.WithError(err).WithContext("path", config.PathFile)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.ErrUserConfig.WithMessage("language cannot be empty")
	}
	if !IsSupportedLanguage(config.Language) {
		return errors.ErrUserConfig.WithMessage(fmt.Sprintf("language %q is not supported", config.Language))
	}
	return nil
}
