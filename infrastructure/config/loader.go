package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration. Every field is
// optional; commands fall back to built-in defaults when the file is
// absent.
type Config struct {
	Audio    AudioConfig    `yaml:"audio"`
	Tools    ToolsConfig    `yaml:"tools"`
	Download DownloadConfig `yaml:"download"`
	Google   GoogleConfig   `yaml:"google"`
}

// AudioConfig contains audio extraction settings.
type AudioConfig struct {
	Bitrate string `yaml:"bitrate"`
}

// ToolsConfig overrides the external tool locations.
type ToolsConfig struct {
	FFmpegPath string `yaml:"ffmpeg_path"`
	YTDLPPath  string `yaml:"ytdlp_path"`
}

// DownloadConfig contains acquisition settings.
type DownloadConfig struct {
	Directory string `yaml:"directory"`
}

// GoogleConfig contains Google Drive upload settings.
type GoogleConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	TokenFile       string `yaml:"token_file"`
	FolderID        string `yaml:"folder_id"`
}

// Load reads and parses the configuration from the specified YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the specified YAML file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
