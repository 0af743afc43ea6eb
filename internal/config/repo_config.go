// Package config provides repository configuration management,
// including reading and writing gitkit configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLogLimit is the number of commits shown when no limit is configured.
const DefaultLogLimit = 20

// RepoConfig represents the repository configuration, stored as JSON at
// .git/.gitkit_config. Missing file or fields fall back to defaults.
type RepoConfig struct {
	DefaultRemote *string `json:"defaultRemote,omitempty"`
	LogLimit      *int    `json:"logLimit,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".gitkit_config")
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// WriteRepoConfig writes the repository configuration
func WriteRepoConfig(repoRoot string, config *RepoConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}
	if err := os.WriteFile(configPath(repoRoot), data, 0o644); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}
	return nil
}

// GetDefaultRemote returns the configured default remote, or "origin"
func GetDefaultRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.DefaultRemote != nil && *config.DefaultRemote != "" {
		return *config.DefaultRemote, nil
	}

	return "origin", nil
}

// GetLogLimit returns the configured log limit, or DefaultLogLimit
func GetLogLimit(repoRoot string) (int, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return 0, err
	}

	if config.LogLimit != nil && *config.LogLimit > 0 {
		return *config.LogLimit, nil
	}

	return DefaultLogLimit, nil
}
