// Package config loads zkconf's settings file. Settings provide the quorum
// address and root znode; command-line flags override them per invocation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"zkconf/pkg/logging"
)

const (
	userConfigDir  = ".config/zkconf"
	configFileName = "config.yaml"

	// DefaultServer is the quorum address used when neither the settings
	// file nor the --server flag provides one.
	DefaultServer = "127.0.0.1:2181"
	// DefaultZNode is the parent node all documents live beneath.
	DefaultZNode = "/configuration"
)

// Duration wraps time.Duration so the settings file can say "10s" or "1m".
type Duration time.Duration

// UnmarshalYAML parses a duration string like "10s".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Settings is the on-disk configuration shape.
type Settings struct {
	// Server is the quorum address list, comma-separated for ensembles.
	Server string `yaml:"server"`
	// ZNode is the root node holding all configuration documents.
	ZNode string `yaml:"znode"`
	// SessionTimeout bounds the ZooKeeper session, e.g. "10s".
	SessionTimeout Duration `yaml:"session_timeout"`
}

// Servers splits the comma-separated quorum address into a list.
func (s Settings) Servers() []string {
	parts := strings.Split(s.Server, ",")
	servers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			servers = append(servers, trimmed)
		}
	}
	return servers
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		Server: DefaultServer,
		ZNode:  DefaultZNode,
	}
}

// DefaultPathOrPanic returns the per-user settings directory. It panics only
// when the home directory cannot be determined, which makes it safe to use
// as a flag default.
func DefaultPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}
	return filepath.Join(homeDir, userConfigDir)
}

// Load reads config.yaml from the given directory. A missing file is not an
// error — defaults apply — but a malformed one is.
func Load(configPath string) (Settings, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	settings := Defaults()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("config", "No config.yaml found at %s, using defaults", configFilePath)
			return settings, nil
		}
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error loading settings from %s: %w", configFilePath, err)
	}

	if settings.Server == "" {
		settings.Server = DefaultServer
	}
	if settings.ZNode == "" {
		settings.ZNode = DefaultZNode
	}

	logging.Info("config", "Loaded settings from %s", configFilePath)
	return settings, nil
}
