/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package ladder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikeb26/eloladder/internal"
)

const defaultCompetitionKey = "default_competition"

// Config is the small persisted key-value object shared by all commands.
type Config map[string]string

// DefaultCompetition returns the active competition, falling back to the
// fixed default when unset.
func (c Config) DefaultCompetition() string {
	if name, ok := c[defaultCompetitionKey]; ok && name != "" {
		return name
	}
	return internal.DefaultCompetition
}

// SetDefaultCompetition records name as the active competition.
func (c Config) SetDefaultCompetition(name string) {
	c[defaultCompetitionKey] = name
}

// ConfigStore persists the config object as JSON at Path.
type ConfigStore struct {
	Path string
}

// Load returns the persisted config, or an empty config if none exists.
func (s ConfigStore) Load() (Config, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	cfg := Config{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %v: %w", s.Path, err)
	}

	return cfg, nil
}

// Save rewrites the whole config object, creating its directory if needed.
func (s ConfigStore) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to marshal config: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("unable to save config: %w", err)
	}

	return nil
}
