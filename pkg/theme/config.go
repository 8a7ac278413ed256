package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	facerrors "github.com/go-drift/facet/pkg/errors"
)

// Config represents the optional facet.yaml configuration.
type Config struct {
	Details DetailsConfig `yaml:"details"`
}

// DetailsConfig overrides Details timing variables. Durations use Go
// duration syntax ("250ms"). Empty fields keep the theme's value.
type DetailsConfig struct {
	ShowDuration string `yaml:"showDuration,omitempty"`
	HideDuration string `yaml:"hideDuration,omitempty"`
	ShowEasing   string `yaml:"showEasing,omitempty"`
	HideEasing   string `yaml:"hideEasing,omitempty"`
}

// LoadOptional reads facet.yaml from dir if present. A missing file is not
// an error and yields an empty config. Failures are returned as structured
// errors with the config kind so the embedding shell can categorize them.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "facet.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("theme.LoadOptional", fmt.Errorf("failed to read facet.yaml: %w", err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("theme.LoadOptional", fmt.Errorf("failed to parse facet.yaml: %w", err))
	}

	return &cfg, nil
}

// Apply returns the theme with the config's overrides resolved on top of it.
func (c *Config) Apply(t DetailsTheme) (DetailsTheme, error) {
	var err error
	if t.ShowDuration, err = overrideDuration(t.ShowDuration, c.Details.ShowDuration); err != nil {
		return t, configError("theme.Config.Apply", fmt.Errorf("details.showDuration: %w", err))
	}
	if t.HideDuration, err = overrideDuration(t.HideDuration, c.Details.HideDuration); err != nil {
		return t, configError("theme.Config.Apply", fmt.Errorf("details.hideDuration: %w", err))
	}
	if c.Details.ShowEasing != "" {
		t.ShowEasing = c.Details.ShowEasing
	}
	if c.Details.HideEasing != "" {
		t.HideEasing = c.Details.HideEasing
	}
	return t, nil
}

func configError(op string, err error) *facerrors.FacetError {
	return &facerrors.FacetError{
		Op:        op,
		Kind:      facerrors.KindConfig,
		Err:       err,
		Timestamp: time.Now(),
	}
}

func overrideDuration(current time.Duration, raw string) (time.Duration, error) {
	if raw == "" {
		return current, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return current, err
	}
	if d < 0 {
		return current, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}
