package rec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an on-disk generation configuration for the CLI. Keys are
// optional; missing ones fall back to the package defaults. Corruption and
// dropout rates are fixed by the corruptor contract and not configurable.
type Profile struct {
	NUnique     *int   `yaml:"n_unique"`
	NDuplicates *int   `yaml:"n_duplicates"`
	Seed        *int64 `yaml:"seed"`
	Format      string `yaml:"format"`
}

// LoadProfile parses a YAML profile file.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &Profile{}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	switch p.Format {
	case "", "csv", "jsonl", "msgpack":
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, p.Format)
	}
	return p, nil
}

// Config resolves the profile against the defaults.
func (p *Profile) Config() Config {
	cfg := DefaultConfig()
	if p.NUnique != nil {
		cfg.NUnique = *p.NUnique
	}
	if p.NDuplicates != nil {
		cfg.NDuplicates = *p.NDuplicates
	}
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	return cfg
}

// OutputFormat returns the configured format, defaulting to csv.
func (p *Profile) OutputFormat() string {
	if p.Format == "" {
		return "csv"
	}
	return p.Format
}
