// Package seed reads and writes the sample records a new dashboard starts with.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"avatarhub/internal/model"
)

type file struct {
	Avatars []model.AvatarRecord `yaml:"avatars"`
}

// Load returns the records in the YAML file at path, or the built-in sample
// list when path is empty.
func Load(path string) ([]model.AvatarRecord, error) {
	if path == "" {
		return model.SeedAvatars(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	if err := Check(f.Avatars); err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return f.Avatars, nil
}

// Write stores records as YAML at path.
func Write(path string, records []model.AvatarRecord) error {
	data, err := yaml.Marshal(file{Avatars: records})
	if err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write seed %s: %w", path, err)
	}
	return nil
}

// Check enforces what the store relies on: positive, unique ids.
func Check(records []model.AvatarRecord) error {
	seen := make(map[int]bool, len(records))
	for i, r := range records {
		if r.ID <= 0 {
			return fmt.Errorf("avatar #%d: id must be positive (got %d)", i+1, r.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("avatar #%d: duplicate id %d", i+1, r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}
