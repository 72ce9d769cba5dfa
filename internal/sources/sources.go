// Package sources loads the feed source list.
//
// The list lives in a YAML file so it can be edited without a rebuild.
// Full source CRUD belongs to an external administrative path; the pipeline
// only ever reads the enabled subset at the start of a run.
package sources

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"newsbrief/internal/model"
)

// File is the YAML config structure
// sources:
//   - id: bbc-world
//     name: BBC News - World
//     feedUrl: https://...
//     enabled: true
type File struct {
	Sources []model.Source `yaml:"sources"`
}

// Load reads the source list from a YAML file.
func Load(path string) ([]model.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sources file: %w", err)
	}
	defer f.Close()

	var cfg File
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode sources file: %w", err)
	}

	for i, s := range cfg.Sources {
		if s.ID == "" || s.FeedURL == "" {
			return nil, fmt.Errorf("source %d: id and feedUrl are required", i)
		}
	}

	return cfg.Sources, nil
}

// Enabled returns only the sources the pipeline should fetch.
func Enabled(all []model.Source) []model.Source {
	var out []model.Source
	for _, s := range all {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// ByID finds a source by its id, or nil.
func ByID(all []model.Source, id string) *model.Source {
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}
