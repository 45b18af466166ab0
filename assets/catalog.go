package assets

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Title is one tape in the catalog.
type Title struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Cover      string  `yaml:"cover"`      // Image under images/
	Duration   float64 `yaml:"duration"`   // Seconds
	Soundtrack string  `yaml:"soundtrack"` // Optional looped audio, relative to the asset root
}

// Source is the media source name the player loads for this title.
func (t Title) Source() string {
	return t.ID + ".mp4"
}

// Catalog lists the selectable titles in menu order.
type Catalog struct {
	Titles []Title `yaml:"titles"`
}

// LoadCatalog reads and validates catalog.yaml from fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, "catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: load catalog.yaml: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("assets: unmarshal catalog.yaml: %w", err)
	}
	if len(c.Titles) == 0 {
		return nil, fmt.Errorf("assets: catalog.yaml: no titles")
	}

	seen := make(map[string]bool, len(c.Titles))
	for i, t := range c.Titles {
		if t.ID == "" {
			return nil, fmt.Errorf("assets: catalog.yaml: title %d has no id", i)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("assets: catalog.yaml: duplicate title %q", t.ID)
		}
		if t.Duration < 0 {
			return nil, fmt.Errorf("assets: catalog.yaml: title %q has negative duration", t.ID)
		}
		seen[t.ID] = true
		if t.Name == "" {
			c.Titles[i].Name = t.ID
		}
	}
	return &c, nil
}

// Durations maps each title's source to its length.
func (c *Catalog) Durations() map[string]float64 {
	out := make(map[string]float64, len(c.Titles))
	for _, t := range c.Titles {
		out[t.Source()] = t.Duration
	}
	return out
}

// Title looks up a title by its source name.
func (c *Catalog) Title(source string) (Title, bool) {
	for _, t := range c.Titles {
		if t.Source() == source {
			return t, true
		}
	}
	return Title{}, false
}

// CoverSlots resolves each title's cover art to an index in names, searching
// from first onwards.
func (c *Catalog) CoverSlots(names []string, first int) (map[string]int, error) {
	out := make(map[string]int, len(c.Titles))
	for _, t := range c.Titles {
		slot := -1
		for i := first; i < len(names); i++ {
			if names[i] == t.Cover {
				slot = i
				break
			}
		}
		if slot < 0 {
			return nil, fmt.Errorf("assets: cover %q for title %q is not in the texture set", t.Cover, t.ID)
		}
		out[t.ID] = slot
	}
	return out, nil
}
