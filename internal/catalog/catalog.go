package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ivlev/viewanimator/internal/animation"
	"gopkg.in/yaml.v3"
)

// Catalog is a named set of animation declarations
type Catalog struct {
	Version    string  `yaml:"version"`
	Animations []Entry `yaml:"animations"`
}

// Entry is one animation declaration
type Entry struct {
	Name      string         `yaml:"name"`
	Animation animation.Type `yaml:"animation"`
}

// UnmarshalYAML rejects entries without an animation key; the zero
// animation would otherwise slip through as from(top, 0).
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name      string          `yaml:"name"`
		Animation *animation.Type `yaml:"animation"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Animation == nil {
		return fmt.Errorf("line %d: entry %q has no animation", value.Line, raw.Name)
	}
	e.Name, e.Animation = raw.Name, *raw.Animation
	return nil
}

// Parse decodes a catalog from YAML
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Animations))
	for i, e := range c.Animations {
		if e.Name == "" {
			c.Animations[i].Name = fmt.Sprintf("animation_%d", i+1)
		}
		if seen[c.Animations[i].Name] {
			return nil, fmt.Errorf("duplicate animation name %q", c.Animations[i].Name)
		}
		seen[c.Animations[i].Name] = true
	}

	return &c, nil
}

// Read reads a catalog from a YAML file
func Read(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Write writes a catalog to a YAML file
func Write(c *Catalog, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Lookup finds an entry by name
func (c *Catalog) Lookup(name string) (animation.Type, bool) {
	for _, e := range c.Animations {
		if e.Name == name {
			return e.Animation, true
		}
	}
	return animation.Type{}, false
}

// GeneratePath creates a timestamped catalog filename inside dir
func GeneratePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("catalog_%s.yaml", timestamp))
}

// FindLatest finds the most recently modified catalog in dir
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read catalog directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if !entry.IsDir() && (strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	if len(paths) == 0 {
		return "", fmt.Errorf("no catalog files found in %s", dir)
	}

	modTime := make(map[string]time.Time, len(paths))
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil {
			modTime[p] = info.ModTime()
		}
	}

	// Newest first
	sort.Slice(paths, func(i, j int) bool {
		return modTime[paths[i]].After(modTime[paths[j]])
	})

	return paths[0], nil
}
