package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading scene files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a scene loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all scene files (.yaml/.yml).
// Invalid files are skipped. Scenes are sorted by name for deterministic
// ordering.
func (l *Loader) LoadAll() ([]Scene, error) {
	var scenes []Scene

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		sc, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		scenes = append(scenes, sc)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// LoadByName loads a specific scene by name.
func (l *Loader) LoadByName(name string) (Scene, error) {
	scenes, err := l.LoadAll()
	if err != nil {
		return Scene{}, err
	}

	for _, sc := range scenes {
		if sc.Name == name {
			return sc, nil
		}
	}

	return Scene{}, fmt.Errorf("scene not found: %s", name)
}

// ListNames returns all scene names in sorted order.
func (l *Loader) ListNames() ([]string, error) {
	scenes, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(scenes))
	for i, sc := range scenes {
		names[i] = sc.Name
	}
	return names, nil
}

// LoadFile loads a single scene file. The scene name defaults to the file
// name without its extension.
func LoadFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scene{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if sc.Name == "" {
		base := filepath.Base(path)
		sc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	sc.FilePath = path

	if sc.Empty() {
		return Scene{}, fmt.Errorf("scene %s: no segments or rectangles", path)
	}

	return sc, nil
}
