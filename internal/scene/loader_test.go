package scene

import (
	"os"
	"path/filepath"
	"testing"
)

const crossYAML = `name: cross
segments:
  - {x1: 0, y1: 0, x2: 4, y2: 4}
  - {label: anti, x1: 0, y1: 4, x2: 4, y2: 0}
rects:
  - {label: box, x: 0, y: 0, w: 4, h: 4}
`

func writeScene(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "cross.yaml", crossYAML)

	sc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if sc.Name != "cross" {
		t.Errorf("Name = %q, expected \"cross\"", sc.Name)
	}
	if len(sc.Segments) != 2 || len(sc.Rects) != 1 {
		t.Errorf("loaded %d segments, %d rects", len(sc.Segments), len(sc.Rects))
	}
	if sc.Segments[1].Label != "anti" {
		t.Errorf("segment label = %q, expected \"anti\"", sc.Segments[1].Label)
	}
	if sc.Rects[0].Rect().H != 4 {
		t.Errorf("rect height = %v, expected 4", sc.Rects[0].Rect().H)
	}
	if sc.FilePath != path {
		t.Errorf("FilePath = %q, expected %q", sc.FilePath, path)
	}
}

func TestLoadFileNameDefaultsToFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "unnamed.yml", "segments:\n  - {x1: 0, y1: 0, x2: 1, y2: 1}\n")

	sc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if sc.Name != "unnamed" {
		t.Errorf("Name = %q, expected \"unnamed\"", sc.Name)
	}
}

func TestLoadFileRejectsEmptyScene(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "empty.yaml", "name: empty\n")

	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for scene with no elements")
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "b.yaml", "name: beta\nsegments:\n  - {x1: 0, y1: 0, x2: 1, y2: 1}\n")
	writeScene(t, dir, "a.yaml", "name: alpha\nsegments:\n  - {x1: 0, y1: 0, x2: 2, y2: 2}\n")
	writeScene(t, dir, "broken.yaml", "{{{not yaml")
	writeScene(t, dir, "readme.txt", "not a scene")

	// Nested directories are scanned too.
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeScene(t, sub, "c.yml", "name: gamma\nsegments:\n  - {x1: 1, y1: 1, x2: 3, y2: 3}\n")

	loader := NewLoader(dir)
	scenes, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d", len(scenes))
	}

	// Sorted by name.
	names := []string{scenes[0].Name, scenes[1].Name, scenes[2].Name}
	if names[0] != "alpha" || names[1] != "beta" || names[2] != "gamma" {
		t.Errorf("scene order = %v", names)
	}
}

func TestLoaderLoadByName(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "cross.yaml", crossYAML)

	loader := NewLoader(dir)

	sc, err := loader.LoadByName("cross")
	if err != nil {
		t.Fatalf("LoadByName() failed: %v", err)
	}
	if sc.Name != "cross" {
		t.Errorf("Name = %q", sc.Name)
	}

	if _, err := loader.LoadByName("missing"); err == nil {
		t.Error("expected error for unknown scene name")
	}
}

func TestLoaderListNames(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "cross.yaml", crossYAML)
	writeScene(t, dir, "other.yaml", "name: other\nrects:\n  - {x: 0, y: 0, w: 1, h: 1}\n")

	loader := NewLoader(dir)
	names, err := loader.ListNames()
	if err != nil {
		t.Fatalf("ListNames() failed: %v", err)
	}
	if len(names) != 2 || names[0] != "cross" || names[1] != "other" {
		t.Errorf("names = %v", names)
	}
}
