package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"two-spheres", "Two Spheres"},
		{"shadow_test", "Shadow Test"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"with-name.json": `{"name": "Another Scene", "description": "Has metadata"}`,
		"no_name.json":   `{"width": 10}`,
		"broken.json":    `{not json`,
		"ignored.pbrt":   `LookAt 0 0 0`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}

	expected := []struct {
		displayName string
		description string
		file        string
	}{
		{"Another Scene", "Has metadata", "with-name.json"},
		{"Broken", "", "broken.json"},
		{"No Name", "", "no_name.json"},
	}
	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d: %+v", len(expected), len(scenes), scenes)
	}

	for i, want := range expected {
		got := scenes[i]
		if got.DisplayName != want.displayName {
			t.Errorf("Scene %d DisplayName = %q, want %q", i, got.DisplayName, want.displayName)
		}
		if got.Description != want.description {
			t.Errorf("Scene %d Description = %q, want %q", i, got.Description, want.description)
		}
		if filepath.Base(got.FilePath) != want.file || got.ID != got.FilePath {
			t.Errorf("Scene %d path/ID = %q/%q, want %s", i, got.FilePath, got.ID, want.file)
		}
		if got.Type != "file" {
			t.Errorf("Scene %d Type = %q, want file", i, got.Type)
		}
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.json"), []byte(`{}`), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	groups, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Built-in Scenes" {
		t.Errorf("First group = %q, want Built-in Scenes", groups[0].Name)
	}

	ids := make(map[string]bool)
	for _, info := range groups[0].Scenes {
		if info.Type != "builtin" {
			t.Errorf("Built-in scene %s has type %q", info.ID, info.Type)
		}
		ids[info.ID] = true
	}
	for _, id := range []string{"default", "shadow", "mesh", "sdf"} {
		if !ids[id] {
			t.Errorf("Missing expected built-in scene: %s", id)
		}
	}

	if len(groups[1].Scenes) != 1 || groups[1].Scenes[0].DisplayName != "Extra" {
		t.Errorf("Unexpected file group: %+v", groups[1])
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"name": "Single",
		"camera": {"position": [0, 0, 0], "forward": [0, 0, 1], "up": [0, 1, 0]},
		"lights": [{"position": [0, 5, 0], "color": [255, 255, 255]}],
		"spheres": [{"center": [0, 0, 5], "radius": 1, "color": [255, 0, 0]}]
	}`
	path := filepath.Join(dir, "single.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	tests := []struct {
		id          string
		objects     int
		expectError bool
	}{
		{"default", 3, false},
		{"shadow", 3, false},
		{"mesh", 2, false},
		{path, 1, false},
		{"single", 1, false},
		{"missing", 0, true},
		{"../single", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := Create(tt.id, dir, &MockLogger{})
			if tt.expectError {
				if err == nil || s != nil {
					t.Errorf("Create(%q) = %v, %v; want nil scene and error", tt.id, s, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create(%q) error: %v", tt.id, err)
			}
			if s.ObjectCount() != tt.objects {
				t.Errorf("Create(%q) has %d objects, want %d", tt.id, s.ObjectCount(), tt.objects)
			}
		})
	}
}

func TestCreateFromDir_RejectsPaths(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	content := `{"spheres": [{"center": [0, 0, 5], "radius": 1, "color": [255, 0, 0]}]}`
	for _, d := range []string{dir, outside} {
		if err := os.WriteFile(filepath.Join(d, "single.json"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write scene file: %v", err)
		}
	}
	outsidePath := filepath.Join(outside, "single.json")

	if _, err := CreateFromDir("single", dir, &MockLogger{}); err != nil {
		t.Fatalf("Bare name inside the scenes directory should load: %v", err)
	}

	rejected := []string{
		outsidePath,
		filepath.Join(outside, "single"),
		"single.json",
		"..",
		".hidden",
		`..\single`,
	}
	for _, id := range rejected {
		t.Run(id, func(t *testing.T) {
			if s, err := CreateFromDir(id, dir, &MockLogger{}); err == nil || s != nil {
				t.Errorf("CreateFromDir(%q) should be rejected", id)
			}
		})
	}

	// The unrestricted variant still accepts explicit file paths
	if _, err := Create(outsidePath, dir, &MockLogger{}); err != nil {
		t.Errorf("Create(%q) error: %v", outsidePath, err)
	}
}
