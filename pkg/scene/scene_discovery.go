package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
)

// SceneInfo describes a selectable scene
type SceneInfo struct {
	ID          string `json:"id"`          // Value accepted by -scene
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

const builtinGroup = "Built-in Scenes"

// BuiltinScenes lists the scenes constructed in code
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{ID: "default", DisplayName: "Default Scene", Description: "Two spheres over a ground plane, one white light"},
		{ID: "shadow", DisplayName: "Shadow", Description: "Sphere between an overhead light and the ground"},
		{ID: "mesh", DisplayName: "Triangle Mesh", Description: "Octahedron mesh, or the model given by -mesh"},
		{ID: "sdf", DisplayName: "SDF Solid", Description: "Carved rounded box tessellated from a distance field"},
	}
}

// Create builds the scene identified by id: a path to a .json scene file, or
// anything CreateFromDir accepts
func Create(id, scenesDir string, logger core.Logger) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(id), ".json") {
		return LoadFile(id, logger)
	}
	return CreateFromDir(id, scenesDir, logger)
}

// CreateFromDir builds a built-in scene by ID or loads <id>.json from
// scenesDir. Paths are rejected, so only files inside scenesDir are reachable.
func CreateFromDir(id, scenesDir string, logger core.Logger) (*Scene, error) {
	switch id {
	case "default":
		return NewDefaultScene(), nil
	case "shadow":
		return NewShadowScene(), nil
	case "mesh":
		return NewOctahedronScene(), nil
	case "sdf":
		return NewSDFScene(loaders.DefaultSDFCells, logger)
	}

	if id != "" && scenesDir != "" && !strings.ContainsAny(id, `/\`) && !strings.HasPrefix(id, ".") {
		candidate := filepath.Join(scenesDir, id+".json")
		if _, err := os.Stat(candidate); err == nil {
			return LoadFile(candidate, logger)
		}
	}

	return nil, fmt.Errorf("unknown scene: %q", id)
}

// ListSceneFiles scans dir for *.json scene files. Name and description are
// read from the file; unreadable files fall back to the file name. A missing
// directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		scenes = append(scenes, parseSceneFileInfo(filePath))
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// parseSceneFileInfo reads the name and description fields of a scene file
func parseSceneFileInfo(filePath string) SceneInfo {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          filePath,
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files",
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if json.Unmarshal(data, &header) != nil {
		return info
	}

	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description
	return info
}

// ListAllScenes returns the built-in scenes followed by the scene files in
// dir, grouped by category
func ListAllScenes(dir string) ([]SceneGroup, error) {
	builtins := BuiltinScenes()
	for i := range builtins {
		builtins[i].Group = builtinGroup
		builtins[i].Type = "builtin"
	}

	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}

	groups := []SceneGroup{{Name: builtinGroup, Scenes: builtins}}
	if len(files) > 0 {
		groups = append(groups, SceneGroup{Name: files[0].Group, Scenes: files})
	}
	return groups, nil
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
