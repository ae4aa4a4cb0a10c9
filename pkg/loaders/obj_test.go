package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

// MockLogger records formatted log lines
type MockLogger struct {
	Lines []string
}

func (m *MockLogger) Printf(format string, args ...interface{}) {
	m.Lines = append(m.Lines, fmt.Sprintf(format, args...))
}

func TestReadOBJ_Square(t *testing.T) {
	input := `# unit square
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1 2 3
f 1/1/1 3/3/1 4/4/1
`
	data, err := ReadOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to read OBJ: %v", err)
	}
	checkSquare(t, data)
}

func TestReadOBJ_QuadAndNegativeIndices(t *testing.T) {
	input := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf -4 -3 -2 -1\n"

	data, err := ReadOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to read OBJ: %v", err)
	}
	checkSquare(t, data)
}

func TestReadOBJ_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 two 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"forward reference", "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"bad index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 b 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadOBJ(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadMesh_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	objFile := filepath.Join(dir, "tri.OBJ")
	if err := os.WriteFile(objFile, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write OBJ: %v", err)
	}

	logger := &MockLogger{}
	data, err := LoadMesh(objFile, logger)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}
	if data.TriangleCount() != 1 {
		t.Errorf("Expected 1 triangle, got %d", data.TriangleCount())
	}
	if len(logger.Lines) != 1 {
		t.Errorf("Expected one log line, got %d", len(logger.Lines))
	}

	if _, err := LoadMesh(filepath.Join(dir, "tri.stl"), logger); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := LoadMesh(filepath.Join(dir, "missing.obj"), logger); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestMeshData_Triangles(t *testing.T) {
	data := &MeshData{Vertices: squareVertices, Faces: []int{0, 1, 2, 0, 2, 3}}

	triangles, err := data.Triangles()
	if err != nil {
		t.Fatalf("Triangles failed: %v", err)
	}
	if len(triangles) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(triangles))
	}

	got := triangles[1].Vertices()
	want := [3]core.Vec3{squareVertices[0], squareVertices[2], squareVertices[3]}
	if got != want {
		t.Errorf("Second triangle: expected %v, got %v", want, got)
	}

	bad := &MeshData{Vertices: squareVertices, Faces: []int{0, 1, 7}}
	if _, err := bad.Triangles(); err == nil {
		t.Error("Expected error for out-of-range face index")
	}
}
