package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
)

// MeshData contains the raw vertex and face data loaded from a mesh file
type MeshData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle, 0-based)
}

// TriangleCount returns the number of triangles described by Faces
func (m *MeshData) TriangleCount() int {
	return len(m.Faces) / 3
}

// Triangles converts the indexed data into triangles in face order
func (m *MeshData) Triangles() ([]*geometry.Triangle, error) {
	mesh, err := m.BuildMesh(nil)
	if err != nil {
		return nil, err
	}
	triangles := make([]*geometry.Triangle, mesh.TriangleCount())
	for i := range triangles {
		triangles[i] = mesh.Triangle(i)
	}
	return triangles, nil
}

// BuildMesh creates a bounded mesh, optionally transformed
func (m *MeshData) BuildMesh(options *geometry.TriangleMeshOptions) (*geometry.Mesh, error) {
	return geometry.NewTriangleMesh(m.Vertices, m.Faces, options)
}

// LoadMesh loads an OBJ or PLY file, choosing the parser by file extension
func LoadMesh(filename string, logger core.Logger) (*MeshData, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".obj":
		return LoadOBJ(filename, logger)
	case ".ply":
		return LoadPLY(filename, logger)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", filename)
	}
}
