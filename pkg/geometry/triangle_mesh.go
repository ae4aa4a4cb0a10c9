package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raycaster/pkg/core"
)

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Rotation *core.Vec3 // Optional rotation (radians around X, Y, Z) to apply to vertices
	Center   *core.Vec3 // Optional center point for rotation
	Scale    float64    // Optional uniform scale applied before rotation (0 = 1)
	Offset   core.Vec3  // Translation applied last
}

// NewTriangleMesh creates a new mesh from vertices and face indices.
// Each group of 3 indices in faces forms a triangle, wound in the given order.
// options can be nil for an untransformed mesh.
func NewTriangleMesh(vertices []core.Vec3, faces []int, options *TriangleMeshOptions) (*Mesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	workingVertices := vertices
	if options != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			workingVertices[i] = transformVertex(vertex, options)
		}
	}

	numTriangles := len(faces) / 3
	triangles := make([]*Triangle, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		if i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			return nil, fmt.Errorf("face %d: index out of bounds (%d, %d, %d) for %d vertices",
				i, i0, i1, i2, len(workingVertices))
		}

		triangles[i] = NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2])
	}

	return NewMesh(triangles), nil
}

// transformVertex applies scale, rotation about the center, then offset
func transformVertex(vertex core.Vec3, options *TriangleMeshOptions) core.Vec3 {
	if options.Scale != 0 {
		vertex = vertex.Multiply(options.Scale)
	}
	if options.Rotation != nil {
		if options.Center != nil {
			vertex = vertex.Subtract(*options.Center)
		}
		vertex = rotateVertex(vertex, *options.Rotation)
		if options.Center != nil {
			vertex = vertex.Add(*options.Center)
		}
	}
	return vertex.Add(options.Offset)
}

// rotateVertex applies rotation around X, Y, Z axes (in that order)
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	if rotation.X != 0 {
		cos, sin := math.Cos(rotation.X), math.Sin(rotation.X)
		vertex = core.NewVec3(vertex.X, vertex.Y*cos-vertex.Z*sin, vertex.Y*sin+vertex.Z*cos)
	}

	if rotation.Y != 0 {
		cos, sin := math.Cos(rotation.Y), math.Sin(rotation.Y)
		vertex = core.NewVec3(vertex.X*cos+vertex.Z*sin, vertex.Y, -vertex.X*sin+vertex.Z*cos)
	}

	if rotation.Z != 0 {
		cos, sin := math.Cos(rotation.Z), math.Sin(rotation.Z)
		vertex = core.NewVec3(vertex.X*cos-vertex.Y*sin, vertex.X*sin+vertex.Y*cos, vertex.Z)
	}

	return vertex
}
