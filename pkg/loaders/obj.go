package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// LoadOBJ loads the vertex positions and faces of a Wavefront OBJ file
func LoadOBJ(filename string, logger core.Logger) (*MeshData, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ReadOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Printf("Loaded OBJ mesh %s: %d vertices, %d triangles in %v\n",
		filename, len(data.Vertices), data.TriangleCount(), time.Since(startTime))
	return data, nil
}

// ReadOBJ parses "v" and "f" statements and ignores everything else.
// Face indices are 1-based; negative indices count back from the most recent
// vertex. Texture and normal references ("1/2/3") are dropped, and faces with
// more than three vertices become triangle fans.
func ReadOBJ(r io.Reader) (*MeshData, error) {
	data := &MeshData{
		Vertices: make([]core.Vec3, 0),
		Faces:    make([]int, 0),
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseOBJVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			data.Vertices = append(data.Vertices, vertex)
		case "f":
			indices, err := parseOBJFace(fields[1:], len(data.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			for i := 1; i+1 < len(indices); i++ {
				data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	return data, nil
}

func parseOBJVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid vertex coordinate %q", fields[i])
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseOBJFace resolves face references to 0-based vertex indices
func parseOBJFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	indices := make([]int, len(fields))
	for i, field := range fields {
		ref, _, _ := strings.Cut(field, "/")
		index, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("invalid face index %q", field)
		}

		switch {
		case index > 0:
			index--
		case index < 0:
			index += vertexCount
		default:
			return nil, fmt.Errorf("face index 0 is not valid")
		}

		if index < 0 || index >= vertexCount {
			return nil, fmt.Errorf("face index %s out of range (%d vertices)", ref, vertexCount)
		}
		indices[i] = index
	}
	return indices, nil
}
