package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       int                    `json:"object"` // Index in the scene's object list, -1 on a miss
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	BaseColor    string                 `json:"baseColor"`
	Shaded       string                 `json:"shaded"` // Final pixel colour
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit    bool
	Object int
	Shape  geometry.Shape
	Point  core.Vec3
	Normal core.Vec3
	T      float64
}

// extractGeometryInfo describes a shape with type assertions
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch g := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(g.Center)
		properties["radius"] = g.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vecArray(g.Point)
		properties["normal"] = vecArray(g.SurfaceNormal)
		return "plane", properties

	case *geometry.Triangle:
		v := g.Vertices()
		properties["vertices"] = [3][3]float64{vecArray(v[0]), vecArray(v[1]), vecArray(v[2])}
		return "triangle", properties

	case *geometry.Mesh:
		bbox := g.BoundingBox()
		properties["triangleCount"] = g.TriangleCount()
		properties["boundsMin"] = vecArray(bbox.Min)
		properties["boundsMax"] = vecArray(bbox.Max)
		return "mesh", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray of image pixel (pixelX, pixelY) and
// reports the nearest object it hits
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) (result InspectResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			var numErr *core.NumericError
			if e, ok := r.(error); ok && errors.As(e, &numErr) {
				err = e
				return
			}
			panic(r)
		}
	}()

	// Image rows grow downward, camera rows upward
	ray := sceneObj.Camera.PrimaryRay(pixelX, height-pixelY, width, height)

	index, t, ok := geometry.NearestHit(sceneObj.Shapes(), ray)
	if !ok {
		return InspectResult{Object: -1}, nil
	}

	shape := sceneObj.Objects[index].Shape
	return InspectResult{
		Hit:    true,
		Object: index,
		Shape:  shape,
		Point:  ray.At(t),
		Normal: shape.Normal(ray),
		T:      t,
	}, nil
}

// handleInspect reports what lies under one pixel of a render
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	logger := NewWebLogger(fmt.Sprintf("inspect-%d", time.Now().UnixNano()), nil)
	pipeline, err := s.setupRenderingPipeline(req, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	width, height := pipeline.Scene.Width, pipeline.Scene.Height

	query := r.URL.Query()
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := inspectPixel(pipeline.Scene, width, height, x, y)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := InspectResponse{Hit: result.Hit, Object: result.Object, Properties: map[string]interface{}{}}
	if result.Hit {
		rt := renderer.NewRaytracer(pipeline.Scene, pipeline.Config, logger)
		shaded, _ := rt.ShadePixel(x, height-y, width, height)

		response.GeometryType, response.Properties = extractGeometryInfo(result.Shape)
		response.Point = vecArray(result.Point)
		response.Normal = vecArray(result.Normal)
		response.Distance = result.T
		response.BaseColor = hexColor(pipeline.Scene.Objects[result.Object].Color)
		response.Shaded = hexColor(shaded)
	}

	writeJSON(w, http.StatusOK, response)
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
