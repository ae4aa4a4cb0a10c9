package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/geometry"
	"github.com/df07/go-raycaster/pkg/loaders"
)

// Vec is a JSON [x, y, z] triple
type Vec [3]float64

func (v Vec) vec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// RGB is a JSON [r, g, b] triple of 0-255 channels
type RGB [3]uint8

func (c RGB) color() core.Color { return core.NewColor(c[0], c[1], c[2]) }

type CameraCfg struct {
	Position Vec     `json:"position"`
	Forward  Vec     `json:"forward"`
	Up       Vec     `json:"up"`
	Focal    float64 `json:"focal,omitempty"` // defaults to 1
}

type LightCfg struct {
	Position Vec `json:"position"`
	Color    RGB `json:"color"`
}

type SphereCfg struct {
	Center Vec     `json:"center"`
	Radius float64 `json:"radius"`
	Color  RGB     `json:"color"`
}

type PlaneCfg struct {
	Point  Vec `json:"point"`
	Normal Vec `json:"normal"`
	Color  RGB `json:"color"`
}

type TriangleCfg struct {
	Vertices [3]Vec `json:"vertices"`
	Color    RGB    `json:"color"`
}

// MeshCfg references an OBJ or PLY file relative to the scene file
type MeshCfg struct {
	Path   string  `json:"path"`
	Scale  float64 `json:"scale,omitempty"`  // uniform scale, defaults 1
	RotDeg Vec     `json:"rotDeg,omitempty"` // rotation about X, Y, Z in degrees, applied about the origin
	Offset Vec     `json:"offset,omitempty"`
	Color  RGB     `json:"color"`
}

// BoxCfg is a rounded box tessellated from a signed distance field
type BoxCfg struct {
	Center Vec     `json:"center"`
	Size   Vec     `json:"size"`
	Round  float64 `json:"round,omitempty"`
	Cells  int     `json:"cells,omitempty"`
	Color  RGB     `json:"color"`
}

// RenderCfg holds optional render overrides; absent fields keep the defaults
type RenderCfg struct {
	Ambient    *float64 `json:"ambient,omitempty"`
	ShadowBias *float64 `json:"shadowBias,omitempty"`
	Background *RGB     `json:"background,omitempty"`
}

// FileCfg is the top-level layout of a JSON scene file
type FileCfg struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Width       int           `json:"width,omitempty"`
	Height      int           `json:"height,omitempty"`
	Camera      CameraCfg     `json:"camera"`
	Lights      []LightCfg    `json:"lights"`
	Spheres     []SphereCfg   `json:"spheres,omitempty"`
	Planes      []PlaneCfg    `json:"planes,omitempty"`
	Triangles   []TriangleCfg `json:"triangles,omitempty"`
	Meshes      []MeshCfg     `json:"meshes,omitempty"`
	Boxes       []BoxCfg      `json:"boxes,omitempty"`
	Render      RenderCfg     `json:"render,omitempty"`
}

// RenderSettings carries a scene's requested render overrides. Nil fields
// defer to the renderer's configuration.
type RenderSettings struct {
	AmbientCoefficient *float64
	ShadowBias         *float64
	Background         *core.Color
}

// LoadFile reads a JSON scene file and builds the scene it describes.
// Objects are added in the order spheres, planes, triangles, meshes, boxes.
func LoadFile(path string, logger core.Logger) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var cfg FileCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	s, err := cfg.Build(filepath.Dir(path), logger)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}

	logger.Printf("Loaded scene %s: %d objects, %d lights, %dx%d\n",
		path, len(s.Objects), len(s.Lights), s.Width, s.Height)
	return s, nil
}

// Build applies defaults and constructs the scene. Mesh paths are resolved
// against baseDir.
func (cfg FileCfg) Build(baseDir string, logger core.Logger) (*Scene, error) {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	camera, err := cfg.Camera.Build()
	if err != nil {
		return nil, err
	}

	s := New(camera, width, height)
	s.Name = cfg.Name
	s.Settings = cfg.Render.settings()

	for _, l := range cfg.Lights {
		s.AddLight(l.Position.vec3(), l.Color.color())
	}

	for i, sc := range cfg.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be > 0, got %v", i, sc.Radius)
		}
		s.AddObject(geometry.NewSphere(sc.Center.vec3(), sc.Radius), sc.Color.color())
	}

	for i, pc := range cfg.Planes {
		if pc.Normal == (Vec{}) {
			return nil, fmt.Errorf("plane %d: normal must be non-zero", i)
		}
		s.AddObject(geometry.NewPlane(pc.Point.vec3(), pc.Normal.vec3()), pc.Color.color())
	}

	for _, tc := range cfg.Triangles {
		v := tc.Vertices
		s.AddObject(geometry.NewTriangle(v[0].vec3(), v[1].vec3(), v[2].vec3()), tc.Color.color())
	}

	for i, mc := range cfg.Meshes {
		mesh, err := mc.Build(baseDir, logger)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.AddObject(mesh, mc.Color.color())
	}

	for i, bc := range cfg.Boxes {
		mesh, err := bc.Build(logger)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		s.AddObject(mesh, bc.Color.color())
	}

	return s, nil
}

// Build validates the camera basis. Missing vectors default to looking down
// +z with +y up.
func (cc CameraCfg) Build() (*Camera, error) {
	forward, up, focal := cc.Forward, cc.Up, cc.Focal
	if forward == (Vec{}) {
		forward = Vec{0, 0, 1}
	}
	if up == (Vec{}) {
		up = Vec{0, 1, 0}
	}
	if focal == 0 {
		focal = 1
	}
	if focal < 0 {
		return nil, fmt.Errorf("camera focal distance must be > 0, got %v", focal)
	}
	if forward.vec3().Cross(up.vec3()).LengthSquared() == 0 {
		return nil, fmt.Errorf("camera forward %v and up %v are parallel", forward, up)
	}
	return NewCamera(cc.Position.vec3(), forward.vec3(), up.vec3(), focal), nil
}

// Build loads the referenced mesh file and applies the transform
func (mc MeshCfg) Build(baseDir string, logger core.Logger) (*geometry.Mesh, error) {
	if mc.Path == "" {
		return nil, fmt.Errorf("mesh path is empty")
	}

	path := mc.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	data, err := loaders.LoadMesh(path, logger)
	if err != nil {
		return nil, err
	}

	options := &geometry.TriangleMeshOptions{
		Scale:  mc.Scale,
		Offset: mc.Offset.vec3(),
	}
	if mc.RotDeg != (Vec{}) {
		rotation := core.NewVec3(
			mc.RotDeg[0]*math.Pi/180,
			mc.RotDeg[1]*math.Pi/180,
			mc.RotDeg[2]*math.Pi/180,
		)
		options.Rotation = &rotation
	}
	return data.BuildMesh(options)
}

// maxBoxCells bounds the marching cubes resolution a scene file may request
const maxBoxCells = 256

// Build tessellates the box into a mesh
func (bc BoxCfg) Build(logger core.Logger) (*geometry.Mesh, error) {
	if bc.Size[0] <= 0 || bc.Size[1] <= 0 || bc.Size[2] <= 0 {
		return nil, fmt.Errorf("size must be > 0 on all axes, got %v", bc.Size)
	}
	if bc.Cells > maxBoxCells {
		return nil, fmt.Errorf("cells must be at most %d, got %d", maxBoxCells, bc.Cells)
	}

	solid, err := boxSolid(bc.Center.vec3(), bc.Size.vec3(), bc.Round)
	if err != nil {
		return nil, err
	}
	return geometry.NewMesh(loaders.TessellateSDF(solid, bc.Cells, logger)), nil
}

func (rc RenderCfg) settings() RenderSettings {
	settings := RenderSettings{
		AmbientCoefficient: rc.Ambient,
		ShadowBias:         rc.ShadowBias,
	}
	if rc.Background != nil {
		background := rc.Background.color()
		settings.Background = &background
	}
	return settings
}
