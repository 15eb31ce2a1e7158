package wire3d

import (
	"errors"
	"fmt"
)

// ErrBadSize is returned when a scene is built for an empty display.
var ErrBadSize = errors.New("wire3d: display size must be positive")

// ViewDistance is how far along +Z the rotated mesh is pushed in front of the
// camera before culling and projection.
const ViewDistance Scalar = 3

// Triangle is three points; their order is the winding and decides the sign of
// the normal.
type Triangle [3]Point3

func Tri(x0, y0, z0, x1, y1, z1, x2, y2, z2 Scalar) Triangle {
	return Triangle{P3(x0, y0, z0), P3(x1, y1, z1), P3(x2, y2, z2)}
}

// Normal returns the unit normal of t. ok is false when t is degenerate (its
// edges are collinear) and no finite normal exists.
func (t Triangle) Normal() (n Point3, ok bool) {
	n = Cross(t[1].Sub(t[0]), t[2].Sub(t[0]))
	l := Len(n)
	if !(l >= DegenerateEpsilon) {
		return Point3{}, false
	}
	return n.Div(l), true
}

// Transform applies m to every vertex.
func (t Triangle) Transform(m Mat4) Triangle {
	return Triangle{
		TransformPoint(t[0], m),
		TransformPoint(t[1], m),
		TransformPoint(t[2], m),
	}
}

// Mesh is an ordered triangle list. Order is draw order only.
type Mesh struct {
	Tris []Triangle
}

// CubeMesh returns the unit cube with one corner at the origin and edge
// length 1, two triangles per face. Every face is wound so its normal points
// out of the cube.
func CubeMesh() Mesh {
	return Mesh{Tris: []Triangle{
		// south
		Tri(0, 0, 0, 0, 1, 0, 1, 1, 0),
		Tri(0, 0, 0, 1, 1, 0, 1, 0, 0),

		// east
		Tri(1, 0, 0, 1, 1, 0, 1, 1, 1),
		Tri(1, 0, 0, 1, 1, 1, 1, 0, 1),

		// north
		Tri(1, 0, 1, 1, 1, 1, 0, 1, 1),
		Tri(1, 0, 1, 0, 1, 1, 0, 0, 1),

		// west
		Tri(0, 0, 1, 0, 1, 1, 0, 1, 0),
		Tri(0, 0, 1, 0, 1, 0, 0, 0, 0),

		// top
		Tri(0, 1, 0, 0, 1, 1, 1, 1, 1),
		Tri(0, 1, 0, 1, 1, 1, 1, 1, 0),

		// bottom
		Tri(1, 0, 1, 0, 0, 1, 0, 0, 0),
		Tri(1, 0, 1, 0, 0, 0, 1, 0, 0),
	}}
}

// Camera is the viewer. It never moves; its position only feeds the cull test.
type Camera struct {
	Position Point3
}

// Projection holds the parameters of the perspective projection.
type Projection struct {
	Near   Scalar
	Far    Scalar
	FOV    Scalar // degrees
	Aspect Scalar // height / width
}

// DefaultProjection is a 90° projection for a width×height display.
func DefaultProjection(width, height int) Projection {
	return Projection{
		Near:   0.1,
		Far:    1000,
		FOV:    90,
		Aspect: Scalar(height) / Scalar(width),
	}
}

func (p Projection) Matrix() Mat4 {
	return Mat4Projection(p.Near, p.Far, p.FOV, p.Aspect)
}

// Scene is everything a frame needs. It is built once and read-only after
// that, so it may be shared between goroutines without locking.
type Scene struct {
	Mesh   Mesh
	Camera Camera
	Proj   Mat4
	Width  int
	Height int
}

// NewScene builds the cube scene for a width×height display.
func NewScene(width, height int) (*Scene, error) {
	return NewSceneWithMesh(CubeMesh(), width, height)
}

func NewSceneWithMesh(m Mesh, width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	return &Scene{
		Mesh:   m,
		Camera: Camera{Position: P3(0, 0, 0)},
		Proj:   DefaultProjection(width, height).Matrix(),
		Width:  width,
		Height: height,
	}, nil
}
