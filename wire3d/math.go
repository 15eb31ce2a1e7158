package wire3d

import "math"

// Scalar is the numeric type used by all wire3d math.
type Scalar = float32

// DegenerateEpsilon is the smallest normal length a triangle may have before it
// is treated as degenerate and skipped.
const DegenerateEpsilon Scalar = 1e-6

// Point3 is a 3D point or vector.
type Point3 struct {
	X, Y, Z Scalar
}

// Point2 is a screen-space position in pixels.
type Point2 struct {
	X, Y Scalar
}

// Mat4 is a row-major 4x4 matrix, m[row][col].
type Mat4 [4][4]Scalar

func P3(x, y, z Scalar) Point3 { return Point3{X: x, Y: y, Z: z} }

func (v Point3) Sub(o Point3) Point3 { return Point3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Point3) Div(s Scalar) Point3 { return Point3{v.X / s, v.Y / s, v.Z / s} }

// IsFinite reports whether no component is NaN or infinite.
func (v Point3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(s Scalar) bool {
	f := float64(s)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func Dot(a, b Point3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Len(v Point3) Scalar {
	return Scalar(math.Sqrt(float64(Dot(v, v))))
}

func Cross(a, b Point3) Point3 {
	return Point3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// TransformPoint multiplies (p.X, p.Y, p.Z, 1) by m. The result is divided by
// the homogeneous w only when w is non-zero; otherwise x', y', z' are returned
// as they are.
func TransformPoint(p Point3, m Mat4) Point3 {
	o := Point3{
		X: p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1],
		Z: p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2],
	}
	w := p.X*m[0][3] + p.Y*m[1][3] + p.Z*m[2][3] + m[3][3]
	if w != 0 {
		o = o.Div(w)
	}
	return o
}

func Mat4Identity() Mat4 {
	var m Mat4
	m[0][0] = 1
	m[1][1] = 1
	m[2][2] = 1
	m[3][3] = 1
	return m
}

// Mat4RotateZ rotates in the XY plane.
func Mat4RotateZ(theta Scalar) Mat4 {
	c := Scalar(math.Cos(float64(theta)))
	s := Scalar(math.Sin(float64(theta)))
	var m Mat4
	m[0][0] = c
	m[0][1] = s
	m[1][0] = -s
	m[1][1] = c
	m[2][2] = 1
	m[3][3] = 1
	return m
}

// Mat4RotateX rotates in the YZ plane.
func Mat4RotateX(theta Scalar) Mat4 {
	c := Scalar(math.Cos(float64(theta)))
	s := Scalar(math.Sin(float64(theta)))
	var m Mat4
	m[0][0] = 1
	m[1][1] = c
	m[1][2] = s
	m[2][1] = -s
	m[2][2] = c
	m[3][3] = 1
	return m
}

func Mat4Translate(v Point3) Mat4 {
	m := Mat4Identity()
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
	return m
}

// Mat4Projection builds the perspective projection used by the pipeline.
// aspect is height/width. Entries not listed stay zero, and m[3][3] is zero so
// that w carries the view-space z into the perspective divide.
func Mat4Projection(near, far, fovDeg, aspect Scalar) Mat4 {
	fovRad := Scalar(1 / math.Tan(float64(fovDeg)*0.5*math.Pi/180))
	var m Mat4
	m[0][0] = aspect * fovRad
	m[1][1] = fovRad
	m[2][2] = far / (far - near)
	m[3][2] = (-far * near) / (far - near)
	m[2][3] = 1
	m[3][3] = 0
	return m
}
