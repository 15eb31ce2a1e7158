package wire3d

// LineSink receives the line segments of a frame.
//
// The display surface implements it; tests use a Recorder.
type LineSink interface {
	DrawLine(p0, p1 Point2, c Color)
}

// FrameStats counts what happened to each triangle of a frame.
type FrameStats struct {
	Triangles  int
	Culled     int
	Degenerate int
	Drawn      int
}

// Lines is the number of DrawLine calls the frame issued.
func (s FrameStats) Lines() int { return s.Drawn * 3 }

// Frame runs the fixed pipeline over every triangle of the mesh, in mesh order,
// and sends the edges of each front-facing triangle to sink.
//
// theta is the rotation angle in radians: the mesh turns by theta around Z and
// then by theta/2 around X. No depth sort happens; overlapping faces are drawn
// in mesh order.
func (s *Scene) Frame(theta Scalar, sink LineSink, c Color) FrameStats {
	var st FrameStats
	if s == nil || sink == nil {
		return st
	}

	rotZ := Mat4RotateZ(theta)
	rotX := Mat4RotateX(theta * 0.5)
	move := Mat4Translate(P3(0, 0, ViewDistance))

	for _, tri := range s.Mesh.Tris {
		st.Triangles++

		t := tri.Transform(rotZ).Transform(rotX).Transform(move)

		n, ok := t.Normal()
		if !ok {
			st.Degenerate++
			continue
		}
		if !s.facing(t, n) {
			st.Culled++
			continue
		}

		p := t.Transform(s.Proj)
		a := Viewport(p[0], s.Width, s.Height)
		b := Viewport(p[1], s.Width, s.Height)
		d := Viewport(p[2], s.Width, s.Height)

		sink.DrawLine(a, b, c)
		sink.DrawLine(b, d, c)
		sink.DrawLine(a, d, c)
		st.Drawn++
	}
	return st
}

// facing reports whether the triangle's normal points back at the camera.
func (s *Scene) facing(t Triangle, n Point3) bool {
	return Dot(n, t[0].Sub(s.Camera.Position)) < 0
}

// Viewport maps normalized device coordinates in [-1,1] to pixels in
// [0,width]×[0,height].
func Viewport(p Point3, width, height int) Point2 {
	return Point2{
		X: (p.X + 1) * 0.5 * Scalar(width),
		Y: (p.Y + 1) * 0.5 * Scalar(height),
	}
}

// Line is one recorded DrawLine call.
type Line struct {
	P0, P1 Point2
	Color  Color
}

// Recorder is a LineSink that keeps every line it is given.
type Recorder struct {
	Lines []Line
}

func (r *Recorder) DrawLine(p0, p1 Point2, c Color) {
	r.Lines = append(r.Lines, Line{P0: p0, P1: p1, Color: c})
}

func (r *Recorder) Reset() { r.Lines = r.Lines[:0] }
