// Package wire3d is a tiny software 3D wireframe pipeline.
//
// It owns a fixed mesh and a precomputed projection, and turns a rotation angle
// into a sequence of screen-space line segments:
//
//	Mesh → RotateZ(θ) → RotateX(θ/2) → Translate(+Z) → Cull → Project → Viewport → Lines.
//
// The pipeline never touches a display directly. Callers pass a LineSink, which
// keeps the frame a pure function of (scene, θ) and testable without a window.
//
// Matrices are row-major and points are row vectors: a point p is transformed
// as [x y z 1] · M. A zero Mat4 has every entry zero, not identity.
package wire3d
