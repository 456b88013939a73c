package icoview

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection is an orthographic viewing box in eye coordinates.
type Projection struct {
	Left, Right float64
	Bottom, Top float64
	Near, Far   float64
}

// DefaultProjection is the ±2 box from z=-1 to z=-15 the viewer uses.
var DefaultProjection = Projection{Left: -2, Right: 2, Bottom: -2, Top: 2, Near: 1, Far: 15}

func (p Projection) Matrix() mgl64.Mat4 {
	return mgl64.Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
}

// Viewport is a rectangle of the window, in pixels with the origin at the
// top left.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// CenteredSquareViewport returns the largest square that fits a width x
// height window, centred in it.
func CenteredSquareViewport(width, height int) Viewport {
	side := min(width, height)
	return Viewport{
		X:      (width - side) / 2,
		Y:      (height - side) / 2,
		Width:  side,
		Height: side,
	}
}

// ToWindow maps normalized device coordinates into the viewport. NDC y
// points up, window y points down.
func (vp Viewport) ToWindow(ndc Vector3) Vector2 {
	return Vector2{
		X: float64(vp.X) + (ndc.X+1)/2*float64(vp.Width),
		Y: float64(vp.Y) + (1-ndc.Y)/2*float64(vp.Height),
	}
}

// TransformPoint applies m to the point v (w = 1) and divides by w.
func TransformPoint(m mgl64.Mat4, v Vector3) Vector3 {
	p := m.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	if p[3] != 0 && p[3] != 1 {
		return Vector3{X: p[0] / p[3], Y: p[1] / p[3], Z: p[2] / p[3]}
	}
	return Vector3{X: p[0], Y: p[1], Z: p[2]}
}

// RotateVector3 applies the 3x3 rotation part of m, ignoring translation,
// which is what direction vectors such as normals need.
func RotateVector3(m mgl64.Mat4, v Vector3) Vector3 {
	r := m.Mat3().Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vector3{X: r[0], Y: r[1], Z: r[2]}
}

// FormatMatrix prints m row by row, for logs and test failures.
func FormatMatrix(m mgl64.Mat4) string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < 4; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", m.At(row, col)))
		}
	}
	return sb.String()
}
