package icoview

import (
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultCameraDistance is how far the camera sits back from the sphere.
const DefaultCameraDistance = 10.0

// Camera builds the model-view transform for the viewer: the camera backs
// away along z, then the scene is turned about X, Y and Z in that order.
type Camera struct {
	Distance float64
}

func NewCamera() *Camera {
	return &Camera{Distance: DefaultCameraDistance}
}

// ModelView returns translate(0,0,-distance) * Rx * Ry * Rz for angles in
// degrees.
func (c *Camera) ModelView(xDeg, yDeg, zDeg int) mgl64.Mat4 {
	rotX := mgl64.HomogRotate3DX(mgl64.DegToRad(float64(xDeg)))
	rotY := mgl64.HomogRotate3DY(mgl64.DegToRad(float64(yDeg)))
	rotZ := mgl64.HomogRotate3DZ(mgl64.DegToRad(float64(zDeg)))

	return mgl64.Translate3D(0, 0, -c.Distance).Mul4(rotX).Mul4(rotY).Mul4(rotZ)
}
