package icoview

import "github.com/go-gl/mathgl/mgl64"

// ShadeModel selects how colours are spread across a polygon.
type ShadeModel int

const (
	// ShadeFlat paints each polygon with the colour of its first vertex.
	ShadeFlat ShadeModel = iota
	// ShadeSmooth interpolates the per-vertex colours.
	ShadeSmooth
)

func (s ShadeModel) String() string {
	if s == ShadeSmooth {
		return "smooth"
	}
	return "flat"
}

// FrontFace selects which winding, as seen on screen, faces the camera.
type FrontFace int

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// Backend is the fixed-function rendering pipeline the viewer draws
// through. Triangle vertices double as their normals.
type Backend interface {
	SetClearColor(c Color)
	Clear()
	SetDepthTest(on bool)
	SetCullFace(on bool)
	SetFrontFace(f FrontFace)
	SetLighting(on bool)
	ConfigureLight(id LightID, l Light)
	EnableLight(id LightID, on bool)
	SetShadeModel(m ShadeModel)
	SetViewport(vp Viewport)
	SetProjection(m mgl64.Mat4)
	SetModelView(m mgl64.Mat4)
	DrawTriangles(tris []Triangle)
}
