package icoview

import "github.com/go-gl/mathgl/mgl64"

// recordingBackend is a mock for testing purposes. It keeps the last value
// of every setting and a log of the calls made.
type recordingBackend struct {
	calls []string

	clearColor Color
	depthTest  bool
	cullFace   bool
	frontFace  FrontFace
	lighting   bool
	lights     [maxLights]Light
	enabled    [maxLights]bool
	shadeModel ShadeModel
	viewport   Viewport
	projection mgl64.Mat4
	modelView  mgl64.Mat4
	drawn      [][]Triangle
}

func (b *recordingBackend) record(call string) { b.calls = append(b.calls, call) }

func (b *recordingBackend) SetClearColor(c Color) { b.record("SetClearColor"); b.clearColor = c }
func (b *recordingBackend) Clear()                { b.record("Clear") }
func (b *recordingBackend) SetDepthTest(on bool)  { b.record("SetDepthTest"); b.depthTest = on }
func (b *recordingBackend) SetCullFace(on bool)   { b.record("SetCullFace"); b.cullFace = on }
func (b *recordingBackend) SetLighting(on bool)   { b.record("SetLighting"); b.lighting = on }

func (b *recordingBackend) SetFrontFace(f FrontFace) {
	b.record("SetFrontFace")
	b.frontFace = f
}

func (b *recordingBackend) ConfigureLight(id LightID, l Light) {
	b.record("ConfigureLight")
	b.lights[id] = l
}

func (b *recordingBackend) EnableLight(id LightID, on bool) {
	b.record("EnableLight")
	b.enabled[id] = on
}

func (b *recordingBackend) SetShadeModel(m ShadeModel) {
	b.record("SetShadeModel")
	b.shadeModel = m
}

func (b *recordingBackend) SetViewport(vp Viewport) {
	b.record("SetViewport")
	b.viewport = vp
}

func (b *recordingBackend) SetProjection(m mgl64.Mat4) {
	b.record("SetProjection")
	b.projection = m
}

func (b *recordingBackend) SetModelView(m mgl64.Mat4) {
	b.record("SetModelView")
	b.modelView = m
}

func (b *recordingBackend) DrawTriangles(tris []Triangle) {
	b.record("DrawTriangles")
	b.drawn = append(b.drawn, tris)
}
