package icoview

import "log"

// Axis identifies a rotation axis of the viewer.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// MouseButtons is a bitmask of held pointer buttons.
type MouseButtons uint8

const (
	MouseButtonLeft MouseButtons = 1 << iota
	MouseButtonRight
)

// Size hints for the host window.
const (
	MinimumWidth    = 50
	MinimumHeight   = 50
	PreferredWidth  = 400
	PreferredHeight = 400
)

var (
	whiteLightSource = Light{
		Position: [4]float64{10, 10, -10, 1},
		Ambient:  DimWhite,
		Diffuse:  White,
		Specular: White,
	}
	yellowLightSource = Light{
		Position: [4]float64{-10, 5, -10, 1},
		Ambient:  DimWhite,
		Diffuse:  Yellow,
		Specular: Yellow,
	}
)

// Viewer holds the interactive state of the sphere view and turns it into
// backend calls. It is not safe for concurrent use.
type Viewer struct {
	xRot, yRot, zRot int
	accuracy         int
	whiteLight       bool
	yellowLight      bool
	smoothShading    bool

	lastX, lastY int

	camera    *Camera
	listeners []func(Axis, int)
	redraw    func()
}

func NewViewer(cfg Config) *Viewer {
	return &Viewer{
		accuracy:      cfg.Accuracy,
		whiteLight:    cfg.WhiteLight,
		yellowLight:   cfg.YellowLight,
		smoothShading: cfg.SmoothShading,
		camera:        NewCamera(),
	}
}

// Subscribe registers fn to be called with the new angle whenever a
// rotation actually changes.
func (v *Viewer) Subscribe(fn func(axis Axis, angle int)) {
	v.listeners = append(v.listeners, fn)
}

// SetRedrawFunc sets the callback used to ask the host for a repaint.
func (v *Viewer) SetRedrawFunc(fn func()) {
	v.redraw = fn
}

func (v *Viewer) requestRedraw() {
	if v.redraw != nil {
		v.redraw()
	}
}

func (v *Viewer) notify(axis Axis, angle int) {
	for _, fn := range v.listeners {
		fn(axis, angle)
	}
}

// normalizeAngle keeps the sign of negative angles: -10 stays -10.
func normalizeAngle(angle int) int {
	return angle % 360
}

func (v *Viewer) setRotation(axis Axis, current *int, angle int) {
	angle = normalizeAngle(angle)
	if angle == *current {
		return
	}
	*current = angle
	v.notify(axis, angle)
	v.requestRedraw()
}

func (v *Viewer) SetXRotation(angle int) { v.setRotation(AxisX, &v.xRot, angle) }
func (v *Viewer) SetYRotation(angle int) { v.setRotation(AxisY, &v.yRot, angle) }
func (v *Viewer) SetZRotation(angle int) { v.setRotation(AxisZ, &v.zRot, angle) }

func (v *Viewer) XRotation() int { return v.xRot }
func (v *Viewer) YRotation() int { return v.yRot }
func (v *Viewer) ZRotation() int { return v.zRot }

// SetAccuracy sets the subdivision depth. It is not bounded: every step
// quadruples the triangle count.
func (v *Viewer) SetAccuracy(accuracy int) {
	v.accuracy = accuracy
	log.Printf("Accuracy %d: %d triangles", accuracy, TriangleCount(accuracy))
	v.requestRedraw()
}

func (v *Viewer) Accuracy() int { return v.accuracy }

func (v *Viewer) SetWhiteLight(on bool) {
	v.whiteLight = on
	v.requestRedraw()
}

func (v *Viewer) WhiteLight() bool { return v.whiteLight }

func (v *Viewer) SetYellowLight(on bool) {
	v.yellowLight = on
	v.requestRedraw()
}

func (v *Viewer) YellowLight() bool { return v.yellowLight }

// SetSmoothShading takes an int so it can be driven by a multi-state
// control; any non-zero value means smooth.
func (v *Viewer) SetSmoothShading(on int) {
	v.smoothShading = on != 0
	v.requestRedraw()
}

func (v *Viewer) SmoothShading() bool { return v.smoothShading }

func (v *Viewer) MinimumSizeHint() (int, int) { return MinimumWidth, MinimumHeight }

func (v *Viewer) SizeHint() (int, int) { return PreferredWidth, PreferredHeight }

// Initialize sets up the pipeline state that never changes.
func (v *Viewer) Initialize(b Backend) {
	b.SetClearColor(Black)
	b.SetDepthTest(true)
	b.SetCullFace(true)
	// The icosahedron faces wind clockwise seen from outside. GL's default
	// counter-clockwise front face would show the inside of the far side.
	b.SetFrontFace(FrontFaceCW)
	b.SetShadeModel(ShadeSmooth)
	b.SetLighting(true)
	b.EnableLight(WhiteLight, true)
	b.EnableLight(YellowLight, true)
	b.ConfigureLight(WhiteLight, whiteLightSource)
	b.ConfigureLight(YellowLight, yellowLightSource)
}

// Resize fits the projection into the largest centred square of the
// window.
func (v *Viewer) Resize(b Backend, width, height int) {
	b.SetViewport(CenteredSquareViewport(width, height))
	b.SetProjection(DefaultProjection.Matrix())
}

// Paint renders one frame.
func (v *Viewer) Paint(b Backend) {
	b.Clear()
	b.SetModelView(v.camera.ModelView(v.xRot, v.yRot, v.zRot))
	v.Draw(b)
}

// Draw applies the light and shading toggles and submits the sphere.
func (v *Viewer) Draw(b Backend) {
	b.EnableLight(WhiteLight, v.whiteLight)
	b.EnableLight(YellowLight, v.yellowLight)
	if v.smoothShading {
		b.SetShadeModel(ShadeSmooth)
	} else {
		b.SetShadeModel(ShadeFlat)
	}
	b.DrawTriangles(GenerateSphere(v.accuracy))
}

// MousePress records where a drag starts.
func (v *Viewer) MousePress(x, y int) {
	v.lastX, v.lastY = x, y
}

// MouseMove turns the view by the distance moved since the last event. The
// left button turns about X and Y, the right button about X and Z; the left
// button wins when both are held.
func (v *Viewer) MouseMove(x, y int, buttons MouseButtons) {
	dx := x - v.lastX
	dy := y - v.lastY

	if buttons&MouseButtonLeft != 0 {
		v.SetXRotation(v.xRot + dy)
		v.SetYRotation(v.yRot + dx)
	} else if buttons&MouseButtonRight != 0 {
		v.SetXRotation(v.xRot + dy)
		v.SetZRotation(v.zRot + dx)
	}

	v.lastX, v.lastY = x, y
}
