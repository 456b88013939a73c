package icoview

import (
	"log"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// screenTriangle is a triangle ready to rasterise: window positions, the
// colour at each corner and its mean depth in normalized device
// coordinates.
type screenTriangle struct {
	points [3]Vector2
	colors [3]Color
	depth  float64
}

// Renderer is a software fixed-function pipeline drawing into an ebiten
// image. Vertices are lit per vertex in eye space, projected, culled,
// sorted back to front and filled.
type Renderer struct {
	target *ebiten.Image

	clearColor Color
	depthTest  bool
	cullFace   bool
	frontFace  FrontFace
	lighting   bool
	shadeModel ShadeModel
	lights     [maxLights]Light
	enabled    [maxLights]bool
	material   Material

	viewport   Viewport
	projection mgl64.Mat4
	modelView  mgl64.Mat4

	// Wireframe strokes the edges of every drawn triangle.
	Wireframe    bool
	OutlineColor Color

	fill    triangleBatch
	outline outlineBatch
	scratch []screenTriangle
}

func NewRenderer() *Renderer {
	log.Println("Creating renderer...")
	return &Renderer{
		clearColor:   Black,
		shadeModel:   ShadeSmooth,
		material:     DefaultMaterial,
		projection:   mgl64.Ident4(),
		modelView:    mgl64.Ident4(),
		OutlineColor: Color{0.4, 0.4, 0.4, 0.5},
	}
}

// SetTarget sets the image subsequent calls draw into.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

func (r *Renderer) SetClearColor(c Color) { r.clearColor = c }

func (r *Renderer) Clear() {
	if r.target == nil {
		return
	}
	r.target.Fill(r.clearColor.NRGBA())
}

func (r *Renderer) SetDepthTest(on bool)       { r.depthTest = on }
func (r *Renderer) SetCullFace(on bool)        { r.cullFace = on }
func (r *Renderer) SetFrontFace(f FrontFace)   { r.frontFace = f }
func (r *Renderer) SetLighting(on bool)        { r.lighting = on }
func (r *Renderer) SetShadeModel(m ShadeModel) { r.shadeModel = m }
func (r *Renderer) SetViewport(vp Viewport)    { r.viewport = vp }
func (r *Renderer) SetProjection(m mgl64.Mat4) { r.projection = m }
func (r *Renderer) SetModelView(m mgl64.Mat4)  { r.modelView = m }

func (r *Renderer) ConfigureLight(id LightID, l Light) {
	if id < 0 || id >= maxLights {
		return
	}
	r.lights[id] = l
}

func (r *Renderer) EnableLight(id LightID, on bool) {
	if id < 0 || id >= maxLights {
		return
	}
	r.enabled[id] = on
}

func (r *Renderer) activeLights() []Light {
	lights := make([]Light, 0, maxLights)
	for i := range r.lights {
		if r.enabled[i] {
			lights = append(lights, r.lights[i])
		}
	}
	return lights
}

// DrawTriangles lights, projects and fills tris. Each vertex is its own
// normal.
func (r *Renderer) DrawTriangles(tris []Triangle) {
	r.scratch = r.prepare(tris, r.scratch[:0])
	if r.target == nil {
		return
	}

	for _, t := range r.scratch {
		r.fill.add(r.target, t)
	}
	r.fill.flush(r.target)

	if r.Wireframe {
		r.outline.strokeWidth = 1
		r.outline.clr = r.OutlineColor
		for _, t := range r.scratch {
			r.outline.add(r.target, t)
		}
		r.outline.flush(r.target)
	}
}

// prepare runs the geometry stages of the pipeline and appends the
// surviving triangles to dst in paint order.
func (r *Renderer) prepare(tris []Triangle, dst []screenTriangle) []screenTriangle {
	mesh := NewMeshFromTriangles(tris)

	lights := r.activeLights()
	ndc := make([]Vector3, len(mesh.Points))
	colors := make([]Color, len(mesh.Points))
	inside := make([]bool, len(mesh.Points))

	for i, p := range mesh.Points {
		eye := TransformPoint(r.modelView, p)
		ndc[i] = TransformPoint(r.projection, eye)
		inside[i] = insideClipVolume(ndc[i])

		if r.lighting {
			normal := RotateVector3(r.modelView, p).Normalize()
			colors[i] = shadeVertex(eye, normal, r.material, lights)
		} else {
			colors[i] = White
		}
	}

	for _, f := range mesh.Faces {
		if !inside[f[0]] || !inside[f[1]] || !inside[f[2]] {
			continue
		}

		a, b, c := ndc[f[0]], ndc[f[1]], ndc[f[2]]
		if r.cullFace && !r.isFrontFacing(a, b, c) {
			continue
		}

		t := screenTriangle{
			points: [3]Vector2{
				r.viewport.ToWindow(a),
				r.viewport.ToWindow(b),
				r.viewport.ToWindow(c),
			},
			colors: [3]Color{colors[f[0]], colors[f[1]], colors[f[2]]},
			depth:  Triangle{a, b, c}.Centroid().Z,
		}
		if r.shadeModel == ShadeFlat {
			t.colors[1] = t.colors[0]
			t.colors[2] = t.colors[0]
		}
		dst = append(dst, t)
	}

	if r.depthTest {
		// Larger NDC z is farther away; draw those first.
		sort.SliceStable(dst, func(i, j int) bool {
			return dst[i].depth > dst[j].depth
		})
	}
	return dst
}

// isFrontFacing reports whether a triangle, given in normalized device
// coordinates, winds the way the front face is configured. A normal
// pointing at the viewer (+z in the y-up NDC frame) means counter-clockwise.
func (r *Renderer) isFrontFacing(a, b, c Vector3) bool {
	nz := Triangle{a, b, c}.Normal().Z
	if r.frontFace == FrontFaceCW {
		return nz < 0
	}
	return nz > 0
}

func insideClipVolume(p Vector3) bool {
	return p.X >= -1 && p.X <= 1 &&
		p.Y >= -1 && p.Y <= 1 &&
		p.Z >= -1 && p.Z <= 1
}
