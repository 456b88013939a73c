package icoview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxBatchVertices keeps every batch addressable by uint16 indices.
const maxBatchVertices = 65535

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func toVertex(p Vector2, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	}
}

// triangleBatch collects filled triangles and draws them in as few
// DrawTriangles calls as the index width allows.
type triangleBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (b *triangleBatch) add(screen *ebiten.Image, t screenTriangle) {
	if len(b.vertices)+3 > maxBatchVertices {
		b.flush(screen)
	}
	base := uint16(len(b.vertices))
	for i := range t.points {
		b.vertices = append(b.vertices, toVertex(t.points[i], t.colors[i]))
	}
	b.indices = append(b.indices, base, base+1, base+2)
}

func (b *triangleBatch) flush(screen *ebiten.Image) {
	if len(b.indices) > 0 {
		op := &ebiten.DrawTrianglesOptions{}
		op.AntiAlias = true
		screen.DrawTriangles(b.vertices, b.indices, whiteSub, op)
	}
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}

// outlineBatch strokes triangle edges, for the wireframe overlay.
type outlineBatch struct {
	vertices    []ebiten.Vertex
	indices     []uint16
	strokeWidth float32
	clr         Color
}

// strokeSlack leaves room for the vertices one stroked triangle produces.
const strokeSlack = 256

func (b *outlineBatch) add(screen *ebiten.Image, t screenTriangle) {
	if len(b.vertices)+strokeSlack > maxBatchVertices {
		b.flush(screen)
	}

	var path vector.Path
	path.MoveTo(float32(t.points[0].X), float32(t.points[0].Y))
	path.LineTo(float32(t.points[1].X), float32(t.points[1].Y))
	path.LineTo(float32(t.points[2].X), float32(t.points[2].Y))
	path.Close()

	start := len(b.vertices)
	b.vertices, b.indices = path.AppendVerticesAndIndicesForStroke(b.vertices, b.indices, &vector.StrokeOptions{
		Width: b.strokeWidth,
	})

	// The solid colour comes from the white sub-image tinted per vertex.
	for i := start; i < len(b.vertices); i++ {
		b.vertices[i].SrcX = 1
		b.vertices[i].SrcY = 1
		b.vertices[i].ColorR = float32(b.clr.R)
		b.vertices[i].ColorG = float32(b.clr.G)
		b.vertices[i].ColorB = float32(b.clr.B)
		b.vertices[i].ColorA = float32(b.clr.A)
	}
}

func (b *outlineBatch) flush(screen *ebiten.Image) {
	if len(b.indices) > 0 {
		drawOp := &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		}
		screen.DrawTriangles(b.vertices, b.indices, whiteSub, drawOp)
	}
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
