package icoview

import (
	"image/color"
	"math"
)

// Color is a linear RGBA colour with channels in 0..1.
type Color struct {
	R, G, B, A float64
}

var (
	Black    = Color{0, 0, 0, 1}
	White    = Color{1, 1, 1, 1}
	DimWhite = Color{0.5, 0.5, 0.5, 1}
	Yellow   = Color{1, 1, 0, 1}
)

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A}
}

// Mul multiplies channel by channel. Alpha is kept from c.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A}
}

func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// NRGBA converts c to 8-bit channels.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

func (c Color) Clamp() Color {
	return Color{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B), A: clampUnit(c.A)}
}

// LightID names one of the renderer's light slots.
type LightID int

const (
	WhiteLight LightID = iota
	YellowLight
	maxLights
)

// Light is a fixed-function light source. Position is in eye coordinates;
// W == 0 makes it directional.
type Light struct {
	Position [4]float64
	Ambient  Color
	Diffuse  Color
	Specular Color
}

// Material describes how a surface reflects light.
type Material struct {
	Ambient   Color
	Diffuse   Color
	Specular  Color
	Emission  Color
	Shininess float64
}

// DefaultMaterial is the surface every triangle is drawn with.
var DefaultMaterial = Material{
	Ambient:  Color{0.2, 0.2, 0.2, 1},
	Diffuse:  Color{0.8, 0.8, 0.8, 1},
	Specular: Color{0, 0, 0, 1},
	Emission: Color{0, 0, 0, 1},
}

// SceneAmbient is the light present with every source switched off.
var SceneAmbient = Color{0.2, 0.2, 0.2, 1}

// shadeVertex evaluates the lighting equation for a vertex at pos with unit
// normal n, both in eye coordinates. The viewer is at infinity along +z.
func shadeVertex(pos, n Vector3, mat Material, lights []Light) Color {
	c := mat.Emission.Add(SceneAmbient.Mul(mat.Ambient))
	eye := Vector3{0, 0, 1}

	for _, l := range lights {
		var dir Vector3
		if l.Position[3] == 0 {
			dir = Vector3{l.Position[0], l.Position[1], l.Position[2]}.Normalize()
		} else {
			lp := Vector3{
				X: l.Position[0] / l.Position[3],
				Y: l.Position[1] / l.Position[3],
				Z: l.Position[2] / l.Position[3],
			}
			dir = lp.Subtract(pos).Normalize()
		}

		c = c.Add(l.Ambient.Mul(mat.Ambient))

		diffuse := Dot(n, dir)
		if diffuse <= 0 {
			continue
		}
		c = c.Add(l.Diffuse.Mul(mat.Diffuse).Scale(diffuse))

		half := dir.Add(eye).Normalize()
		if specular := Dot(n, half); specular > 0 {
			c = c.Add(l.Specular.Mul(mat.Specular).Scale(math.Pow(specular, mat.Shininess)))
		}
	}

	c.A = mat.Diffuse.A
	return c.Clamp()
}
