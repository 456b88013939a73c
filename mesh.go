package icoview

// Mesh is the indexed form of a triangle list. Neighbouring triangles of a
// subdivided sphere share corners, so the renderer transforms and lights
// each point once.
type Mesh struct {
	Points     []Vector3
	Faces      [][3]int
	pointIndex map[Vector3]int
}

// NewMeshFromTriangles builds a mesh from tris, merging corners that are
// exactly equal.
func NewMeshFromTriangles(tris []Triangle) *Mesh {
	m := &Mesh{
		Points:     make([]Vector3, 0, len(tris)/2+12),
		Faces:      make([][3]int, 0, len(tris)),
		pointIndex: make(map[Vector3]int, len(tris)/2+12),
	}
	for _, t := range tris {
		m.AddTriangle(t)
	}
	return m
}

// AddPoint returns the index of p, adding it if it is not already present.
func (m *Mesh) AddPoint(p Vector3) int {
	if index, found := m.pointIndex[p]; found {
		return index
	}
	m.Points = append(m.Points, p)
	newIndex := len(m.Points) - 1
	m.pointIndex[p] = newIndex
	return newIndex
}

func (m *Mesh) AddTriangle(t Triangle) {
	m.Faces = append(m.Faces, [3]int{
		m.AddPoint(t[0]),
		m.AddPoint(t[1]),
		m.AddPoint(t[2]),
	})
}

// Triangle returns face i with its points resolved.
func (m *Mesh) Triangle(i int) Triangle {
	f := m.Faces[i]
	return Triangle{m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]}
}
