package icoview

import "math"

// Triangle is a polygon of three vertices. Triangles produced by
// GenerateSphere all share the winding of the icosahedron faces, which run
// clockwise when seen from outside the sphere.
type Triangle [3]Vector3

// Centroid returns the mean of the three corners.
func (t Triangle) Centroid() Vector3 {
	return t[0].Add(t[1]).Add(t[2]).Scale(1.0 / 3)
}

// Normal returns the unit normal given by the right-hand rule over the
// corners in order, or the zero vector for a degenerate triangle.
func (t Triangle) Normal() Vector3 {
	return NormalizedCross(t[1].Subtract(t[0]), t[2].Subtract(t[0]))
}

const (
	icoX = .525731112119133606
	icoZ = .850650808352039932
)

// Regular icosahedron inscribed in the unit sphere.
var icosahedronVertices = [12]Vector3{
	{-icoX, 0, icoZ}, {icoX, 0, icoZ}, {-icoX, 0, -icoZ}, {icoX, 0, -icoZ},
	{0, icoZ, icoX}, {0, icoZ, -icoX}, {0, -icoZ, icoX}, {0, -icoZ, -icoX},
	{icoZ, icoX, 0}, {-icoZ, icoX, 0}, {icoZ, -icoX, 0}, {-icoZ, -icoX, 0},
}

var icosahedronFaces = [20][3]int{
	{0, 4, 1}, {0, 9, 4}, {9, 5, 4}, {4, 5, 8}, {4, 8, 1},
	{8, 10, 1}, {8, 3, 10}, {5, 3, 8}, {5, 2, 3}, {2, 7, 3},
	{7, 10, 3}, {7, 6, 10}, {7, 11, 6}, {11, 0, 6}, {0, 1, 6},
	{6, 1, 10}, {9, 0, 11}, {9, 11, 2}, {9, 2, 5}, {7, 2, 11},
}

// maxPreallocTriangles caps the capacity GenerateSphere reserves up front.
const maxPreallocTriangles = 1 << 20

// TriangleCount returns the number of triangles GenerateSphere emits for
// depth. Counts too large for an int saturate at math.MaxInt.
func TriangleCount(depth int) int {
	n := len(icosahedronFaces)
	for i := 0; i < depth; i++ {
		if n > math.MaxInt/4 {
			return math.MaxInt
		}
		n *= 4
	}
	return n
}

// sphereCapacity is the slice capacity GenerateSphere starts with.
func sphereCapacity(depth int) int {
	return min(TriangleCount(depth), maxPreallocTriangles)
}

// GenerateSphere approximates the unit sphere by splitting each face of an
// icosahedron into four, depth times, pushing the new midpoints out onto
// the sphere. Every vertex has unit length so it can be used as its own
// normal. A negative depth is treated as zero.
//
// The cost grows as 4^depth; callers should keep depth small.
func GenerateSphere(depth int) []Triangle {
	if depth < 0 {
		depth = 0
	}
	tris := make([]Triangle, 0, sphereCapacity(depth))
	for _, f := range icosahedronFaces {
		tris = subdivide(tris,
			icosahedronVertices[f[0]],
			icosahedronVertices[f[1]],
			icosahedronVertices[f[2]],
			depth)
	}
	return tris
}

// subdivide appends the triangles of v1,v2,v3 split depth times. The order
// of the sub-triangle corners keeps every child wound like its parent.
func subdivide(dst []Triangle, v1, v2, v3 Vector3, depth int) []Triangle {
	if depth == 0 {
		return append(dst, Triangle{v1, v2, v3})
	}
	v12 := v1.Midpoint(v2).Normalize()
	v23 := v2.Midpoint(v3).Normalize()
	v31 := v3.Midpoint(v1).Normalize()

	dst = subdivide(dst, v1, v12, v31, depth-1)
	dst = subdivide(dst, v2, v23, v12, depth-1)
	dst = subdivide(dst, v3, v31, v23, depth-1)
	return subdivide(dst, v12, v23, v31, depth-1)
}
