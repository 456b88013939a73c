package icoview

import (
	"math"
	"reflect"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func almostEqualVector(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestGenerateSphereTriangleCount(t *testing.T) {
	testCases := []struct {
		depth int
		want  int
	}{
		{0, 20},
		{1, 80},
		{2, 320},
		{3, 1280},
		{4, 5120},
		{5, 20480},
	}

	for _, tc := range testCases {
		got := len(GenerateSphere(tc.depth))
		if got != tc.want {
			t.Errorf("GenerateSphere(%d) returned %d triangles, want %d", tc.depth, got, tc.want)
		}
		if TriangleCount(tc.depth) != tc.want {
			t.Errorf("TriangleCount(%d) = %d, want %d", tc.depth, TriangleCount(tc.depth), tc.want)
		}
	}
}

func TestGenerateSphereVerticesOnUnitSphere(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		for i, tri := range GenerateSphere(depth) {
			for j, v := range tri {
				if math.Abs(v.Length()-1) > 1e-5 {
					t.Fatalf("depth %d: triangle %d vertex %d has length %f", depth, i, j, v.Length())
				}
			}
		}
	}
}

func TestGenerateSphereDepthZeroIsSeed(t *testing.T) {
	tris := GenerateSphere(0)
	for i, f := range icosahedronFaces {
		want := Triangle{
			icosahedronVertices[f[0]],
			icosahedronVertices[f[1]],
			icosahedronVertices[f[2]],
		}
		if tris[i] != want {
			t.Errorf("triangle %d = %v, want %v", i, tris[i], want)
		}
	}
}

func TestGenerateSphereIsRepeatable(t *testing.T) {
	a := GenerateSphere(3)
	b := GenerateSphere(3)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two calls with the same depth produced different triangles")
	}
}

func TestGenerateSphereNegativeDepth(t *testing.T) {
	tris := GenerateSphere(-2)
	if len(tris) != 20 {
		t.Fatalf("GenerateSphere(-2) returned %d triangles, want 20", len(tris))
	}
	if !reflect.DeepEqual(tris, GenerateSphere(0)) {
		t.Error("negative depth should produce the seed icosahedron")
	}
}

func TestSubdivideOrder(t *testing.T) {
	v1 := icosahedronVertices[0]
	v2 := icosahedronVertices[4]
	v3 := icosahedronVertices[1]
	v12 := v1.Midpoint(v2).Normalize()
	v23 := v2.Midpoint(v3).Normalize()
	v31 := v3.Midpoint(v1).Normalize()

	want := []Triangle{
		{v1, v12, v31},
		{v2, v23, v12},
		{v3, v31, v23},
		{v12, v23, v31},
	}
	got := GenerateSphere(1)[:4]
	for i := range want {
		for j := range want[i] {
			if !almostEqualVector(got[i][j], want[i][j]) {
				t.Errorf("triangle %d corner %d = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}

// Every child must wind the same way as the seed faces.
func TestSubdivisionKeepsWinding(t *testing.T) {
	for depth := 0; depth <= 3; depth++ {
		for i, tri := range GenerateSphere(depth) {
			n := tri.Normal()
			if Dot(n, tri.Centroid()) >= 0 {
				t.Fatalf("depth %d: triangle %d winds counter-clockwise from outside", depth, i)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		in   Vector3
		want Vector3
	}{
		{"Unit x", Vector3{3, 0, 0}, Vector3{1, 0, 0}},
		{"Diagonal", Vector3{1, 1, 1}, Vector3{1 / math.Sqrt(3), 1 / math.Sqrt(3), 1 / math.Sqrt(3)}},
		{"Zero vector is left alone", Vector3{}, Vector3{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !almostEqualVector(got, tc.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
				t.Errorf("Normalize(%v) produced NaN", tc.in)
			}
		})
	}
}

func TestNormalizedCross(t *testing.T) {
	got := NormalizedCross(Vector3{2, 0, 0}, Vector3{0, 5, 0})
	if !almostEqualVector(got, Vector3{0, 0, 1}) {
		t.Errorf("NormalizedCross(x, y) = %v, want +z", got)
	}

	parallel := NormalizedCross(Vector3{1, 2, 3}, Vector3{2, 4, 6})
	if parallel != (Vector3{}) {
		t.Errorf("NormalizedCross of parallel vectors = %v, want zero", parallel)
	}
}

func TestTriangleCountSaturates(t *testing.T) {
	prev := 0
	for depth := 0; depth <= 64; depth++ {
		got := TriangleCount(depth)
		if got <= 0 || got < prev {
			t.Fatalf("TriangleCount(%d) = %d after %d", depth, got, prev)
		}
		prev = got
	}
	if TriangleCount(10) != 20971520 {
		t.Errorf("TriangleCount(10) = %d, want 20971520", TriangleCount(10))
	}
	if TriangleCount(40) != math.MaxInt {
		t.Errorf("TriangleCount(40) = %d, want math.MaxInt", TriangleCount(40))
	}
}

func TestSphereCapacityIsBounded(t *testing.T) {
	testCases := []struct {
		depth int
		want  int
	}{
		{0, 20},
		{3, 1280},
		{30, maxPreallocTriangles},
		{100, maxPreallocTriangles},
	}

	for _, tc := range testCases {
		if got := sphereCapacity(tc.depth); got != tc.want {
			t.Errorf("sphereCapacity(%d) = %d, want %d", tc.depth, got, tc.want)
		}
	}
}

func TestTriangleNormal(t *testing.T) {
	testCases := []struct {
		name string
		tri  Triangle
		want Vector3
	}{
		{"Counter-clockwise in xy", Triangle{{0, 0, 0}, {2, 0, 0}, {0, 3, 0}}, Vector3{0, 0, 1}},
		{"Clockwise in xy", Triangle{{0, 0, 0}, {0, 3, 0}, {2, 0, 0}}, Vector3{0, 0, -1}},
		{"Degenerate", Triangle{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, Vector3{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tri.Normal(); !almostEqualVector(got, tc.want) {
				t.Errorf("Normal() = %v, want %v", got, tc.want)
			}
		})
	}
}
