package affine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

var angles = []float32{0, 0.1, -0.5, math.Pi / 6, math.Pi / 2, math.Pi, -2.75, 2 * math.Pi, 11.3}

func randomMatrix(rng *rand.Rand) Matrix4x4 {
	var m Matrix4x4
	for i := range m {
		for j := range m[i] {
			m[i][j] = rng.Float32()*4 - 2
		}
	}
	return m
}

func TestRotateZeroIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float32) Matrix4x4
	}{
		{"X", RotateX},
		{"Y", RotateY},
		{"Z", RotateZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(0); got != Identity() {
				t.Errorf("Rotate%s(0) = %v, want identity", tt.name, got)
			}
		})
	}
}

func TestRotateMatchesMathgl(t *testing.T) {
	for _, a := range angles {
		assert.True(t, ApproxEqual(RotateX(a), FromMgl(mgl32.HomogRotate3DX(a)), eps), "x %v", a)
		assert.True(t, ApproxEqual(RotateY(a), FromMgl(mgl32.HomogRotate3DY(a)), eps), "y %v", a)
		assert.True(t, ApproxEqual(RotateZ(a), FromMgl(mgl32.HomogRotate3DZ(a)), eps), "z %v", a)
	}
}

func TestRotateLeavesUnusedEntriesZero(t *testing.T) {
	m := RotateX(0.7)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 3}, {2, 0}, {2, 3}, {3, 0}, {3, 1}, {3, 2}} {
		assert.Zero(t, m[e[0]][e[1]], "m[%d][%d]", e[0], e[1])
	}
}

func TestRotateZInverse(t *testing.T) {
	for _, a := range angles {
		got := Multiply(RotateZ(a), RotateZ(-a))
		if !ApproxEqual(got, Identity(), eps) {
			t.Errorf("RotateZ(%v) * RotateZ(%v) = %v, want identity", a, -a, got)
		}
	}
}

func TestRotateNaNPropagates(t *testing.T) {
	m := RotateY(float32(math.NaN()))
	assert.True(t, math.IsNaN(float64(m[0][0])))
	assert.Equal(t, float32(1), m[1][1])
}

func TestMultiplyIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := randomMatrix(rng)
	assert.Equal(t, a, Multiply(Identity(), a))
	assert.Equal(t, a, Multiply(a, Identity()))
}

func TestMultiplyAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		a, b, c := randomMatrix(rng), randomMatrix(rng), randomMatrix(rng)
		left := Multiply(Multiply(a, b), c)
		right := Multiply(a, Multiply(b, c))
		require.True(t, ApproxEqual(left, right, 1e-4), "iteration %d:\n%v\n%v", i, left, right)
	}
}

func TestMultiplyMatchesMathgl(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		a, b := randomMatrix(rng), randomMatrix(rng)
		want := FromMgl(b.Mgl().Mul4(a.Mgl()))
		assert.True(t, ApproxEqual(Multiply(a, b), want, 1e-4))
	}
}

func TestMultiplyNotCommutativeForRotations(t *testing.T) {
	xy := Multiply(RotateX(0.5), RotateY(0.8))
	yx := Multiply(RotateY(0.8), RotateX(0.5))
	assert.False(t, ApproxEqual(xy, yx, eps))
}

func TestMakeAffine(t *testing.T) {
	tests := []struct {
		name        string
		scale       Vector3
		rotation    Vector3
		translation Vector3
		want        Matrix4x4
	}{
		{
			name:  "Identity",
			scale: Vector3{1, 1, 1},
			want:  Identity(),
		},
		{
			name:        "Scale and translation",
			scale:       Vector3{2, 3, 4},
			translation: Vector3{5, 6, 7},
			want: Matrix4x4{
				{2, 0, 0, 0},
				{0, 3, 0, 0},
				{0, 0, 4, 0},
				{5, 6, 7, 1},
			},
		},
		{
			name:        "Zero scale keeps translation",
			translation: Vector3{1, 2, 3},
			want: Matrix4x4{
				{},
				{},
				{},
				{1, 2, 3, 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeAffine(tt.scale, tt.rotation, tt.translation)
			if got != tt.want {
				t.Errorf("MakeAffine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMakeAffineEqualsScaleRotateTranslate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 30; i++ {
		s := Vector3{rng.Float32()*3 + 0.1, rng.Float32()*3 + 0.1, rng.Float32()*3 + 0.1}
		r := Vector3{rng.Float32()*6 - 3, rng.Float32()*6 - 3, rng.Float32()*6 - 3}
		tr := Vector3{rng.Float32()*20 - 10, rng.Float32()*20 - 10, rng.Float32()*20 - 10}

		got := MakeAffine(s, r, tr)

		full := Multiply(Multiply(Scale(s), Rotate(r)), Translate(tr))
		require.True(t, ApproxEqual(got, full, 1e-4), "S*R*T mismatch at %d", i)

		oracle := mgl32.Translate3D(tr.X, tr.Y, tr.Z).
			Mul4(mgl32.HomogRotate3DZ(r.Z)).
			Mul4(mgl32.HomogRotate3DY(r.Y)).
			Mul4(mgl32.HomogRotate3DX(r.X)).
			Mul4(mgl32.Scale3D(s.X, s.Y, s.Z))
		require.True(t, ApproxEqual(got, FromMgl(oracle), 1e-4), "mathgl mismatch at %d", i)
	}
}

func TestMakeAffineRotationOrder(t *testing.T) {
	r := Vector3{0.3, 1.1, -0.6}
	got := MakeAffine(Vector3{1, 1, 1}, r, Vector3{})
	want := Multiply(RotateX(r.X), Multiply(RotateY(r.Y), RotateZ(r.Z)))
	assert.True(t, ApproxEqual(got, want, eps))

	reversed := Multiply(RotateZ(r.Z), Multiply(RotateY(r.Y), RotateX(r.X)))
	assert.False(t, ApproxEqual(got, reversed, eps))
}

func TestTransformPoint(t *testing.T) {
	m := MakeAffine(Vector3{2, 2, 2}, Vector3{Z: math.Pi / 2}, Vector3{10, 0, 0})
	p := TransformPoint(Vector3{X: 1}, m)
	assert.InDelta(t, 10, p.X, 1e-5)
	assert.InDelta(t, 2, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
}

func TestTransformPointPerspectiveDivide(t *testing.T) {
	m := Identity()
	m[3][3] = 2
	p := TransformPoint(Vector3{2, 4, 6}, m)
	assert.Equal(t, Vector3{1, 2, 3}, p)
}

func TestMglRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := randomMatrix(rng)
	assert.Equal(t, m, FromMgl(m.Mgl()))
	assert.Equal(t, Transpose(m), FromMgl(m.Mgl().Transpose()))
}

func TestApproxEqualRejectsNaN(t *testing.T) {
	m := Identity()
	m[2][1] = float32(math.NaN())
	assert.False(t, ApproxEqual(m, m, 1))
}
