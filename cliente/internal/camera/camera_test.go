package camera

import (
	"math/rand"
	"testing"

	"BlockScene/cliente/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

type fakeInput struct {
	dx, dy float32
	keys   map[Key]bool
}

func (f *fakeInput) MouseMove() (float32, float32) { return f.dx, f.dy }
func (f *fakeInput) IsKeyDown(k Key) bool          { return f.keys[k] }

func keys(ks ...Key) map[Key]bool {
	m := make(map[Key]bool)
	for _, k := range ks {
		m[k] = true
	}
	return m
}

func newCameraNode() *scene.Node {
	return scene.New().CreateChild("Camera")
}

func TestRotateAccumulatesYaw(t *testing.T) {
	c := New()
	c.Rotate(10, 0)
	c.Rotate(25, 0)
	assert.InDelta(t, 3.5, c.Yaw, eps)

	c.Rotate(-5000, 0)
	assert.InDelta(t, -496.5, c.Yaw, eps, "yaw não é limitado")
}

func TestPitchClamped(t *testing.T) {
	tests := []struct {
		name string
		dys  []float32
		want float32
	}{
		{"dentro do limite", []float32{100, 200}, 30},
		{"limite superior", []float32{2000}, 90},
		{"limite inferior", []float32{-1000, -1000}, -90},
		{"volta do limite", []float32{5000, -100}, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, dy := range tt.dys {
				c.Rotate(0, dy)
			}
			assert.InDelta(t, tt.want, c.Pitch, eps)
		})
	}
}

func TestPitchStaysInRangeForAnySequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := New()
	node := newCameraNode()
	in := &fakeInput{keys: keys()}

	for i := 0; i < 10000; i++ {
		in.dx = float32(rng.NormFloat64() * 500)
		in.dy = float32(rng.NormFloat64() * 500)
		c.Update(node, in, 1.0/60)
		require.GreaterOrEqual(t, c.Pitch, MinPitch)
		require.LessOrEqual(t, c.Pitch, MaxPitch)
	}
}

func TestUpdateSetsOrientation(t *testing.T) {
	c := New()
	node := newCameraNode()
	in := &fakeInput{dx: 900, dy: 0, keys: keys()}

	// 900 px * 0.1 = 90 graus para a direita: a frente vira +X.
	c.Update(node, in, 0)
	got := node.Rotation().Rotate(scene.Forward)
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, eps), "frente = %v", got)

	// Mouse para baixo olha para baixo.
	c = New()
	node = newCameraNode()
	in = &fakeInput{dy: 900, keys: keys()}
	c.Update(node, in, 0)
	got = node.Rotation().Rotate(scene.Forward)
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, eps), "frente = %v", got)
}

func TestMovementDisplacement(t *testing.T) {
	const dt = float32(0.25) // 20 * 0.25 = 5 unidades por tecla

	tests := []struct {
		name string
		keys []Key
		want mgl32.Vec3
	}{
		{"parado", nil, mgl32.Vec3{}},
		{"W", []Key{KeyW}, mgl32.Vec3{0, 0, -5}},
		{"S", []Key{KeyS}, mgl32.Vec3{0, 0, 5}},
		{"A", []Key{KeyA}, mgl32.Vec3{-5, 0, 0}},
		{"D", []Key{KeyD}, mgl32.Vec3{5, 0, 0}},
		{"diagonal nao normalizada", []Key{KeyW, KeyD}, mgl32.Vec3{5, 0, -5}},
		{"opostas se anulam", []Key{KeyW, KeyS}, mgl32.Vec3{}},
		{"todas", []Key{KeyW, KeyS, KeyA, KeyD}, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			node := newCameraNode()
			c.Update(node, &fakeInput{keys: keys(tt.keys...)}, dt)
			assert.True(t, node.Position().ApproxEqualThreshold(tt.want, eps), "posição = %v", node.Position())
		})
	}
}

func TestDiagonalIsFaster(t *testing.T) {
	c := New()
	node := newCameraNode()
	c.Update(node, &fakeInput{keys: keys(KeyW, KeyA)}, 1)
	assert.InDelta(t, 20*1.41421356, node.Position().Len(), 1e-3)
}

func TestMovementFollowsOrientation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		c := New()
		c.Yaw = float32(rng.Float64()*720 - 360)
		c.Pitch = float32(rng.Float64()*180 - 90)
		node := newCameraNode()
		start := mgl32.Vec3{float32(rng.Intn(100)), float32(rng.Intn(100)), float32(rng.Intn(100))}
		node.SetPosition(start)

		held := keys()
		sum := mgl32.Vec3{}
		for _, m := range movement {
			if rng.Intn(2) == 0 {
				held[m.key] = true
				sum = sum.Add(m.axis)
			}
		}
		dt := float32(rng.Float64() * 0.1)

		c.Update(node, &fakeInput{keys: held}, dt)

		want := start.Add(Orientation(c.Pitch, c.Yaw).Rotate(sum.Mul(20 * dt)))
		require.True(t, node.Position().ApproxEqualThreshold(want, 1e-3), "want %v, got %v", want, node.Position())
	}
}

func TestCustomSpeedAndSensitivity(t *testing.T) {
	c := &FirstPersonController{MoveSpeed: 40, MouseSensitivity: 0.5}
	node := newCameraNode()
	c.Update(node, &fakeInput{dx: 10, keys: keys(KeyS)}, 0.5)

	assert.InDelta(t, 5, c.Yaw, eps)
	want := Orientation(0, 5).Rotate(mgl32.Vec3{0, 0, 20})
	assert.True(t, node.Position().ApproxEqualThreshold(want, eps))
}
