package render

import (
	"testing"

	"BlockScene/cliente/internal/camera"
	"BlockScene/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func approx(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	v := mgl32.Vec3{got.X, got.Y, got.Z}
	assert.True(t, mgl32.Vec3{want.X, want.Y, want.Z}.ApproxEqualThreshold(v, 1e-4), "want %v, got %v", want, got)
}

func TestRLCameraIdentity(t *testing.T) {
	node := scene.New().CreateChild("Camera")
	node.Camera = scene.NewCamera()
	node.SetPosition(mgl32.Vec3{1, 2, 3})

	cam := RLCamera(node)
	approx(t, rl.Vector3{X: 1, Y: 2, Z: 3}, cam.Position)
	approx(t, rl.Vector3{X: 1, Y: 2, Z: 2}, cam.Target)
	approx(t, rl.Vector3{X: 0, Y: 1, Z: 0}, cam.Up)
	assert.Equal(t, float32(45), cam.Fovy)
	assert.Equal(t, rl.CameraPerspective, cam.Projection)
}

func TestRLCameraFollowsYaw(t *testing.T) {
	node := scene.New().CreateChild("Camera")
	node.SetRotation(camera.Orientation(0, 90))

	cam := RLCamera(node)
	approx(t, rl.Vector3{X: 1, Y: 0, Z: 0}, cam.Target)
}

func TestToRLColor(t *testing.T) {
	assert.Equal(t, rl.Color{R: 26, G: 51, B: 77, A: 255}, toRLColor(scene.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}))
	assert.Equal(t, rl.Color{R: 255, G: 0, B: 0, A: 255}, toRLColor(scene.Color{R: 2, G: -1, B: 0, A: 1}))
}

func TestWithinFarClip(t *testing.T) {
	origin := mgl32.Vec3{}
	assert.True(t, withinFarClip(origin, mgl32.Vec3{0, 0, 1000}, 1000))
	assert.False(t, withinFarClip(origin, mgl32.Vec3{0, 0, 1000.5}, 1000))
	assert.True(t, withinFarClip(origin, mgl32.Vec3{0, 0, 1e7}, 0), "far <= 0 desliga o corte")
}

func TestSetViewport(t *testing.T) {
	r := &Renderer{viewports: make(map[int]*Viewport)}
	s := scene.New()
	vp := &Viewport{Scene: s, Camera: s.CreateChild("Camera")}

	r.SetViewport(0, vp)
	assert.Same(t, vp, r.Viewport(0))
	assert.Equal(t, 1, r.NumViewports())

	r.SetViewport(0, nil)
	assert.Nil(t, r.Viewport(0))
	assert.Equal(t, 0, r.NumViewports())
}

func TestHiddenByFog(t *testing.T) {
	zone := &scene.Zone{FogStart: 10, FogEnd: 100}
	origin := mgl32.Vec3{}

	tests := []struct {
		name string
		pos  mgl32.Vec3
		want bool
	}{
		{"perto", mgl32.Vec3{0, 0, -20}, false},
		{"canto ainda visível", mgl32.Vec3{0, 0, -105}, false},
		{"além da neblina", mgl32.Vec3{0, 0, -110}, true},
		{"muito longe", mgl32.Vec3{500, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hiddenByFog(zone, origin, tt.pos))
		})
	}

	assert.False(t, hiddenByFog(nil, origin, mgl32.Vec3{0, 0, 1e6}), "sem zona não há neblina")
}
