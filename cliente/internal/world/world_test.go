package world

import (
	"math/rand"
	"testing"

	"BlockScene/cliente/internal/scene"
	"BlockScene/shared/mapfile"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockToWorld(t *testing.T) {
	tests := []struct {
		block mapfile.BlockDescriptor
		want  mgl32.Vec3
	}{
		{mapfile.Block(0, 0, 0), mgl32.Vec3{0, 0, 0}},
		{mapfile.Block(1, 2, 3), mgl32.Vec3{10, 20, 30}},
		{mapfile.Block(-7, 0, 12), mgl32.Vec3{-70, 0, 120}},
		{mapfile.Block(100000, -100000, 1), mgl32.Vec3{1000000, -1000000, 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BlockToWorld(tt.block))
	}
}

func TestPopulateBlocksPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	doc := &mapfile.Document{}
	for i := 0; i < 200; i++ {
		doc.Blocks = append(doc.Blocks, mapfile.Block(rng.Intn(401)-200, rng.Intn(401)-200, rng.Intn(401)-200))
	}

	s := scene.New()
	boxes := PopulateBlocks(s, doc)
	require.Len(t, boxes, len(doc.Blocks))

	for i, b := range doc.Blocks {
		want := mgl32.Vec3{float32(10 * b.X), float32(10 * b.Y), float32(10 * b.Z)}
		assert.Equal(t, want, boxes[i].WorldPosition())
		assert.Equal(t, "Box", boxes[i].Name)
		require.NotNil(t, boxes[i].Model)
		assert.Equal(t, CubeModel, boxes[i].Model.Model)
		assert.Equal(t, CubeMaterial, boxes[i].Model.Material)
	}
}

func TestPopulateBlocksDuplicatesOverlap(t *testing.T) {
	doc := &mapfile.Document{Blocks: []mapfile.BlockDescriptor{mapfile.Block(1, 1, 1), mapfile.Block(1, 1, 1)}}

	s := scene.New()
	boxes := PopulateBlocks(s, doc)
	require.Len(t, boxes, 2)
	assert.NotSame(t, boxes[0], boxes[1])
	assert.Equal(t, boxes[0].Position(), boxes[1].Position())
}

func TestPopulateBlocksTint(t *testing.T) {
	doc := &mapfile.Document{
		Blocks: []mapfile.BlockDescriptor{mapfile.ColoredBlock(0, 0, 0, 0), mapfile.Block(1, 0, 0)},
		Colors: []mapfile.RGBA{{R: 255, G: 0, B: 51, A: 255}},
	}

	boxes := PopulateBlocks(scene.New(), doc)
	assert.InDelta(t, 1.0, boxes[0].Model.Tint.R, 1e-6)
	assert.InDelta(t, 0.2, boxes[0].Model.Tint.B, 1e-6)
	assert.Equal(t, scene.ColorWhite, boxes[1].Model.Tint)
}

func TestCreateScene(t *testing.T) {
	doc := &mapfile.Document{Blocks: []mapfile.BlockDescriptor{mapfile.Block(0, -1, 2), mapfile.Block(3, 0, 0)}}

	s := scene.New()
	rig := CreateScene(s, doc, 0)

	require.NotNil(t, rig.Light.Light)
	assert.Equal(t, scene.LightDirectional, rig.Light.Light.Type)
	assert.Equal(t, LightRange, rig.Light.Light.Range)
	assert.Equal(t, LightPosition, rig.Light.Position())
	assert.True(t, rig.Light.Direction().ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5))

	require.NotNil(t, rig.Zone.Zone)
	assert.Equal(t, FogColor, rig.Zone.Zone.FogColor)
	assert.Equal(t, AmbientColor, rig.Zone.Zone.AmbientColor)
	assert.Equal(t, float32(10), rig.Zone.Zone.FogStart)
	assert.Equal(t, float32(100), rig.Zone.Zone.FogEnd)
	assert.True(t, rig.Zone.Zone.Bounds.Contains(mgl32.Vec3{1000, -1000, 0}))

	require.NotNil(t, rig.Camera.Camera)
	assert.Equal(t, mgl32.Vec3{}, rig.Camera.Position())
	assert.Equal(t, CameraFarMax, rig.Camera.Camera.FarClip)

	assert.Len(t, rig.Boxes, 2)
	assert.Len(t, s.Drawables(), 2)
	assert.Equal(t, 5, s.NodeCount())
}

func TestCreateSceneWithoutMap(t *testing.T) {
	s := scene.New()
	rig := CreateScene(s, nil, 50)

	assert.Empty(t, rig.Boxes)
	assert.Equal(t, float32(50), rig.Camera.Camera.FarClip)
	assert.Equal(t, 3, s.NodeCount())
}
