// Package world monta a cena estática: luz, zona de neblina, câmera e um cubo
// para cada bloco do mapa.
package world

import (
	"BlockScene/cliente/internal/scene"
	"BlockScene/shared/mapfile"

	"github.com/go-gl/mathgl/mgl32"
)

// GridScale converte coordenadas da grade do mapa para unidades do mundo.
const GridScale float32 = 10.0

// Recursos fixos usados por todos os blocos.
const (
	CubeModel    = "Models/cube.obj"
	CubeMaterial = "Materials/cube.json"
)

// Parâmetros da luz direcional e da zona.
const (
	LightRange   float32 = 1000.0
	ZoneExtent   float32 = 1000.0
	FogStart     float32 = 10.0
	FogEnd       float32 = 100.0
	CameraFOV    float32 = 45.0
	CameraNear   float32 = 0.1
	CameraFarMax float32 = 1000.0
)

var (
	LightPosition  = mgl32.Vec3{0, 100, 0}
	LightDirection = mgl32.Vec3{0, -1, 0}
	AmbientColor   = scene.Color{R: 1, G: 1, B: 1, A: 1}
	FogColor       = scene.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
)

// BlockToWorld retorna a posição no mundo de um bloco da grade.
func BlockToWorld(b mapfile.BlockDescriptor) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(b.X) * GridScale,
		float32(b.Y) * GridScale,
		float32(b.Z) * GridScale,
	}
}

// Rig são os nós fixos criados por CreateScene.
type Rig struct {
	Light  *scene.Node
	Zone   *scene.Node
	Camera *scene.Node
	Boxes  []*scene.Node
}

// CreateScene cria luz, zona, um cubo por bloco e a câmera, nessa ordem.
// farClip <= 0 usa o padrão.
func CreateScene(s *scene.Scene, doc *mapfile.Document, farClip float32) *Rig {
	rig := &Rig{}

	rig.Light = s.CreateChild("DirectionalLight")
	rig.Light.SetDirection(LightDirection) // Não precisa estar normalizado
	rig.Light.SetPosition(LightPosition)
	rig.Light.Light = &scene.Light{
		Type:  scene.LightDirectional,
		Color: scene.ColorWhite,
		Range: LightRange,
	}

	// Mesmo volume da área visível da cena: [-1000, 1000] em cada eixo
	rig.Zone = s.CreateChild("Zone")
	rig.Zone.Zone = &scene.Zone{
		Bounds:       scene.NewBoundingBox(-ZoneExtent, ZoneExtent),
		AmbientColor: AmbientColor,
		FogColor:     FogColor,
		FogStart:     FogStart,
		FogEnd:       FogEnd,
	}

	if doc != nil {
		rig.Boxes = PopulateBlocks(s, doc)
	}

	rig.Camera = s.CreateChild("Camera")
	cam := scene.NewCamera()
	cam.FOV = CameraFOV
	cam.NearClip = CameraNear
	cam.FarClip = CameraFarMax
	if farClip > 0 {
		cam.FarClip = farClip
	}
	rig.Camera.Camera = cam

	return rig
}

// PopulateBlocks cria um nó "Box" por descritor, sem validar coordenadas.
// Descritores duplicados geram geometria sobreposta.
func PopulateBlocks(s *scene.Scene, doc *mapfile.Document) []*scene.Node {
	boxes := make([]*scene.Node, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		node := s.CreateChild("Box")
		node.SetPosition(BlockToWorld(b))

		tint := scene.ColorWhite
		if c, ok := doc.ColorOf(b); ok {
			tint = scene.Color{
				R: float32(c.R) / 255,
				G: float32(c.G) / 255,
				B: float32(c.B) / 255,
				A: float32(c.A) / 255,
			}
		}
		node.Model = &scene.StaticModel{
			Model:    CubeModel,
			Material: CubeMaterial,
			Tint:     tint,
		}
		boxes = append(boxes, node)
	}
	return boxes
}
