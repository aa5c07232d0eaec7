package scene

import "github.com/go-gl/mathgl/mgl32"

// Color é uma cor RGBA normalizada (0..1).
type Color struct {
	R, G, B, A float32
}

var ColorWhite = Color{1, 1, 1, 1}

// StaticModel desenha um modelo com um material, ambos referenciados pelo
// caminho no cache de recursos.
type StaticModel struct {
	Model    string
	Material string
	// Tint multiplica a cor do material. Branco mantém a cor original.
	Tint Color
}

// LightType define o tipo de luz.
type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

// Light é uma fonte de luz. A direção de luzes direcionais vem do nó.
type Light struct {
	Type  LightType
	Color Color
	Range float32
}

// BoundingBox é uma caixa alinhada aos eixos.
type BoundingBox struct {
	Min, Max mgl32.Vec3
}

// NewBoundingBox cria a caixa [min, max] nos três eixos.
func NewBoundingBox(min, max float32) BoundingBox {
	return BoundingBox{Min: mgl32.Vec3{min, min, min}, Max: mgl32.Vec3{max, max, max}}
}

// Contains verifica se o ponto está dentro da caixa (bordas inclusas).
func (b BoundingBox) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Zone controla luz ambiente e neblina dos objetos dentro do seu volume.
type Zone struct {
	Bounds       BoundingBox
	AmbientColor Color
	FogColor     Color
	FogStart     float32
	FogEnd       float32
}

// FogFactor retorna a intensidade da neblina (0..1) a uma distância da câmera.
func (z *Zone) FogFactor(distance float32) float32 {
	if z.FogEnd <= z.FogStart {
		if distance >= z.FogEnd {
			return 1
		}
		return 0
	}
	f := (distance - z.FogStart) / (z.FogEnd - z.FogStart)
	return mgl32.Clamp(f, 0, 1)
}

// Camera define a projeção. Posição e orientação vêm do nó.
type Camera struct {
	FOV      float32 // Graus, vertical
	NearClip float32
	FarClip  float32
}

// NewCamera cria uma câmera com valores padrão.
func NewCamera() *Camera {
	return &Camera{FOV: 45, NearClip: 0.1, FarClip: 1000}
}
