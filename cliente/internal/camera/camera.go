package camera

import (
	"BlockScene/cliente/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Key identifica uma tecla de movimento.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
)

// Input é o que o controlador precisa saber do teclado e do mouse no frame.
type Input interface {
	// MouseMove retorna o deslocamento do mouse em pixels desde o frame anterior.
	MouseMove() (dx, dy float32)
	IsKeyDown(k Key) bool
}

// Valores padrão
const (
	DefaultMoveSpeed        float32 = 20.0 // Unidades do mundo por segundo
	DefaultMouseSensitivity float32 = 0.1  // Graus por pixel
	MinPitch                float32 = -90.0
	MaxPitch                float32 = 90.0
)

// movement liga cada tecla ao eixo local correspondente.
var movement = []struct {
	key  Key
	axis mgl32.Vec3
}{
	{KeyW, scene.Forward},
	{KeyS, scene.Back},
	{KeyA, scene.Left},
	{KeyD, scene.Right},
}

// FirstPersonController gira a câmera com o mouse e a move com WASD.
// O estado persistente são só os ângulos; o resto é recalculado a cada frame.
type FirstPersonController struct {
	Yaw   float32 // Graus
	Pitch float32 // Graus, sempre em [-90, 90]

	MoveSpeed        float32
	MouseSensitivity float32
}

// New cria um controlador com velocidade e sensibilidade padrão.
func New() *FirstPersonController {
	return &FirstPersonController{
		MoveSpeed:        DefaultMoveSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
	}
}

// Update aplica o input de um frame ao nó da câmera. timeStep em segundos.
func (c *FirstPersonController) Update(node *scene.Node, in Input, timeStep float32) {
	// Usa o movimento do mouse deste frame para ajustar yaw e pitch
	dx, dy := in.MouseMove()
	c.Rotate(dx, dy)

	// Roll fixo em zero
	node.SetRotation(Orientation(c.Pitch, c.Yaw))

	// Teclas compõem de forma aditiva; diagonal não é normalizada
	step := c.MoveSpeed * timeStep
	for _, m := range movement {
		if in.IsKeyDown(m.key) {
			node.Translate(m.axis.Mul(step))
		}
	}
}

// Rotate acumula o deslocamento do mouse nos ângulos e limita o pitch.
func (c *FirstPersonController) Rotate(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.MouseSensitivity, MinPitch, MaxPitch)
}

// Orientation monta o quaternion de (pitch, yaw, 0).
//
// Yaw positivo vira para a direita e pitch positivo olha para baixo (mouse
// para baixo = dy positivo). Como o espaço é destro, os dois ângulos entram
// negativos nas rotações em torno de +Y e +X.
func Orientation(pitch, yaw float32) mgl32.Quat {
	qYaw := mgl32.QuatRotate(mgl32.DegToRad(-yaw), scene.Up)
	qPitch := mgl32.QuatRotate(mgl32.DegToRad(-pitch), scene.Right)
	return qYaw.Mul(qPitch)
}
