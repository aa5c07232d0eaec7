package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Eixos locais de um nó (convenção do raylib/OpenGL: -Z é a frente).
var (
	Forward = mgl32.Vec3{0, 0, -1}
	Back    = mgl32.Vec3{0, 0, 1}
	Left    = mgl32.Vec3{-1, 0, 0}
	Right   = mgl32.Vec3{1, 0, 0}
	Up      = mgl32.Vec3{0, 1, 0}
	Down    = mgl32.Vec3{0, -1, 0}
)

// Node é um objeto do grafo de cena. Só é criado por Scene.CreateChild ou
// Node.CreateChild, então sempre pertence a uma cena.
type Node struct {
	ID       uint32
	Name     string
	Parent   *Node
	Children []*Node

	position mgl32.Vec3
	rotation mgl32.Quat

	// Componentes (nil quando ausentes)
	Model  *StaticModel
	Light  *Light
	Zone   *Zone
	Camera *Camera

	scene *Scene
}

// CreateChild cria um nó filho com transform identidade.
func (n *Node) CreateChild(name string) *Node {
	n.scene.nextID++
	child := &Node{
		ID:       n.scene.nextID,
		Name:     name,
		Parent:   n,
		rotation: mgl32.QuatIdent(),
		scene:    n.scene,
	}
	n.Children = append(n.Children, child)
	return child
}

// Position retorna a posição local (relativa ao pai).
func (n *Node) Position() mgl32.Vec3 { return n.position }

// SetPosition define a posição local.
func (n *Node) SetPosition(p mgl32.Vec3) { n.position = p }

// Rotation retorna a orientação local.
func (n *Node) Rotation() mgl32.Quat { return n.rotation }

// SetRotation define a orientação local.
func (n *Node) SetRotation(q mgl32.Quat) { n.rotation = q.Normalize() }

// SetDirection orienta o nó para que a frente local aponte para dir.
// dir não precisa estar normalizado.
func (n *Node) SetDirection(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		return
	}
	n.rotation = mgl32.QuatBetweenVectors(Forward, dir.Normalize())
}

// Direction retorna a frente do nó no espaço do pai.
func (n *Node) Direction() mgl32.Vec3 {
	return n.rotation.Rotate(Forward)
}

// Translate move o nó no seu espaço local (a orientação do nó se aplica ao delta).
func (n *Node) Translate(delta mgl32.Vec3) {
	n.position = n.position.Add(n.rotation.Rotate(delta))
}

// WorldPosition soma as transformações de todos os ancestrais.
func (n *Node) WorldPosition() mgl32.Vec3 {
	if n.Parent == nil {
		return n.position
	}
	return n.Parent.WorldPosition().Add(n.Parent.WorldRotation().Rotate(n.position))
}

// WorldRotation compõe as orientações de todos os ancestrais.
func (n *Node) WorldRotation() mgl32.Quat {
	if n.Parent == nil {
		return n.rotation
	}
	return n.Parent.WorldRotation().Mul(n.rotation)
}

// Traverse visita o nó e todos os descendentes em profundidade.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}
