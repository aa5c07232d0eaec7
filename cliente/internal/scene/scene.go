package scene

import "github.com/go-gl/mathgl/mgl32"

// Scene é a raiz do grafo de cena.
type Scene struct {
	Root   *Node
	nextID uint32
}

// New cria uma cena vazia.
func New() *Scene {
	s := &Scene{}
	s.Root = &Node{Name: "Scene", rotation: mgl32.QuatIdent(), scene: s}
	return s
}

// CreateChild cria um nó diretamente sob a raiz.
func (s *Scene) CreateChild(name string) *Node {
	return s.Root.CreateChild(name)
}

// Drawables retorna todos os nós com StaticModel.
func (s *Scene) Drawables() []*Node {
	var out []*Node
	s.Root.Traverse(func(n *Node) {
		if n.Model != nil {
			out = append(out, n)
		}
	})
	return out
}

// Lights retorna todos os nós com luz.
func (s *Scene) Lights() []*Node {
	var out []*Node
	s.Root.Traverse(func(n *Node) {
		if n.Light != nil {
			out = append(out, n)
		}
	})
	return out
}

// ZoneAt retorna a zona que contém o ponto. Com zonas sobrepostas vence a
// última criada; nil quando nenhuma contém o ponto.
func (s *Scene) ZoneAt(p mgl32.Vec3) *Zone {
	var found *Zone
	s.Root.Traverse(func(n *Node) {
		if n.Zone != nil && n.Zone.Bounds.Contains(n.WorldPosition().Mul(-1).Add(p)) {
			found = n.Zone
		}
	})
	return found
}

// NodeCount conta os nós da cena, sem a raiz.
func (s *Scene) NodeCount() int {
	count := -1
	s.Root.Traverse(func(*Node) { count++ })
	return count
}
