package assets

import (
	"encoding/json"
	"fmt"

	"BlockScene/cliente/internal/scene"
)

// materialJSON é o formato de Materials/*.json.
//
//	{"color": [1, 1, 1, 1], "texture": "Textures/stone.png"}
type materialJSON struct {
	Color   *[4]float32 `json:"color,omitempty"`
	Texture string      `json:"texture,omitempty"`
}

// Material é a cor base e a textura difusa (opcional) de um modelo.
type Material struct {
	Name    string
	Color   scene.Color
	Texture string // Caminho relativo ao diretório de recursos
}

// DefaultMaterial é usado quando o arquivo de material falha.
func DefaultMaterial(name string) *Material {
	return &Material{Name: name, Color: scene.ColorWhite}
}

// ParseMaterial interpreta um arquivo de material. Cor ausente vale branco.
func ParseMaterial(name string, data []byte) (*Material, error) {
	var mj materialJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return nil, fmt.Errorf("falha ao parsear material %s: %w", name, err)
	}

	m := DefaultMaterial(name)
	if mj.Color != nil {
		c := *mj.Color
		for _, v := range c {
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("material %s: componente de cor fora de [0,1]: %v", name, v)
			}
		}
		m.Color = scene.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
	}
	m.Texture = mj.Texture
	return m, nil
}

// Modulate multiplica a cor do material por uma tinta.
func (m *Material) Modulate(tint scene.Color) scene.Color {
	return scene.Color{
		R: m.Color.R * tint.R,
		G: m.Color.G * tint.G,
		B: m.Color.B * tint.B,
		A: m.Color.A * tint.A,
	}
}
