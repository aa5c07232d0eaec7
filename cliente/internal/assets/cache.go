package assets

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FallbackCubeSize é a aresta do cubo gerado quando um modelo não carrega.
const FallbackCubeSize float32 = 10.0

// Backend isola as chamadas de GPU do raylib.
type Backend interface {
	LoadModel(path string) (rl.Model, error)
	FallbackModel() rl.Model
	LoadTexture(path string) (rl.Texture2D, error)
	UnloadModel(m rl.Model)
	UnloadTexture(t rl.Texture2D)
}

// Cache carrega modelos, materiais e texturas uma única vez, pelo caminho.
// Falhas de carga não são fatais: o cache registra um aviso e devolve um
// substituto (cubo gerado ou material branco).
type Cache struct {
	dir string
	gpu Backend

	models    map[string]rl.Model
	materials map[string]*Material
	textures  map[string]rl.Texture2D
	fallbacks map[string]bool // Caminhos servidos por substitutos
}

// NewCache cria um cache sobre o diretório de recursos. Requer janela aberta.
func NewCache(dir string) *Cache {
	return NewCacheWithBackend(dir, raylibBackend{})
}

// NewCacheWithBackend cria um cache sobre outro Backend (testes sem janela).
func NewCacheWithBackend(dir string, gpu Backend) *Cache {
	return &Cache{
		dir:       dir,
		gpu:       gpu,
		models:    make(map[string]rl.Model),
		materials: make(map[string]*Material),
		textures:  make(map[string]rl.Texture2D),
		fallbacks: make(map[string]bool),
	}
}

func (c *Cache) resolve(path string) string {
	return filepath.Join(c.dir, filepath.FromSlash(path))
}

// GetModel retorna o modelo do caminho, carregando na primeira consulta.
func (c *Cache) GetModel(path string) rl.Model {
	if m, ok := c.models[path]; ok {
		return m
	}

	m, err := c.gpu.LoadModel(c.resolve(path))
	if err != nil {
		log.Printf("[Assets] AVISO: modelo %s não carregado (%v), usando cubo gerado", path, err)
		m = c.gpu.FallbackModel()
		c.fallbacks[path] = true
	} else {
		log.Printf("[Assets] Modelo carregado: %s", path)
	}
	c.models[path] = m
	return m
}

// GetMaterial retorna o material do caminho, carregando na primeira consulta.
func (c *Cache) GetMaterial(path string) *Material {
	if m, ok := c.materials[path]; ok {
		return m
	}

	m, err := c.loadMaterial(path)
	if err != nil {
		log.Printf("[Assets] AVISO: %v, usando material padrão", err)
		m = DefaultMaterial(path)
		c.fallbacks[path] = true
	} else {
		log.Printf("[Assets] Material carregado: %s", path)
	}
	c.materials[path] = m
	return m
}

func (c *Cache) loadMaterial(path string) (*Material, error) {
	data, err := os.ReadFile(c.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("falha ao ler material %s: %w", path, err)
	}
	return ParseMaterial(path, data)
}

// GetTexture retorna a textura do caminho. ok é false se não carregou.
func (c *Cache) GetTexture(path string) (rl.Texture2D, bool) {
	if path == "" {
		return rl.Texture2D{}, false
	}
	if t, ok := c.textures[path]; ok {
		return t, t.ID != 0
	}

	t, err := c.gpu.LoadTexture(c.resolve(path))
	if err != nil {
		log.Printf("[Assets] FALHA ao carregar textura %s: %v", path, err)
		t = rl.Texture2D{}
		c.fallbacks[path] = true
	} else {
		log.Printf("[Assets] Textura carregada: %s", path)
	}
	c.textures[path] = t
	return t, t.ID != 0
}

// IsFallback indica se o recurso do caminho é um substituto.
func (c *Cache) IsFallback(path string) bool {
	return c.fallbacks[path]
}

// Resources lista todos os caminhos em cache, ordenados.
func (c *Cache) Resources() []string {
	names := make([]string, 0, len(c.models)+len(c.materials)+len(c.textures))
	for k := range c.models {
		names = append(names, k)
	}
	for k := range c.materials {
		names = append(names, k)
	}
	for k := range c.textures {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Dump registra no log todos os recursos em cache.
func (c *Cache) Dump() {
	log.Printf("[Assets] Recursos em cache: %d modelos, %d materiais, %d texturas",
		len(c.models), len(c.materials), len(c.textures))
	for _, name := range c.Resources() {
		kind := "material"
		if _, ok := c.models[name]; ok {
			kind = "modelo"
		} else if _, ok := c.textures[name]; ok {
			kind = "textura"
		}
		suffix := ""
		if c.fallbacks[name] {
			suffix = " (substituto)"
		}
		log.Printf("[Assets]   %-8s %s%s", kind, name, suffix)
	}
}

// Unload libera os recursos de GPU e esvazia o cache.
func (c *Cache) Unload() {
	for _, m := range c.models {
		c.gpu.UnloadModel(m)
	}
	for _, t := range c.textures {
		if t.ID != 0 {
			c.gpu.UnloadTexture(t)
		}
	}
	c.models = make(map[string]rl.Model)
	c.materials = make(map[string]*Material)
	c.textures = make(map[string]rl.Texture2D)
	c.fallbacks = make(map[string]bool)
}

// raylibBackend carrega recursos na GPU via raylib.
type raylibBackend struct{}

func (raylibBackend) LoadModel(path string) (rl.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, err
	}
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("nenhuma malha em %s", path)
	}
	return model, nil
}

func (raylibBackend) FallbackModel() rl.Model {
	mesh := rl.GenMeshCube(FallbackCubeSize, FallbackCubeSize, FallbackCubeSize)
	return rl.LoadModelFromMesh(mesh)
}

func (raylibBackend) LoadTexture(path string) (rl.Texture2D, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, err
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("textura inválida: %s", path)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex, nil
}

func (raylibBackend) UnloadModel(m rl.Model)       { rl.UnloadModel(m) }
func (raylibBackend) UnloadTexture(t rl.Texture2D) { rl.UnloadTexture(t) }
