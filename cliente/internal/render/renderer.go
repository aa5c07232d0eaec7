package render

import (
	"log"
	"sort"
	"unsafe"

	"BlockScene/cliente/internal/assets"
	"BlockScene/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport liga uma cena a um nó de câmera.
type Viewport struct {
	Scene  *scene.Scene
	Camera *scene.Node
}

// Renderer desenha as viewports registradas a cada frame.
type Renderer struct {
	cache     *assets.Cache
	viewports map[int]*Viewport

	shader       rl.Shader
	shaderLoaded bool
	viewPosLoc   int32
	lightDirLoc  int32
	lightColLoc  int32
	ambientLoc   int32
	fogColorLoc  int32
	fogStartLoc  int32
	fogEndLoc    int32

	ShowGrid bool

	// Estatísticas do último frame
	DrawnNodes  int
	CulledNodes int
}

// NewRenderer cria o renderizador. Se a janela já existir, compila o shader.
func NewRenderer(cache *assets.Cache) *Renderer {
	r := &Renderer{
		cache:     cache,
		viewports: make(map[int]*Viewport),
	}

	if rl.IsWindowReady() {
		r.loadShader()
	}
	return r
}

func (r *Renderer) loadShader() {
	r.shader = rl.LoadShaderFromMemory(sceneVertexShader, sceneFragmentShader)
	if r.shader.ID == 0 {
		log.Printf("[Renderer] AVISO: shader de cena não compilou, usando shader padrão")
		return
	}

	// Locs aponta para um array em C; 9 = SHADER_LOC_MATRIX_MODEL, 12 = SHADER_LOC_COLOR_DIFFUSE
	locs := unsafe.Slice(r.shader.Locs, 32)
	locs[9] = rl.GetShaderLocation(r.shader, "matModel")
	locs[12] = rl.GetShaderLocation(r.shader, "colDiffuse")

	r.viewPosLoc = rl.GetShaderLocation(r.shader, "viewPos")
	r.lightDirLoc = rl.GetShaderLocation(r.shader, "lightDir")
	r.lightColLoc = rl.GetShaderLocation(r.shader, "lightColor")
	r.ambientLoc = rl.GetShaderLocation(r.shader, "ambientColor")
	r.fogColorLoc = rl.GetShaderLocation(r.shader, "fogColor")
	r.fogStartLoc = rl.GetShaderLocation(r.shader, "fogStart")
	r.fogEndLoc = rl.GetShaderLocation(r.shader, "fogEnd")
	r.shaderLoaded = true

	log.Printf("[Renderer] Shader de cena carregado")
}

// SetViewport registra (ou substitui) a viewport de um índice. nil remove.
func (r *Renderer) SetViewport(index int, vp *Viewport) {
	if vp == nil {
		delete(r.viewports, index)
		return
	}
	r.viewports[index] = vp
}

// Viewport retorna a viewport de um índice.
func (r *Renderer) Viewport(index int) *Viewport {
	return r.viewports[index]
}

// NumViewports retorna quantas viewports estão registradas.
func (r *Renderer) NumViewports() int {
	return len(r.viewports)
}

// RLCamera converte um nó de câmera para a câmera do raylib.
func RLCamera(node *scene.Node) rl.Camera3D {
	pos := node.WorldPosition()
	rot := node.WorldRotation()
	target := pos.Add(rot.Rotate(scene.Forward))
	up := rot.Rotate(scene.Up)

	fov := float32(45)
	if node.Camera != nil {
		fov = node.Camera.FOV
	}

	return rl.Camera3D{
		Position:   toRLVec(pos),
		Target:     toRLVec(target),
		Up:         toRLVec(up),
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}
}

func toRLVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func toRLColor(c scene.Color) rl.Color {
	return rl.Color{
		R: uint8(mgl32.Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(mgl32.Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(mgl32.Clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(mgl32.Clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// withinFarClip verifica se o nó está dentro do alcance da câmera.
func withinFarClip(camPos, nodePos mgl32.Vec3, far float32) bool {
	if far <= 0 {
		return true
	}
	return nodePos.Sub(camPos).Len() <= far
}

// nodeRadius é meia diagonal do cubo de um bloco.
const nodeRadius = assets.FallbackCubeSize * 0.8660254

// hiddenByFog indica se até o canto mais próximo do bloco já está
// totalmente coberto pela neblina da zona.
func hiddenByFog(zone *scene.Zone, camPos, nodePos mgl32.Vec3) bool {
	if zone == nil {
		return false
	}
	return zone.FogFactor(nodePos.Sub(camPos).Len()-nodeRadius) >= 1
}

// Draw desenha todas as viewports, em ordem de índice.
func (r *Renderer) Draw() {
	indices := make([]int, 0, len(r.viewports))
	for i := range r.viewports {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	r.DrawnNodes, r.CulledNodes = 0, 0
	for _, i := range indices {
		r.drawViewport(r.viewports[i])
	}
}

func (r *Renderer) drawViewport(vp *Viewport) {
	if vp == nil || vp.Scene == nil || vp.Camera == nil {
		return
	}

	camPos := vp.Camera.WorldPosition()
	zone := vp.Scene.ZoneAt(camPos)
	if zone != nil {
		rl.ClearBackground(toRLColor(zone.FogColor))
	}

	r.applyEnvironment(vp.Scene, zone, camPos)

	rl.BeginMode3D(RLCamera(vp.Camera))

	if r.ShowGrid {
		rl.DrawGrid(100, 10)
	}

	far := float32(0)
	if vp.Camera.Camera != nil {
		far = vp.Camera.Camera.FarClip
	}

	for _, node := range vp.Scene.Drawables() {
		pos := node.WorldPosition()
		// Sem o shader de cena não há neblina, então só o far clip corta
		if !withinFarClip(camPos, pos, far) || (r.shaderLoaded && hiddenByFog(zone, camPos, pos)) {
			r.CulledNodes++
			continue
		}
		r.drawStaticModel(node.Model, pos)
		r.DrawnNodes++
	}

	rl.EndMode3D()
}

func (r *Renderer) applyEnvironment(s *scene.Scene, zone *scene.Zone, camPos mgl32.Vec3) {
	if !r.shaderLoaded {
		return
	}

	lightDir := scene.Down
	lightCol := scene.Color{}
	for _, n := range s.Lights() {
		if n.Light.Type == scene.LightDirectional {
			lightDir = n.WorldRotation().Rotate(scene.Forward)
			lightCol = n.Light.Color
			break
		}
	}

	ambient := scene.ColorWhite
	fogCol := scene.Color{}
	fogStart, fogEnd := float32(1e9), float32(1e9+1)
	if zone != nil {
		ambient = zone.AmbientColor
		fogCol = zone.FogColor
		fogStart, fogEnd = zone.FogStart, zone.FogEnd
	}

	rl.SetShaderValue(r.shader, r.viewPosLoc, []float32{camPos.X(), camPos.Y(), camPos.Z()}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.shader, r.lightDirLoc, []float32{lightDir.X(), lightDir.Y(), lightDir.Z()}, rl.ShaderUniformVec3)
	rl.SetShaderValue(r.shader, r.lightColLoc, []float32{lightCol.R, lightCol.G, lightCol.B, lightCol.A}, rl.ShaderUniformVec4)
	rl.SetShaderValue(r.shader, r.ambientLoc, []float32{ambient.R, ambient.G, ambient.B, ambient.A}, rl.ShaderUniformVec4)
	rl.SetShaderValue(r.shader, r.fogColorLoc, []float32{fogCol.R, fogCol.G, fogCol.B, fogCol.A}, rl.ShaderUniformVec4)
	rl.SetShaderValue(r.shader, r.fogStartLoc, []float32{fogStart}, rl.ShaderUniformFloat)
	rl.SetShaderValue(r.shader, r.fogEndLoc, []float32{fogEnd}, rl.ShaderUniformFloat)
}

func (r *Renderer) drawStaticModel(sm *scene.StaticModel, pos mgl32.Vec3) {
	model := r.cache.GetModel(sm.Model)
	mat := r.cache.GetMaterial(sm.Material)

	if model.MaterialCount > 0 {
		materials := unsafe.Slice(model.Materials, model.MaterialCount)
		if tex, ok := r.cache.GetTexture(mat.Texture); ok {
			rl.SetMaterialTexture(&materials[0], rl.MapDiffuse, tex)
		}
		if r.shaderLoaded {
			materials[0].Shader = r.shader
		}
	}

	rl.DrawModel(model, toRLVec(pos), 1.0, toRLColor(mat.Modulate(sm.Tint)))
}

// Unload libera o shader.
func (r *Renderer) Unload() {
	if r.shaderLoaded {
		rl.UnloadShader(r.shader)
		r.shaderLoaded = false
	}
}
