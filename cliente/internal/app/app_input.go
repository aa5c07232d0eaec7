package app

import (
	"log"

	"BlockScene/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibInput lê mouse e teclado do raylib.
type raylibInput struct{}

var keyMap = map[camera.Key]int32{
	camera.KeyW: rl.KeyW,
	camera.KeyS: rl.KeyS,
	camera.KeyA: rl.KeyA,
	camera.KeyD: rl.KeyD,
}

func (raylibInput) MouseMove() (dx, dy float32) {
	d := rl.GetMouseDelta()
	return d.X, d.Y
}

func (raylibInput) IsKeyDown(k camera.Key) bool {
	return rl.IsKeyDown(keyMap[k])
}

// MoveCamera aplica mouse-look e WASD ao nó da câmera.
func (a *App) MoveCamera(timeStep float32) {
	if a.Rig == nil || a.Rig.Camera == nil || a.input == nil {
		return
	}
	a.Cam.Update(a.Rig.Camera, a.input, timeStep)
}

// handleDebugKeys processa as teclas de debug.
func (a *App) handleDebugKeys() {
	if rl.IsKeyPressed(rl.KeyF3) {
		a.toggleDebugInfo()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.toggleGrid()
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
		a.setFullscreen(rl.IsWindowFullscreen())
	}
}

// As alternâncias em jogo valem para a execução e também são salvas.

func (a *App) toggleDebugInfo() {
	a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	a.saved.ShowDebugInfo = a.Config.ShowDebugInfo
}

func (a *App) toggleGrid() {
	a.Config.ShowGrid = !a.Config.ShowGrid
	a.saved.ShowGrid = a.Config.ShowGrid
	if a.renderer != nil {
		a.renderer.ShowGrid = a.Config.ShowGrid
	}
}

func (a *App) setFullscreen(on bool) {
	a.Config.Fullscreen = on
	a.saved.Fullscreen = on
	log.Printf("[BlockScene] Tela cheia: %v", on)
}
