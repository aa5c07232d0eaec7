package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	if a.renderer != nil {
		a.renderer.Draw()
	}
	a.drawHUD()

	rl.EndDrawing()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(300)
	height := int32(150)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	if a.Rig != nil && a.Rig.Camera != nil {
		p := a.Rig.Camera.WorldPosition()
		rl.DrawText(fmt.Sprintf("Posição: (%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z()), x+10, y+45, 14, rl.White)
	}
	rl.DrawText(fmt.Sprintf("Yaw: %.1f  Pitch: %.1f", a.Cam.Yaw, a.Cam.Pitch), x+10, y+65, 14, rl.LightGray)

	blocks := 0
	if a.Rig != nil {
		blocks = len(a.Rig.Boxes)
	}
	rl.DrawText(fmt.Sprintf("Blocos: %d", blocks), x+10, y+85, 14, rl.LightGray)
	if a.renderer != nil {
		rl.DrawText(fmt.Sprintf("Desenhados: %d  Cortados: %d", a.renderer.DrawnNodes, a.renderer.CulledNodes), x+10, y+105, 14, rl.LightGray)
	}
	rl.DrawText(a.mapSource, x+10, y+125, 12, rl.Gray)
}
