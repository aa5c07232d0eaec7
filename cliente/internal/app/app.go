package app

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	"BlockScene/cliente/internal/assets"
	"BlockScene/cliente/internal/camera"
	"BlockScene/cliente/internal/render"
	"BlockScene/cliente/internal/scene"
	"BlockScene/cliente/internal/world"
	"BlockScene/shared/config"
	"BlockScene/shared/mapdata"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App é a aplicação principal do BlockScene.
type App struct {
	Config *config.Config // Efetiva: arquivo + flags da linha de comando

	// Como foi lido do disco. Só as alternâncias feitas em jogo entram
	// aqui; é o que Stop grava de volta.
	saved      *config.Config
	configPath string

	// Cena e câmera
	Scene *scene.Scene
	Rig   *world.Rig
	Cam   *camera.FirstPersonController
	input camera.Input

	cache    *assets.Cache
	renderer *render.Renderer
	library  *mapdata.Library

	// Assinantes do evento de update, chamados a cada frame com o timeStep
	updateHandlers []func(timeStep float32)

	// Parâmetros do engine aplicados em Setup
	windowFlags uint32
	logFile     *os.File

	// Informações de debug
	frameCount int
	mapSource  string
}

// New cria uma nova instância da aplicação a partir da configuração
// carregada e dos ajustes da linha de comando.
func New(cfg *config.Config, overrides config.Overrides) *App {
	eff := cfg.WithOverrides(overrides)

	cam := camera.New()
	cam.MoveSpeed = eff.CameraSpeed
	cam.MouseSensitivity = eff.CameraSensitivity

	return &App{
		Config:     eff,
		saved:      cfg,
		configPath: config.Path(),
		Cam:        cam,
	}
}

// Setup aplica os parâmetros do engine antes da janela existir.
func (a *App) Setup() {
	if a.Config.LogName != "" {
		if err := os.MkdirAll(filepath.Dir(a.Config.LogName), 0755); err == nil {
			f, err := os.OpenFile(a.Config.LogName, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err == nil {
				a.logFile = f
				log.SetOutput(io.MultiWriter(os.Stdout, f))
			}
		}
	}

	a.windowFlags = rl.FlagMsaa4xHint | rl.FlagWindowResizable
	if a.Config.Fullscreen {
		a.windowFlags |= rl.FlagFullscreenMode
	}
	if a.Config.Headless {
		a.windowFlags |= rl.FlagWindowHidden
	}
	rl.SetConfigFlags(a.windowFlags)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	log.Printf("[BlockScene] Parâmetros: %dx%d fullscreen=%v headless=%v som=%v log=%s",
		a.Config.WindowWidth, a.Config.WindowHeight,
		a.Config.Fullscreen, a.Config.Headless, a.Config.Sound, a.Config.LogName)
}

// Start monta a cena, a viewport e as assinaturas de eventos. A janela já existe.
func (a *App) Start() {
	if a.Config.ServerURL != "" && a.Config.LibraryPath != "" {
		lib, err := mapdata.Open(a.Config.LibraryPath)
		if err != nil {
			log.Printf("[Biblioteca] AVISO: cache local indisponível: %v", err)
		} else {
			a.library = lib
		}
	}

	a.cache = assets.NewCache(a.Config.ResourceDir)
	a.renderer = render.NewRenderer(a.cache)
	a.input = raylibInput{}

	a.CreateScene()
	a.SetupViewport()
	a.SubscribeToEvents()
}

// CreateScene carrega o mapa e cria luz, zona, blocos e câmera.
func (a *App) CreateScene() {
	doc := a.loadMap(context.Background())

	a.Scene = scene.New()
	a.Rig = world.CreateScene(a.Scene, doc, a.Config.FarClip)
	if a.Config.FOV > 0 {
		a.Rig.Camera.Camera.FOV = a.Config.FOV
	}

	log.Printf("[Cena] %d blocos criados (origem: %s)", len(a.Rig.Boxes), a.mapSource)
}

// SetupViewport registra a viewport 0 com a cena e o nó da câmera.
func (a *App) SetupViewport() {
	a.renderer.SetViewport(0, &render.Viewport{Scene: a.Scene, Camera: a.Rig.Camera})
	a.renderer.ShowGrid = a.Config.ShowGrid
}

// SubscribeToEvents liga HandleUpdate ao evento de update.
func (a *App) SubscribeToEvents() {
	a.SubscribeToUpdate(a.HandleUpdate)
}

// SubscribeToUpdate registra uma função chamada a cada frame.
func (a *App) SubscribeToUpdate(fn func(timeStep float32)) {
	a.updateHandlers = append(a.updateHandlers, fn)
}

// HandleUpdate trata o evento de update do frame.
func (a *App) HandleUpdate(timeStep float32) {
	a.MoveCamera(timeStep)
}

// update dispara o evento de update para todos os assinantes.
func (a *App) update(timeStep float32) {
	a.frameCount++
	for _, fn := range a.updateHandlers {
		fn(timeStep)
	}
}

// Stop libera recursos. Chamado com a janela ainda aberta.
func (a *App) Stop() {
	log.Println("[App] Finalizando aplicação...")

	if a.cache != nil {
		a.cache.Dump()
	}
	if a.renderer != nil {
		a.renderer.Unload()
	}
	if a.cache != nil {
		a.cache.Unload()
	}

	if a.library != nil {
		if err := a.library.Close(); err != nil {
			log.Printf("[Biblioteca] Erro ao fechar: %v", err)
		}
		a.library = nil
	}

	if err := a.saved.SaveTo(a.configPath); err != nil {
		log.Printf("[BlockScene] Erro ao salvar configurações: %v", err)
	}

	if a.logFile != nil {
		log.SetOutput(os.Stdout)
		a.logFile.Close()
		a.logFile = nil
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	a.Setup()

	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	defer rl.CloseWindow()

	if a.Config.Sound {
		rl.InitAudioDevice()
		defer rl.CloseAudioDevice()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(rl.KeyEscape)
	if !a.Config.Headless {
		rl.DisableCursor() // Mouse-look: cursor preso na janela
	}

	log.Println("[BlockScene] Janela inicializada com sucesso")

	a.Start()

	for !rl.WindowShouldClose() {
		a.handleDebugKeys()
		a.update(rl.GetFrameTime())
		a.draw()
	}

	a.Stop()
}
