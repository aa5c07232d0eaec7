package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do BlockScene.
type Config struct {
	// Janela (parâmetros do engine)
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	Headless     bool   `json:"headless"`
	Sound        bool   `json:"sound"`
	TargetFPS    int32  `json:"target_fps"`
	LogName      string `json:"log_name"`

	// Recursos e mapa
	ResourceDir string `json:"resource_dir"` // Raiz de Models/, Materials/, Maps/
	MapFile     string `json:"map_file"`     // Relativo a ResourceDir
	MapName     string `json:"map_name"`     // Nome do mapa na biblioteca/servidor
	LibraryPath string `json:"library_path"` // Cache local de mapas recebidos (vazio desliga)

	// Servidor de mapas (opcional)
	ServerURL string `json:"server_url"`

	// Câmera
	CameraSpeed       float32 `json:"camera_speed"`       // Unidades do mundo por segundo
	CameraSensitivity float32 `json:"camera_sensitivity"` // Graus por pixel
	FOV               float32 `json:"fov"`
	FarClip           float32 `json:"far_clip"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "BlockScene",
		Fullscreen:   false,
		Headless:     false,
		Sound:        false,
		TargetFPS:    60,
		LogName:      filepath.Join("logs", "BlockScene.log"),

		ResourceDir: "Data",
		MapFile:     "Maps/file.json",
		MapName:     "file",
		LibraryPath: filepath.Join("saves", "maps.db"),

		ServerURL: "",

		CameraSpeed:       20.0,
		CameraSensitivity: 0.1,
		FOV:               45.0,
		FarClip:           1000.0,

		ShowDebugInfo: false,
		ShowGrid:      false,
	}
}

// Path retorna o caminho do arquivo de configuração, ao lado do executável.
func Path() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do arquivo ao lado do executável.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	return LoadFrom(Path())
}

// LoadFrom carrega as configurações de um arquivo JSON específico.
// Campos ausentes mantêm o valor padrão; JSON inválido descarta o arquivo inteiro.
func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MapPath retorna o caminho completo do arquivo de mapa.
func (c *Config) MapPath() string {
	return filepath.Join(c.ResourceDir, c.MapFile)
}

// Overrides são ajustes da linha de comando. Valem só para a execução atual
// e nunca vão para o config.json. Zero ou false mantém o valor do arquivo.
type Overrides struct {
	MapFile    string
	ServerURL  string
	MapName    string
	Fullscreen bool
	Headless   bool
	Debug      bool
	Width      int32
	Height     int32
}

// WithOverrides retorna uma cópia da configuração com os ajustes aplicados.
// A configuração original não é alterada.
func (c *Config) WithOverrides(o Overrides) *Config {
	out := *c
	if o.MapFile != "" {
		out.MapFile = o.MapFile
	}
	if o.ServerURL != "" {
		out.ServerURL = o.ServerURL
	}
	if o.MapName != "" {
		out.MapName = o.MapName
	}
	if o.Fullscreen {
		out.Fullscreen = true
	}
	if o.Headless {
		out.Headless = true
	}
	if o.Debug {
		out.ShowDebugInfo = true
	}
	if o.Width > 0 {
		out.WindowWidth = o.Width
	}
	if o.Height > 0 {
		out.WindowHeight = o.Height
	}
	return &out
}
