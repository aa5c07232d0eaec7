package main

import (
	"flag"
	"log"
	"runtime"

	"BlockScene/cliente/internal/app"
	"BlockScene/shared/config"
)

func main() {
	// IMPORTANTE: Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	mapFile := flag.String("map", "", "Arquivo de mapa relativo ao diretório de recursos (padrão: Maps/file.json)")
	serverURL := flag.String("server", "", "URL do servidor de mapas (ex: ws://localhost:8080/ws)")
	mapName := flag.String("name", "", "Nome do mapa pedido ao servidor")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	headless := flag.Bool("headless", false, "Rodar sem janela visível")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║          BlockScene v0.1.0           ║")
	log.Println("║   Cena de blocos em primeira pessoa  ║")
	log.Println("╚══════════════════════════════════════╝")

	// Flags valem só para esta execução; o config.json salvo fica intacto
	overrides := config.Overrides{
		MapFile:    *mapFile,
		ServerURL:  *serverURL,
		MapName:    *mapName,
		Fullscreen: *fullscreen,
		Headless:   *headless,
		Debug:      *debug,
		Width:      int32(*width),
		Height:     int32(*height),
	}

	// Criar e rodar a aplicação
	application := app.New(config.Load(), overrides)
	application.Run()
}
