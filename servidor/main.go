package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"BlockScene/servidor/internal/mapserver"
	"BlockScene/shared/mapdata"
)

func main() {
	// Garante que o diretório de trabalho seja o do executável
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		os.Chdir(exeDir)
	}

	log.SetFlags(log.Ltime | log.Lshortfile)

	if err := os.MkdirAll("tmp", 0755); err == nil {
		logFile, err := os.OpenFile("tmp/server.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer logFile.Close()
			// MultiWriter para logar no console e no arquivo simultaneamente
			log.SetOutput(io.MultiWriter(os.Stdout, logFile))
		}
	}

	addr := flag.String("addr", ":8080", "Endereço de escuta do servidor")
	dbPath := flag.String("db", "saves/maps.db", "Banco SQLite da biblioteca de mapas")
	importDir := flag.String("import", "", "Diretório com mapas (.json/.vox) para importar na partida")
	flag.Parse()

	if p := os.Getenv("PORT"); p != "" {
		*addr = ":" + p
	}

	log.Println("╔══════════════════════════════════════╗")
	log.Println("║      BlockScene SERVER v0.1.0        ║")
	log.Println("╚══════════════════════════════════════╝")

	lib, err := mapdata.Open(*dbPath)
	if err != nil {
		log.Fatalf("Erro ao abrir SQLite: %v", err)
	}
	defer lib.Close()

	if *importDir != "" {
		n, err := lib.ImportDir(*importDir)
		if err != nil {
			log.Printf("[Startup] Aviso: importação incompleta: %v", err)
		}
		log.Printf("[Startup] %d mapas importados de %s", n, *importDir)
	}

	if infos, err := lib.ListMaps(); err == nil {
		log.Printf("[Startup] Biblioteca: %d mapas disponíveis", len(infos))
		for _, info := range infos {
			log.Printf("  → %s (%d blocos, %d cores)", info.Name, info.BlockCount, info.ColorCount)
		}
	}

	srv := mapserver.New(lib)
	mux := http.NewServeMux()
	mux.Handle("/ws", srv)

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Printf("╔══════════════════════════════════════════════════════════════╗")
		log.Printf("║ ERRO CRÍTICO: Não foi possível abrir a porta %s.      ║", *addr)
		log.Printf("║ Provavelmente há outra instância do servidor rodando.        ║")
		log.Printf("╚══════════════════════════════════════════════════════════════╝")
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	httpServer := &http.Server{Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("[Shutdown] Encerrando servidor...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Hub.CloseAll()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("Servidor BlockScene iniciado em %s", listener.Addr())
	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Erro fatal no servidor HTTP: %v", err)
	}
}
