package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "Endereço do servidor de mapas")
	mapName := flag.String("name", "file", "Mapa a abrir")
	flag.Parse()

	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║        BlockScene Launcher           ║")
	fmt.Println("╚══════════════════════════════════════╝")

	// 1. Iniciar o Servidor (importa os mapas de Data/Maps na partida)
	fmt.Println("[1/2] Iniciando Servidor...")
	serverCmd := serverCommand(*addr)
	serverCmd.Dir = "servidor"
	if err := serverCmd.Start(); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}

	// 2. Aguardar o servidor abrir a porta
	fmt.Println("Aguardando inicialização do servidor...")
	if !waitForPort(*addr, 15*time.Second) {
		fmt.Println("AVISO: servidor não respondeu; o cliente usará o mapa local.")
	}

	// 3. Iniciar o Cliente
	fmt.Println("[2/2] Abrindo Cliente...")

	// Caminho absoluto para garantir que o sistema encontre o arquivo
	absClientPath, err := filepath.Abs(exeName("cliente/client"))
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do cliente: %v", err)
	}

	clientCmd := exec.Command(absClientPath, "-server", "ws://"+*addr+"/ws", "-name", *mapName)
	clientCmd.Dir = "cliente" // Diretório de trabalho para carregar recursos

	if err := clientCmd.Start(); err != nil {
		fmt.Printf("ERRO CRÍTICO: Não foi possível executar o cliente em %s\n", absClientPath)
		fmt.Printf("Detalhes: %v\n", err)
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
		return
	}

	fmt.Println("\nSucesso! BlockScene foi iniciado.")
	fmt.Println("O Launcher fechará automaticamente em 2 segundos...")
	time.Sleep(2 * time.Second)
}

// serverCommand abre o servidor numa janela própria no Windows (para ver os logs)
// e em segundo plano nos outros sistemas.
func serverCommand(addr string) *exec.Cmd {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		port = "8080"
	}
	args := []string{"-addr", ":" + port, "-import", filepath.Join("..", "cliente", "Data", "Maps")}

	if runtime.GOOS == "windows" {
		return exec.Command("cmd", append([]string{"/c", "start", "BlockScene SERVER", "server.exe"}, args...)...)
	}
	return exec.Command("./server", args...)
}

// waitForPort tenta conectar até o servidor aceitar ou o tempo acabar.
func waitForPort(addr string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err == nil {
			conn.Close()
			return true
		}
		time.Sleep(250 * time.Millisecond)
	}
	return false
}

func exeName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
