package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// target é um executável do projeto.
type target struct {
	name    string // Usado em -only
	label   string
	pkg     string // Pacote relativo à raiz do módulo
	output  string // Sem extensão
	cgo     bool
	ldflags func(goos string) string
}

func stripped(string) string { return "-s -w" }

var targets = []target{
	{
		name: "servidor", label: "Servidor de mapas", pkg: "./servidor", output: "servidor/server", cgo: true,
		ldflags: func(goos string) string {
			if goos == "darwin" {
				return "-s -w" // macOS não tem libc estática
			}
			return "-extldflags=-static -s -w"
		},
	},
	{
		name: "cliente", label: "Cliente 3D", pkg: "./cliente", output: "cliente/client", cgo: true,
		ldflags: func(goos string) string {
			if goos == "windows" {
				return "-extldflags=-static -s -w -H=windowsgui"
			}
			return "-s -w"
		},
	},
	{name: "conversor", label: "Conversor .vox", pkg: "./conversor", output: "conversor/conversor", cgo: true, ldflags: stripped},
	{name: "launcher", label: "Launcher", pkg: "./launcher", output: "BlockScene", cgo: false, ldflags: stripped},
}

func main() {
	only := flag.String("only", "", "Compilar só estes alvos, separados por vírgula (ex: cliente,servidor)")
	pause := flag.Bool("pause", runtime.GOOS == "windows", "Esperar Enter antes de sair")
	flag.Parse()

	fmt.Println(ColorCyan + "── BlockScene · build dos executáveis ──" + ColorReset)

	selected, err := selectTargets(targets, *only)
	if err != nil {
		fatal(err, *pause)
	}

	env := buildEnv(runtime.GOOS, os.Environ())
	start := time.Now()

	for i, t := range selected {
		fmt.Printf(ColorYellow+"\n(%d/%d) %s"+ColorReset+"\n", i+1, len(selected), t.label)
		out, err := build(t, runtime.GOOS, env)
		if err != nil {
			fatal(err, *pause)
		}
		fmt.Printf(ColorGreen+"  ok -> %s"+ColorReset+"\n", out)
	}

	fmt.Printf(ColorCyan+"\n%d alvo(s) em %v."+ColorReset+"\n", len(selected), time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Para abrir a cena: %s"+ColorReset+"\n", exeName("BlockScene", runtime.GOOS))

	if *pause {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

// selectTargets filtra os alvos pela lista de -only. Lista vazia seleciona todos.
func selectTargets(all []target, only string) ([]target, error) {
	if strings.TrimSpace(only) == "" {
		return all, nil
	}

	byName := make(map[string]target, len(all))
	for _, t := range all {
		byName[t.name] = t
	}

	var out []target
	for _, n := range strings.Split(only, ",") {
		n = strings.TrimSpace(n)
		t, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("alvo desconhecido: %q", n)
		}
		out = append(out, t)
	}
	return out, nil
}

// buildEnv prepara o ambiente do compilador. No Windows, o gcc vem do MSYS2.
func buildEnv(goos string, base []string) []string {
	env := append([]string(nil), base...)
	if goos != "windows" {
		return env
	}

	const msysPath = `C:\msys64\mingw64\bin`
	for i, kv := range env {
		if strings.HasPrefix(strings.ToUpper(kv), "PATH=") && !strings.Contains(kv, msysPath) {
			env[i] = kv[:5] + msysPath + ";" + kv[5:]
		}
	}
	return append(env, "CC=gcc")
}

// buildArgs monta a linha do go build para o alvo.
func buildArgs(t target, goos string) []string {
	return []string{"build", "-ldflags", t.ldflags(goos), "-o", exeName(t.output, goos), t.pkg}
}

func build(t target, goos string, env []string) (string, error) {
	cgo := "CGO_ENABLED=0"
	if t.cgo {
		cgo = "CGO_ENABLED=1"
	}

	args := buildArgs(t, goos)
	cmd := exec.Command("go", args...)
	cmd.Env = append(env, cgo)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("go build %s: %w", t.pkg, err)
	}
	return args[len(args)-2], nil
}

// exeName acrescenta a extensão de executável da plataforma.
func exeName(base, goos string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}

func fatal(err error, pause bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO] %v"+ColorReset+"\n", err)
	if pause {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}
