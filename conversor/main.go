package main

import (
	"flag"
	"log"
	"os"

	"BlockScene/shared/mapdata"
)

func main() {
	in := flag.String("in", "maps", "Arquivo .vox ou diretório com arquivos .vox")
	out := flag.String("out", "Data/Maps", "Diretório de saída dos mapas JSON")
	dbPath := flag.String("db", "", "Banco SQLite da biblioteca para importar os mapas (opcional)")
	single := flag.Bool("single", false, "Gravar sempre em file.json")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║     BlockScene Conversor .vox        ║")
	log.Println("╚══════════════════════════════════════╝")

	c := &converter{outDir: *out, single: *single}

	if *dbPath != "" {
		lib, err := mapdata.Open(*dbPath)
		if err != nil {
			log.Fatalf("Erro ao abrir SQLite: %v", err)
		}
		c.library = lib
	}

	converted, failed, err := c.run(*in)
	if c.library != nil {
		c.library.Close()
	}
	if err != nil {
		log.Fatalf("Erro: %v", err)
	}

	log.Printf("Conversão concluída: %d convertidos, %d com erro", converted, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
