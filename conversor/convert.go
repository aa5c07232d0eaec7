package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"BlockScene/shared/mapdata"
	"BlockScene/shared/vox"
)

// singleName é o nome fixo de saída no modo -single.
const singleName = "file"

// converter transforma arquivos .vox em mapas JSON.
type converter struct {
	outDir  string
	single  bool
	library *mapdata.Library // opcional
}

// findVox lista os .vox de um diretório, ou o próprio arquivo se in for um .vox.
func findVox(in string) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{in}, nil
	}

	entries, err := os.ReadDir(in)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".vox") {
			paths = append(paths, filepath.Join(in, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// convert converte um .vox e devolve o caminho do JSON gerado.
func (c *converter) convert(path string) (string, error) {
	f, err := vox.Load(path)
	if err != nil {
		return "", err
	}
	doc := f.ToDocument()

	name := mapdata.MapName(path)
	if c.single {
		name = singleName
	}

	if err := os.MkdirAll(c.outDir, 0755); err != nil {
		return "", fmt.Errorf("falha ao criar %s: %w", c.outDir, err)
	}
	out := filepath.Join(c.outDir, name+".json")
	if err := doc.Save(out); err != nil {
		return "", fmt.Errorf("falha ao gravar %s: %w", out, err)
	}

	if c.library != nil {
		if err := c.library.SaveMap(name, doc); err != nil {
			return out, fmt.Errorf("falha ao importar %s: %w", name, err)
		}
	}

	log.Printf("[Conversor] %s -> %s (%d blocos, %d cores)", path, out, len(doc.Blocks), len(doc.Colors))
	return out, nil
}

// run converte todos os arquivos encontrados. Falhas individuais são
// registradas e contadas; a conversão continua com os demais.
func (c *converter) run(in string) (converted, failed int, err error) {
	paths, err := findVox(in)
	if err != nil {
		return 0, 0, fmt.Errorf("falha ao listar %s: %w", in, err)
	}
	if c.single && len(paths) > 1 {
		log.Printf("[Conversor] AVISO: -single com %d arquivos; o último sobrescreve os anteriores", len(paths))
	}

	for _, p := range paths {
		if _, err := c.convert(p); err != nil {
			log.Printf("[Conversor] ERRO em %s: %v", p, err)
			failed++
			continue
		}
		converted++
	}
	return converted, failed, nil
}
