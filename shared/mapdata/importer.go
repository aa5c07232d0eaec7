package mapdata

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"BlockScene/shared/mapfile"
	"BlockScene/shared/vox"
)

// LoadAny lê um mapa em qualquer formato suportado (.json ou .vox).
func LoadAny(path string) (*mapfile.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return mapfile.Load(path)
	case ".vox":
		f, err := vox.Load(path)
		if err != nil {
			return nil, err
		}
		return f.ToDocument(), nil
	}
	return nil, fmt.Errorf("formato de mapa não suportado: %s", path)
}

// MapName deriva o nome do mapa do nome do arquivo, sem extensão.
func MapName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ImportDir importa todos os .json e .vox de um diretório para a biblioteca.
// Arquivos sem nenhum bloco legível são registrados e pulados; um JSON
// truncado no meio entra com os blocos lidos até o erro. Retorna quantos
// foram importados.
func (l *Library) ImportDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("falha ao listar %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".json" || ext == ".vox" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	count := 0
	for _, p := range paths {
		doc, err := LoadAny(p)
		if err != nil {
			if doc == nil || len(doc.Blocks) == 0 {
				log.Printf("[Biblioteca] AVISO: %s ignorado: %v", p, err)
				continue
			}
			// Mesma regra do cliente: os blocos lidos antes do erro valem
			log.Printf("[Biblioteca] AVISO: %s parcial (%d blocos lidos): %v", p, len(doc.Blocks), err)
		}
		name := MapName(p)
		if err := l.SaveMap(name, doc); err != nil {
			return count, err
		}
		log.Printf("[Biblioteca] Mapa importado: %s (%d blocos)", name, len(doc.Blocks))
		count++
	}
	return count, nil
}
