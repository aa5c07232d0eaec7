// Package vox lê arquivos MagicaVoxel (.vox) e os converte para o formato de
// mapa de blocos.
//
// Referência do formato: chunks RIFF-like com id de 4 bytes, tamanho do
// conteúdo e tamanho dos filhos (little-endian). Só SIZE, XYZI e RGBA são
// interpretados; os demais chunks (nTRN, MATL, LAYR...) são pulados.
package vox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"BlockScene/shared/mapfile"
)

const magic = "VOX "

// Voxel é uma célula preenchida do modelo. ColorIndex vai de 1 a 255.
type Voxel struct {
	X, Y, Z    uint8
	ColorIndex uint8
}

// Size é a dimensão de um modelo.
type Size struct {
	X, Y, Z int32
}

// Model é um modelo (SIZE + XYZI) dentro do arquivo.
type Model struct {
	Size   Size
	Voxels []Voxel
}

// File é o conteúdo interpretado de um .vox.
type File struct {
	Version int32
	Models  []Model
	// Palette[i] é a cor do índice i. Palette[0] nunca é usado por voxels.
	Palette [256]mapfile.RGBA
	// HasPalette indica que o arquivo trouxe um chunk RGBA.
	HasPalette bool
}

var (
	ErrBadMagic  = errors.New("arquivo não é MagicaVoxel (magic inválido)")
	ErrTruncated = errors.New("arquivo .vox truncado")
)

type chunkHeader struct {
	ID           [4]byte
	ContentSize  int32
	ChildrenSize int32
}

// Decode lê um arquivo .vox completo.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler .vox: %w", err)
	}
	return Parse(data)
}

// Parse interpreta o conteúdo de um .vox em memória.
func Parse(data []byte) (*File, error) {
	if len(data) < 8 || string(data[:4]) != magic {
		return nil, ErrBadMagic
	}

	f := &File{
		Version: int32(binary.LittleEndian.Uint32(data[4:8])),
		Palette: DefaultPalette(),
	}

	rd := bytes.NewReader(data[8:])
	var main chunkHeader
	if err := binary.Read(rd, binary.LittleEndian, &main); err != nil {
		return nil, ErrTruncated
	}
	if string(main.ID[:]) != "MAIN" {
		return nil, fmt.Errorf("chunk raiz inesperado %q", main.ID[:])
	}
	if _, err := rd.Seek(int64(main.ContentSize), io.SeekCurrent); err != nil {
		return nil, ErrTruncated
	}

	var pending *Size
	for rd.Len() > 0 {
		var h chunkHeader
		if err := binary.Read(rd, binary.LittleEndian, &h); err != nil {
			return nil, ErrTruncated
		}
		if h.ContentSize < 0 || int(h.ContentSize) > rd.Len() {
			return nil, ErrTruncated
		}
		content := make([]byte, h.ContentSize)
		if _, err := io.ReadFull(rd, content); err != nil {
			return nil, ErrTruncated
		}

		switch string(h.ID[:]) {
		case "SIZE":
			var s Size
			if err := binary.Read(bytes.NewReader(content), binary.LittleEndian, &s); err != nil {
				return nil, ErrTruncated
			}
			pending = &s
		case "XYZI":
			voxels, err := parseXYZI(content)
			if err != nil {
				return nil, err
			}
			m := Model{Voxels: voxels}
			if pending != nil {
				m.Size = *pending
				pending = nil
			}
			f.Models = append(f.Models, m)
		case "RGBA":
			if len(content) < 256*4 {
				return nil, ErrTruncated
			}
			// A entrada i do chunk corresponde ao índice de cor i+1.
			for i := 0; i < 255; i++ {
				f.Palette[i+1] = mapfile.RGBA{
					R: content[i*4],
					G: content[i*4+1],
					B: content[i*4+2],
					A: content[i*4+3],
				}
			}
			f.HasPalette = true
		}

		// Filhos de chunks não-MAIN não carregam dados que usamos.
		if h.ChildrenSize > 0 {
			if _, err := rd.Seek(int64(h.ChildrenSize), io.SeekCurrent); err != nil {
				return nil, ErrTruncated
			}
		}
	}

	return f, nil
}

func parseXYZI(content []byte) ([]Voxel, error) {
	if len(content) < 4 {
		return nil, ErrTruncated
	}
	n := int(binary.LittleEndian.Uint32(content[:4]))
	if n < 0 || len(content) < 4+n*4 {
		return nil, ErrTruncated
	}
	voxels := make([]Voxel, n)
	for i := 0; i < n; i++ {
		o := 4 + i*4
		voxels[i] = Voxel{X: content[o], Y: content[o+1], Z: content[o+2], ColorIndex: content[o+3]}
	}
	return voxels, nil
}

// Load lê um .vox do disco.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir %q: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// ToDocument converte todos os voxels do arquivo em blocos do mapa.
// Cada cor distinta entra na paleta do documento na ordem em que aparece;
// o campo c de cada bloco é o índice nessa paleta compacta.
func (f *File) ToDocument() *mapfile.Document {
	doc := &mapfile.Document{Blocks: make([]mapfile.BlockDescriptor, 0)}
	seen := make(map[uint8]int)

	for _, m := range f.Models {
		for _, v := range m.Voxels {
			idx, ok := seen[v.ColorIndex]
			if !ok {
				idx = len(doc.Colors)
				seen[v.ColorIndex] = idx
				doc.Colors = append(doc.Colors, f.Palette[v.ColorIndex])
			}
			doc.Blocks = append(doc.Blocks, mapfile.ColoredBlock(int(v.X), int(v.Y), int(v.Z), idx))
		}
	}
	return doc
}
