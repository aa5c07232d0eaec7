// Package mapfile lê e escreve o formato JSON de mapas de blocos.
//
// Formato:
//
//	{
//	  "blocks": [{"x": 0, "y": 0, "z": 0, "c": 0}, ...],
//	  "colors": [{"r": 255, "g": 0, "b": 0, "a": 255}, ...]
//	}
//
// "c" e "colors" são opcionais. Campos numéricos ausentes valem 0.
package mapfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// BlockDescriptor é a posição de um bloco na grade do mapa.
type BlockDescriptor struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
	// C é o índice na paleta Colors. Nil quando o bloco não tem cor própria.
	C *int `json:"c,omitempty"`
}

// RGBA é uma cor da paleta do mapa.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Document é o conteúdo completo de um arquivo de mapa.
type Document struct {
	Blocks []BlockDescriptor `json:"blocks"`
	Colors []RGBA            `json:"colors,omitempty"`
}

// ColorOf retorna a cor da paleta de um bloco, se houver.
func (d *Document) ColorOf(b BlockDescriptor) (RGBA, bool) {
	if b.C == nil || *b.C < 0 || *b.C >= len(d.Colors) {
		return RGBA{}, false
	}
	return d.Colors[*b.C], true
}

// Block cria um descritor sem cor.
func Block(x, y, z int) BlockDescriptor {
	return BlockDescriptor{X: x, Y: y, Z: z}
}

// ColoredBlock cria um descritor com índice de paleta.
func ColoredBlock(x, y, z, c int) BlockDescriptor {
	return BlockDescriptor{X: x, Y: y, Z: z, C: &c}
}

// ErrNoBlocks indica um documento sem o array "blocks".
var ErrNoBlocks = errors.New("mapa sem array \"blocks\"")

// rawDocument adia a decodificação dos blocos para que um elemento
// malformado não descarte os anteriores.
type rawDocument struct {
	Blocks []json.RawMessage `json:"blocks"`
	Colors []RGBA            `json:"colors"`
}

// Decode lê um documento de mapa.
//
// Em caso de erro num elemento de "blocks", retorna o documento com os blocos
// lidos até ali junto com o erro. Quem chama decide se aceita a cena parcial.
func Decode(r io.Reader) (*Document, error) {
	var raw rawDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return &Document{}, fmt.Errorf("falha ao parsear mapa: %w", err)
	}
	if raw.Blocks == nil {
		return &Document{Colors: raw.Colors}, ErrNoBlocks
	}

	doc := &Document{
		Blocks: make([]BlockDescriptor, 0, len(raw.Blocks)),
		Colors: raw.Colors,
	}
	for i, msg := range raw.Blocks {
		var b BlockDescriptor
		if err := json.Unmarshal(msg, &b); err != nil {
			return doc, fmt.Errorf("bloco %d malformado: %w", i, err)
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc, nil
}

// Parse decodifica um documento a partir de bytes.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Load lê um arquivo de mapa do disco.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Document{}, fmt.Errorf("falha ao abrir mapa %q: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode escreve o documento como JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(d)
}

// Save grava o documento num arquivo.
func (d *Document) Save(path string) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("falha ao serializar mapa: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
