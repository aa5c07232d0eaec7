package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"BlockScene/shared/mapdata"
	"BlockScene/shared/mapfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeVox grava um .vox mínimo com os voxels dados (x, y, z, cor) e paleta padrão.
func writeVox(t *testing.T, path string, voxels ...[4]byte) {
	t.Helper()

	var xyzi bytes.Buffer
	binary.Write(&xyzi, binary.LittleEndian, int32(len(voxels)))
	for _, v := range voxels {
		xyzi.Write(v[:])
	}

	var body bytes.Buffer
	body.WriteString("SIZE")
	binary.Write(&body, binary.LittleEndian, [2]int32{12, 0})
	binary.Write(&body, binary.LittleEndian, [3]int32{8, 8, 8})
	body.WriteString("XYZI")
	binary.Write(&body, binary.LittleEndian, [2]int32{int32(xyzi.Len()), 0})
	body.Write(xyzi.Bytes())

	var buf bytes.Buffer
	buf.WriteString("VOX ")
	binary.Write(&buf, binary.LittleEndian, int32(150))
	buf.WriteString("MAIN")
	binary.Write(&buf, binary.LittleEndian, [2]int32{0, int32(body.Len())})
	buf.Write(body.Bytes())

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestConvertDirectory(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "Maps")

	writeVox(t, filepath.Join(in, "torre.vox"), [4]byte{0, 0, 0, 7}, [4]byte{0, 0, 1, 9}, [4]byte{0, 0, 2, 7})
	writeVox(t, filepath.Join(in, "poco.vox"), [4]byte{1, 1, 1, 3})
	require.NoError(t, os.WriteFile(filepath.Join(in, "ruim.vox"), []byte("nada"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "leia.txt"), []byte("x"), 0644))

	c := &converter{outDir: out}
	converted, failed, err := c.run(in)
	require.NoError(t, err)
	assert.Equal(t, 2, converted)
	assert.Equal(t, 1, failed)

	doc, err := mapfile.Load(filepath.Join(out, "torre.json"))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 3)
	require.Len(t, doc.Colors, 2)

	// Cores deduplicadas na ordem em que aparecem
	assert.Equal(t, 0, *doc.Blocks[0].C)
	assert.Equal(t, 1, *doc.Blocks[1].C)
	assert.Equal(t, 0, *doc.Blocks[2].C)

	assert.FileExists(t, filepath.Join(out, "poco.json"))
}

func TestConvertSingle(t *testing.T) {
	in := filepath.Join(t.TempDir(), "castelo.vox")
	out := t.TempDir()
	writeVox(t, in, [4]byte{2, 3, 4, 1})

	c := &converter{outDir: out, single: true}
	path, err := c.convert(in)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "file.json"), path)

	doc, err := mapfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Blocks[0].X)
	assert.Equal(t, 3, doc.Blocks[0].Y)
	assert.Equal(t, 4, doc.Blocks[0].Z)
}

func TestConvertImportsIntoLibrary(t *testing.T) {
	in := t.TempDir()
	writeVox(t, filepath.Join(in, "aldeia.vox"), [4]byte{0, 0, 0, 1}, [4]byte{1, 0, 0, 1})

	lib, err := mapdata.Open(filepath.Join(t.TempDir(), "maps.db"))
	require.NoError(t, err)
	defer lib.Close()

	c := &converter{outDir: t.TempDir(), library: lib}
	_, _, err = c.run(in)
	require.NoError(t, err)

	doc, err := lib.LoadMap("aldeia")
	require.NoError(t, err)
	assert.Len(t, doc.Blocks, 2)
	assert.Len(t, doc.Colors, 1)
}

func TestRunMissingInput(t *testing.T) {
	c := &converter{outDir: t.TempDir()}
	_, _, err := c.run(filepath.Join(t.TempDir(), "nao-existe"))
	assert.Error(t, err)
}
