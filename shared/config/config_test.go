package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "nao_existe.json"))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"camera_speed": 35, "map_file": "Maps/outro.json"}`), 0644))

	cfg := LoadFrom(path)
	assert.Equal(t, float32(35), cfg.CameraSpeed)
	assert.Equal(t, "Maps/outro.json", cfg.MapFile)
	assert.Equal(t, float32(0.1), cfg.CameraSensitivity)
	assert.Equal(t, int32(1280), cfg.WindowWidth)
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"camera_speed": 35,`), 0644))

	assert.Equal(t, DefaultConfig(), LoadFrom(path))
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Fullscreen = true
	cfg.ServerURL = "ws://127.0.0.1:8080/ws"

	require.NoError(t, cfg.SaveTo(path))
	assert.Equal(t, cfg, LoadFrom(path))
}

func TestMapPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("Data", "Maps", "file.json"), cfg.MapPath())
}

func TestWithOverridesKeepsBase(t *testing.T) {
	base := DefaultConfig()
	eff := base.WithOverrides(Overrides{
		ServerURL: "ws://localhost:8080/ws",
		MapName:   "castelo",
		Headless:  true,
		Debug:     true,
		Width:     640,
	})

	assert.Equal(t, "ws://localhost:8080/ws", eff.ServerURL)
	assert.Equal(t, "castelo", eff.MapName)
	assert.True(t, eff.Headless)
	assert.True(t, eff.ShowDebugInfo)
	assert.Equal(t, int32(640), eff.WindowWidth)
	assert.Equal(t, int32(720), eff.WindowHeight)

	assert.Equal(t, DefaultConfig(), base)
}

func TestOverridesAreNotSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	base := DefaultConfig()
	base.CameraSpeed = 30
	require.NoError(t, base.SaveTo(path))

	loaded := LoadFrom(path)
	eff := loaded.WithOverrides(Overrides{Headless: true, ServerURL: "ws://localhost:8080/ws"})
	require.True(t, eff.Headless)

	// O que volta ao disco é a configuração carregada, não a efetiva
	require.NoError(t, loaded.SaveTo(path))

	saved := LoadFrom(path)
	assert.False(t, saved.Headless)
	assert.Empty(t, saved.ServerURL)
	assert.Equal(t, float32(30), saved.CameraSpeed)
}
