package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTargets(t *testing.T) {
	all, err := selectTargets(targets, "")
	require.NoError(t, err)
	assert.Len(t, all, len(targets))

	some, err := selectTargets(targets, "cliente, servidor")
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "cliente", some[0].name)
	assert.Equal(t, "servidor", some[1].name)

	_, err = selectTargets(targets, "cliente,editor")
	assert.ErrorContains(t, err, "editor")
}

func TestBuildArgs(t *testing.T) {
	client, err := selectTargets(targets, "cliente")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"build", "-ldflags", "-extldflags=-static -s -w -H=windowsgui", "-o", `cliente/client.exe`, "./cliente"},
		buildArgs(client[0], "windows"))
	assert.Equal(t,
		[]string{"build", "-ldflags", "-s -w", "-o", "cliente/client", "./cliente"},
		buildArgs(client[0], "linux"))

	server, err := selectTargets(targets, "servidor")
	require.NoError(t, err)
	assert.Equal(t, "-extldflags=-static -s -w", server[0].ldflags("linux"))
	assert.Equal(t, "-s -w", server[0].ldflags("darwin"))
}

func TestBuildEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/root"}

	assert.Equal(t, base, buildEnv("linux", base))

	win := buildEnv("windows", []string{`Path=C:\Windows`})
	assert.Equal(t, []string{`Path=C:\msys64\mingw64\bin;C:\Windows`, "CC=gcc"}, win)

	// Já no PATH: não duplica
	again := buildEnv("windows", win[:1])
	assert.Equal(t, win[0], again[0])
}
