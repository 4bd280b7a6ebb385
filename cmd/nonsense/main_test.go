package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nonsense "github.com/cjnimes/Nonsense-Text"
)

func withConf(t *testing.T, c Config) {
	t.Helper()
	old := conf
	conf = c
	logger = log.New(io.Discard, "", 0)
	t.Cleanup(func() { conf = old })
}

func TestRun_Plain(t *testing.T) {
	withConf(t, Config{Lang: "es", Words: 25, Seed: 3, Count: 2})

	var buf bytes.Buffer
	require.NoError(t, run(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Len(t, strings.Fields(l), 25)
		assert.True(t, strings.HasSuffix(l, "."))
	}
}

func TestRun_HTML(t *testing.T) {
	withConf(t, Config{Lang: "en", Words: 40, Seed: 1, Count: 1, HTML: true, Debug: true})

	var buf bytes.Buffer
	require.NoError(t, run(&buf))
	assert.Contains(t, buf.String(), "<!DOCTYPE html>")
	assert.Contains(t, buf.String(), "<title>nonsense (en)</title>")
}

func TestRun_List(t *testing.T) {
	withConf(t, Config{List: true, Count: 1})

	var buf bytes.Buffer
	require.NoError(t, run(&buf))
	assert.Equal(t, "en\nes\n", buf.String())
}

func TestRun_DataDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "toy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy", "word-syllables.csv"), []byte("ta,1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy", "word-lengths.csv"), []byte("2,1\n"), 0o644))

	withConf(t, Config{Lang: "toy", Words: 1, Seed: 9, Count: 1, Data: dir})

	var buf bytes.Buffer
	require.NoError(t, run(&buf))
	assert.Equal(t, "Ta.\n", buf.String())
}

func TestRun_UnknownLanguage(t *testing.T) {
	withConf(t, Config{Lang: "zz", Count: 1})

	err := run(io.Discard)
	assert.ErrorIs(t, err, nonsense.ErrDataLoad)
}
