package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wordtree "github.com/sarthakjha889/go-wordtree"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wordtree.yaml", `
sources:
  - path: common.txt
  - path: /srv/words/utf16.txt
    encoding: utf-16le
skip_undecodable: true
`)

	file, err := LoadFile(path)
	require.NoError(t, err)

	want := File{
		Sources: []Source{
			{Path: filepath.Join(dir, "common.txt"), Encoding: wordtree.EncodingUTF8},
			{Path: "/srv/words/utf16.txt", Encoding: wordtree.EncodingUTF16LE},
		},
		SkipUndecodable: true,
	}
	if diff := cmp.Diff(want, file); diff != "" {
		t.Errorf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, dir, "bad.yaml", "sources: [\n"))
		assert.Error(t, err)
	})

	t.Run("source without path", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, dir, "nopath.yaml", "sources:\n  - encoding: utf-8\n"))
		assert.Error(t, err)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, dir, "enc.yaml", "sources:\n  - path: a.txt\n    encoding: ebcdic\n"))
		assert.True(t, errors.Is(err, wordtree.ErrUnknownEncoding))
	})
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "wordtree.yaml", "sources:\n  - path: extra.txt\n")

	t.Run("env word list first", func(t *testing.T) {
		cfg, err := Resolve(Env{
			ConfigPath:   cfgPath,
			WordListPath: "/tmp/words.txt",
			Encoding:     "utf-8",
		})
		require.NoError(t, err)
		assert.Equal(t, []Source{
			{Path: "/tmp/words.txt", Encoding: wordtree.EncodingUTF8},
			{Path: filepath.Join(dir, "extra.txt"), Encoding: wordtree.EncodingUTF8},
		}, cfg.Sources)
		assert.False(t, cfg.SkipUndecodable)
	})

	t.Run("no sources", func(t *testing.T) {
		_, err := Resolve(Env{Encoding: "utf-8"})
		assert.True(t, errors.Is(err, ErrNoSources))
	})

	t.Run("bad env encoding", func(t *testing.T) {
		_, err := Resolve(Env{WordListPath: "/tmp/words.txt", Encoding: "koi8-r"})
		assert.True(t, errors.Is(err, wordtree.ErrUnknownEncoding))
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("WORDTREE_CONFIG_PATH", "")
	t.Setenv("WORDTREE_WORDLIST_PATH", "/srv/words.txt")
	t.Setenv("WORDTREE_SKIP_UNDECODABLE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []Source{{Path: "/srv/words.txt", Encoding: wordtree.EncodingUTF8}}, cfg.Sources)
	assert.True(t, cfg.SkipUndecodable)
}
