package buildcontext

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.New(zerowrap.Config{Level: "warn"}))
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

type entry struct {
	content string
	mode    int64
}

func readArchive(t *testing.T, r io.Reader) map[string]entry {
	t.Helper()
	entries := make(map[string]entry)
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries[hdr.Name] = entry{content: string(data), mode: hdr.Mode}
	}
	return entries
}

func TestTarball_RoundTripExcludesVCS(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Dockerfile":          "FROM alpine\n",
		"scripts/setup.sh":    "#!/bin/sh\necho hi\n",
		"deep/a/b/c.txt":      "c",
		".git/HEAD":           "ref: refs/heads/main\n",
		".git/objects/aa/bb":  "blob",
		"vendor/lib/.git":     "gitdir: ../../.git/modules/lib\n",
		"vendor/lib/lib.go":   "package lib\n",
		".gitignore":          "bin/\n",
		"nested/.git/config":  "[core]\n",
		"nested/keep/me.conf": "keep",
	})

	buf, err := Tarball(testContext(), root)
	require.NoError(t, err)

	entries := readArchive(t, buf)

	assert.Equal(t, map[string]entry{
		"Dockerfile":          {content: "FROM alpine\n", mode: EntryMode},
		"scripts/setup.sh":    {content: "#!/bin/sh\necho hi\n", mode: EntryMode},
		"deep/a/b/c.txt":      {content: "c", mode: EntryMode},
		"vendor/lib/lib.go":   {content: "package lib\n", mode: EntryMode},
		".gitignore":          {content: "bin/\n", mode: EntryMode},
		"nested/keep/me.conf": {content: "keep", mode: EntryMode},
	}, entries)
}

func TestTarball_ModeIsExecutable(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"readonly.txt": "x"})
	require.NoError(t, os.Chmod(filepath.Join(root, "readonly.txt"), 0o400))

	buf, err := Tarball(testContext(), root)
	require.NoError(t, err)

	tr := tar.NewReader(buf)
	hdr, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), hdr.FileInfo().Mode().Perm())
	assert.True(t, hdr.FileInfo().Mode().IsRegular())
}

func TestTarball_Gzip(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"Dockerfile": "FROM scratch\n"})

	buf, err := Tarball(testContext(), root, WithGzip())
	require.NoError(t, err)

	raw := buf.Bytes()
	require.GreaterOrEqual(t, len(raw), 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])

	gz, err := gzip.NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer gz.Close()

	entries := readArchive(t, gz)
	assert.Equal(t, "FROM scratch\n", entries["Dockerfile"].content)
}

func TestTarball_CancelledContextYieldsPartialArchive(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a", "b.txt": "b"})

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	buf, err := Tarball(ctx, root)
	require.NoError(t, err)

	entries := readArchive(t, buf)
	assert.Empty(t, entries)
}

func TestTarball_SymlinkedRoot(t *testing.T) {
	base := t.TempDir()
	project := filepath.Join(base, "project")
	writeTree(t, project, map[string]string{
		"Dockerfile": "FROM alpine\n",
		"a.txt":      "a",
		".git/HEAD":  "ref\n",
	})
	link := filepath.Join(base, "link")
	require.NoError(t, os.Symlink(project, link))

	buf, err := Tarball(testContext(), link)
	require.NoError(t, err)

	entries := readArchive(t, buf)
	assert.Equal(t, map[string]entry{
		"Dockerfile": {content: "FROM alpine\n", mode: EntryMode},
		"a.txt":      {content: "a", mode: EntryMode},
	}, entries)
}

func TestTarball_EmptyDirectory(t *testing.T) {
	buf, err := Tarball(testContext(), t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, readArchive(t, buf))
}

func TestTarball_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := Tarball(testContext(), filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("root is a file", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"file": "x"})

		_, err := Tarball(testContext(), filepath.Join(root, "file"))
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("unreadable entry aborts", func(t *testing.T) {
		root := t.TempDir()
		writeTree(t, root, map[string]string{"ok.txt": "ok"})
		require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

		buf, err := Tarball(testContext(), root)
		require.Error(t, err)
		assert.Nil(t, buf)
	})
}
