// Package buildcontext turns a working directory into an image build context archive.
package buildcontext

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/zerowrap"
	"github.com/klauspost/compress/gzip"
)

// EntryMode is the mode written for every archived file: a regular file with rwxr-xr-x.
const EntryMode = 0o100755

// VCSDir is the version control metadata name excluded from every archive.
const VCSDir = ".git"

const copyBufferSize = 32 * 1024

// ErrNotDirectory is returned when the archive root is not a directory.
var ErrNotDirectory = errors.New("build context root is not a directory")

// Option configures Tarball.
type Option func(*options)

type options struct {
	gzip bool
}

// WithGzip compresses the archive. The engine detects compressed build contexts on its own.
func WithGzip() Option {
	return func(o *options) {
		o.gzip = true
	}
}

// Tarball archives every regular file below dir into an in-memory tar stream.
//
// Entry names are relative to dir and slash separated, every entry gets EntryMode, and any
// path with a ".git" component is left out. No file handle is open once Tarball returns.
// ctx is checked before each file; after cancellation the remaining files are skipped and
// the archive is closed as it stands, without an error.
func Tarball(ctx context.Context, dir string, opts ...Option) (*bytes.Buffer, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldComponent: "buildcontext",
		zerowrap.FieldPath:      dir,
	})
	log := zerowrap.FromCtx(ctx)

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve build context %s: %w", dir, err)
	}
	// WalkDir does not descend into a symlinked root.
	root, err = filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve build context %s: %w", dir, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat build context: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	buf := &bytes.Buffer{}
	var sink io.Writer = buf
	var gz *gzip.Writer
	if o.gzip {
		gz = gzip.NewWriter(buf)
		sink = gz
	}
	tw := tar.NewWriter(sink)
	copyBuf := make([]byte, copyBufferSize)

	log.Debug().Bool("gzip", o.gzip).Msg("creating build context archive")

	entries := 0
	cancelled := false
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if d.Name() == VCSDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			cancelled = true
			return filepath.SkipAll
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		name := filepath.ToSlash(rel)

		added, err := addFile(tw, path, name, copyBuf)
		if err != nil {
			return err
		}
		if added {
			entries++
			log.Debug().Str("entry", name).Msg("added build context entry")
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close build context archive: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return nil, fmt.Errorf("failed to close build context compression: %w", err)
		}
	}

	if cancelled {
		log.Warn().Int(zerowrap.FieldCount, entries).Msg("build context archiving cancelled, archive is partial")
	} else {
		log.Debug().Int(zerowrap.FieldCount, entries).Int(zerowrap.FieldSize, buf.Len()).Msg("build context archive created")
	}

	return buf, nil
}

// addFile writes one file entry. Paths that do not resolve to a regular file are skipped.
func addFile(tw *tar.Writer, path, name string, copyBuf []byte) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	hdr := &tar.Header{
		Typeflag: tar.TypeReg,
		Name:     name,
		Size:     info.Size(),
		Mode:     EntryMode,
		ModTime:  info.ModTime(),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return false, fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	if _, err := io.CopyBuffer(tw, f, copyBuf); err != nil {
		return false, fmt.Errorf("failed to archive %s: %w", name, err)
	}
	return true, nil
}
