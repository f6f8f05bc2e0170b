package storage

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"
)

// AssetStore serves locally bundled fallback assets (the CV, the portrait)
// that stand in when the content store has no live file reference.
type AssetStore interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// AferoStore is an afero-backed AssetStore. Production wires it over the
// OS filesystem rooted at the web assets directory; tests use MemMapFs.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates an AssetStore over the given filesystem.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewOsStore creates an AssetStore over a directory of the OS filesystem.
func NewOsStore(root string) *AferoStore {
	return &AferoStore{fs: afero.NewBasePathFs(afero.NewOsFs(), root)}
}

// Open opens an asset for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Exists reports whether the asset is present.
func (s *AferoStore) Exists(ctx context.Context, path string) (bool, error) {
	return afero.Exists(s.fs, path)
}
