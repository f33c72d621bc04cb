package infrastructure

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/file"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
)

// DiskStorage guarda objetos como arquivos sob um diretório raiz.
// As chaves nunca contêm separador de caminho, então um Clean basta
// para impedir fuga do diretório.
type DiskStorage struct {
	Root string
}

var _ file.ObjectStorage = (*DiskStorage)(nil)

func NewDiskStorage(root string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &DiskStorage{Root: root}, nil
}

func (s *DiskStorage) path(key string) (string, error) {
	clean := filepath.Clean(key)
	if clean == "." || clean == ".." || strings.ContainsAny(clean, `/\`) {
		return "", appErrors.ErrBadRequest.WithDetails(map[string]interface{}{"key": key})
	}
	return filepath.Join(s.Root, clean), nil
}

func (s *DiskStorage) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	p, err := s.path(key)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(p)
	if err != nil {
		return 0, appErrors.ErrInternalServer.WithError(err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(p)
		return 0, appErrors.ErrInternalServer.WithError(err)
	}
	return size, nil
}

func (s *DiskStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, appErrors.ErrFileNotFound.WithError(err)
		}
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return f, nil
}

func (s *DiskStorage) Remove(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return appErrors.ErrInternalServer.WithError(err)
	}
	return nil
}
