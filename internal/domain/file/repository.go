package file

import (
	"context"
	"io"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, f *File) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*File, error)
	List(ctx context.Context, search string) ([]*File, error)
}

// ObjectStorage é a fronteira com o armazenamento físico dos objetos.
// As chaves são opacas para o domínio; quem as cunha é o serviço.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}
