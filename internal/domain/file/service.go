package file

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/logger"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Storage    ObjectStorage
}

type UploadInput struct {
	Name       string
	MimeType   string
	UploadedBy ulid.ULID
	Content    io.Reader
}

// Upload grava o conteúdo no storage e só depois o registro de metadados.
// A chave do objeto é cunhada a partir do id do registro mais o nome
// saneado, então dois uploads com o mesmo nome nunca colidem.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*File, error) {
	if input.Name == "" {
		return nil, appErrors.NewValidationError("name", "Nome do arquivo é obrigatório")
	}
	if input.Content == nil {
		return nil, appErrors.NewValidationError("file", "Conteúdo do arquivo é obrigatório")
	}

	id := pkg.GenerateULIDObject()
	key := id.String() + "_" + sanitizeName(input.Name)

	size, err := s.Storage.Put(ctx, key, input.Content)
	if err != nil {
		return nil, appErrors.WrapError(err, "STORAGE_ERROR", "Erro ao gravar arquivo", http.StatusInternalServerError)
	}

	now := pkg.SetTimestamps()
	f := &File{
		Id:         id,
		Name:       input.Name,
		ObjectKey:  key,
		Size:       size,
		MimeType:   input.MimeType,
		UploadedBy: input.UploadedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repository.Create(ctx, f); err != nil {
		// registro falhou, o objeto órfão sai do storage
		if rmErr := s.Storage.Remove(ctx, key); rmErr != nil {
			logger.Warn().Err(rmErr).Str("key", key).Msg("Falha ao remover objeto órfão")
		}
		return nil, err
	}

	return f, nil
}

func (s *Service) List(ctx context.Context, search string) ([]*File, error) {
	return s.Repository.List(ctx, search)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*File, error) {
	return s.Repository.GetByID(ctx, id)
}

// Download devolve os metadados e um leitor do conteúdo. O chamador fecha
// o leitor.
func (s *Service) Download(ctx context.Context, id ulid.ULID) (*File, io.ReadCloser, error) {
	f, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	r, err := s.Storage.Open(ctx, f.ObjectKey)
	if err != nil {
		return nil, nil, appErrors.ErrFileNotFound.WithError(err)
	}

	return f, r, nil
}

// Delete remove registro e objeto. Só o dono ou um admin pode apagar.
func (s *Service) Delete(ctx context.Context, id ulid.ULID, requesterID ulid.ULID, isAdmin bool) error {
	f, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && f.UploadedBy != requesterID {
		return appErrors.ErrAdminRequired
	}

	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.Storage.Remove(ctx, f.ObjectKey); err != nil {
		logger.Warn().Err(err).Str("key", f.ObjectKey).Msg("Falha ao remover objeto do storage")
	}

	return nil
}

func sanitizeName(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "arquivo"
	}
	return b.String()
}
