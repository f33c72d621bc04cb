package file

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// File descreve um objeto guardado no drive. O conteúdo em si vive no
// object storage sob ObjectKey; aqui ficam só os metadados.
type File struct {
	Id         ulid.ULID `json:"id"`
	Name       string    `json:"name"`
	ObjectKey  string    `json:"-"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mimeType"`
	UploadedBy ulid.ULID `json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// DownloadPath é a URL estável de leitura do objeto.
func (f *File) DownloadPath() string {
	return "/api/files/" + f.Id.String() + "/download"
}
