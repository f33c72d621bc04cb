package routes

import (
	"io"
	"net/http"
	"strconv"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/file"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/logger"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 50 << 20

type fileResponse struct {
	*file.File
	DownloadURL string `json:"downloadUrl"`
}

func toFileResponse(f *file.File) fileResponse {
	return fileResponse{File: f, DownloadURL: f.DownloadPath()}
}

func (h *Handler) UploadFile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("file", "arquivo é obrigatório"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		h.respondError(c, appErrors.NewValidationError("file", "arquivo excede o tamanho máximo de 50MB"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}
	defer src.Close()

	entity, err := h.FileService.Upload(c.Request.Context(), file.UploadInput{
		Name:       fileHeader.Filename,
		MimeType:   fileHeader.Header.Get("Content-Type"),
		UploadedBy: userID,
		Content:    src,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFileResponse(entity))
}

func (h *Handler) ListFiles(c *gin.Context) {
	files, err := h.FileService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}

	c.JSON(http.StatusOK, gin.H{"files": out})
}

func (h *Handler) DownloadFile(c *gin.Context) {
	id, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	entity, reader, err := h.FileService.Download(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+entity.Name+`"`)
	c.Header("Content-Length", strconv.FormatInt(entity.Size, 10))

	mimeType := entity.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Header("Content-Type", mimeType)

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.Warn().Err(err).Str("file_id", entity.Id.String()).Msg("Falha ao transmitir arquivo")
	}
}

func (h *Handler) DeleteFile(c *gin.Context) {
	id, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.FileService.Delete(ctx, id, userID, h.isAdmin(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Arquivo removido com sucesso"})
}
