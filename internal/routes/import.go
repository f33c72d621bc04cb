package routes

import (
	"io"
	"net/http"

	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"

	"github.com/gin-gonic/gin"
)

// 10 MB cobre com folga qualquer export de time tracker razoável.
const maxImportSize = 10 << 20

func (h *Handler) readImportFile(c *gin.Context) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", appErrors.NewValidationError("file", "arquivo CSV é obrigatório")
	}
	if fileHeader.Size > maxImportSize {
		return "", appErrors.NewValidationError("file", "arquivo excede o tamanho máximo de 10MB")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImportSize))
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}

	return string(data), nil
}

func (h *Handler) PreviewImport(c *gin.Context) {
	csvText, err := h.readImportFile(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rows, err := h.ImporterService.Preview(c.Request.Context(), csvText)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *Handler) ExecuteImport(c *gin.Context) {
	csvText, err := h.readImportFile(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	summary, rows, err := h.ImporterService.Execute(c.Request.Context(), csvText)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"rows":    rows,
	})
}
