package routes

import (
	"net/http"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/contracts"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

func (h *Handler) CreateContribution(c *gin.Context) {
	var body contracts.ContributionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := pkg.ParseULID(body.UserId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("userId", "formato inválido"))
		return
	}

	input := contribution.CreateInput{
		UserId:      userID,
		Category:    equity.Category(body.Category),
		Amount:      body.Amount,
		Description: body.Description,
	}
	if body.Date != nil {
		input.Date = *body.Date
	}

	ctx := c.Request.Context()
	entity, err := h.ContributionService.Create(ctx, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func parseContributionFilters(c *gin.Context) (*contribution.Filters, error) {
	filters := &contribution.Filters{}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := pkg.MustParseULIDPtr(&userIDStr)
		if err != nil {
			return nil, appErrors.NewValidationError("user_id", "formato inválido")
		}
		filters.UserID = userID
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		category := equity.Category(categoryStr)
		if !category.IsValid() {
			return nil, appErrors.NewValidationError("category", "deve ser 'time' ou 'money'")
		}
		filters.Category = &category
	}

	if search := c.Query("search"); search != "" {
		filters.Search = &search
	}

	if fromStr := c.Query("date_from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return nil, appErrors.NewValidationError("date_from", "formato inválido")
		}
		filters.DateFrom = &from
	}

	if toStr := c.Query("date_to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return nil, appErrors.NewValidationError("date_to", "formato inválido")
		}
		filters.DateTo = &to
	}

	return filters, nil
}

func (h *Handler) GetContributions(c *gin.Context) {
	filters, err := parseContributionFilters(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	items, total, err := h.ContributionService.GetAll(ctx, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(items, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetContribution(c *gin.Context) {
	id, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	entity, err := h.ContributionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateContribution(c *gin.Context) {
	id, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.ContributionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	input := contribution.UpdateInput{
		Amount:      body.Amount,
		Description: body.Description,
		Date:        body.Date,
	}
	if body.UserId != nil {
		userID, err := pkg.ParseULID(*body.UserId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("userId", "formato inválido"))
			return
		}
		input.UserId = &userID
	}
	if body.Category != nil {
		category := equity.Category(*body.Category)
		input.Category = &category
	}

	ctx := c.Request.Context()
	entity, err := h.ContributionService.Update(ctx, id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteContribution(c *gin.Context) {
	id, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.ContributionService.Delete(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contribuição removida com sucesso"})
}

func (h *Handler) BulkDeleteContributions(c *gin.Context) {
	var body contracts.ContributionBulkDeleteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ids := make([]ulid.ULID, 0, len(body.Ids))
	for _, idStr := range body.Ids {
		id, err := pkg.ParseULID(idStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("ids", "formato inválido: "+idStr))
			return
		}
		ids = append(ids, id)
	}

	ctx := c.Request.Context()
	deleted, err := h.ContributionService.DeleteMany(ctx, ids)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ContributionBulkDeleteResponse{Deleted: deleted})
}
