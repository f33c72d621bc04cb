package routes

import (
	"net/http"

	"github.com/AhmedHodiani/slicing-pie/internal/contracts"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/auth"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.UserService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var body contracts.UserCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	if err := auth.PasswordRequirements(body.Password); err != nil {
		h.respondError(c, err)
		return
	}

	entity := user.User{
		Name:                body.Name,
		Email:               body.Email,
		Password:            body.Password,
		Role:                user.Role(body.Role),
		MarketSalaryMonthly: body.MarketSalaryMonthly,
		Title:               body.Title,
	}

	ctx := c.Request.Context()
	if err := h.UserService.Create(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	userID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.UserUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	input := user.UpdateInput{
		Name:                body.Name,
		Email:               body.Email,
		MarketSalaryMonthly: body.MarketSalaryMonthly,
		HourlyRate:          body.HourlyRate,
		Title:               body.Title,
		AvatarOptions:       body.AvatarOptions,
	}
	if body.Role != nil {
		role := user.Role(*body.Role)
		input.Role = &role
	}

	ctx := c.Request.Context()
	entity, err := h.UserService.Update(ctx, userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

// UpdateProfile permite ao próprio usuário editar nome, título e avatar.
// Papel e salário ficam de fora, só um admin mexe neles.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.UserUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	input := user.UpdateInput{
		Name:          body.Name,
		Title:         body.Title,
		AvatarOptions: body.AvatarOptions,
	}

	ctx := c.Request.Context()
	entity, err := h.UserService.Update(ctx, userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.Delete(ctx, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserDeletionResponse{
		Message: "Usuário removido com sucesso",
	})
}
