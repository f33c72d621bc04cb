package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AhmedHodiani/slicing-pie/config"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "user_role"
)

type JwtService struct {
	secret      []byte
	expiration  time.Duration
	UserService *user.Service
}

func NewJwtService(cfg config.JWTConfig, userSvc *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET não configurado")
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		expiration:  time.Duration(cfg.ExpirationHours) * time.Hour,
		UserService: userSvc,
	}, nil
}

func (j *JwtService) Generate(entity *user.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   entity.Id.String(),
		"email": entity.Email,
		"role":  string(entity.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(j.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (j *JwtService) Parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.ErrInvalidToken.WithError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, appErrors.ErrInvalidToken
	}
	return claims, nil
}

// ResolveUser revalida o dono do token contra o banco. Tokens de usuários
// removidos deixam de valer mesmo antes de expirar.
func (j *JwtService) ResolveUser(ctx context.Context, claims jwt.MapClaims) (*user.User, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, appErrors.ErrInvalidToken
	}

	id, err := pkg.ParseULID(sub)
	if err != nil {
		return nil, appErrors.ErrInvalidToken.WithError(err)
	}

	entity, err := j.UserService.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.ErrInvalidToken.WithError(err)
	}
	return entity, nil
}

func respondAbort(c *gin.Context, err *appErrors.AppError) {
	payload := gin.H{
		"error":   err.Code,
		"message": err.Message,
	}
	if len(err.Details) > 0 {
		payload["details"] = err.Details
	}
	c.AbortWithStatusJSON(err.StatusCode, payload)
}

func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondAbort(c, appErrors.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondAbort(c, appErrors.ErrUnauthorized)
			return
		}

		claims, err := jwtSvc.Parse(parts[1])
		if err != nil {
			respondAbort(c, appErrors.FromError(err))
			return
		}

		entity, err := jwtSvc.ResolveUser(c.Request.Context(), claims)
		if err != nil {
			respondAbort(c, appErrors.FromError(err))
			return
		}

		c.Set(ContextUserIDKey, entity.Id.String())
		c.Set(ContextRoleKey, string(entity.Role))
		c.Next()
	}
}

// RequireAdmin bloqueia quem não carrega o papel admin. Depende do
// AuthMiddleware já ter preenchido o contexto.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleKey)
		if !exists {
			respondAbort(c, appErrors.ErrUnauthorized)
			return
		}
		if roleStr, ok := role.(string); !ok || roleStr != string(user.RoleAdmin) {
			respondAbort(c, appErrors.ErrAdminRequired)
			return
		}
		c.Next()
	}
}
