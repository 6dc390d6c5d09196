package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalContextKey = "principal"

// Claims are the JWT claims issued to platform users.
type Claims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for principal valid for ttl.
func SignToken(settings config.AuthSettings, principal *identity.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  principal.Name,
		Roles: principal.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.ID,
			Issuer:    settings.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(settings.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a bearer token and returns its principal.
func ParseToken(settings config.AuthSettings, token string) (*identity.Principal, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if settings.Issuer != "" {
		options = append(options, jwt.WithIssuer(settings.Issuer))
	}

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(settings.JWTSecret), nil
	}, options...); err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &identity.Principal{ID: claims.Subject, Name: claims.Name, Roles: claims.Roles}, nil
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's principal on the context.
func AuthMiddleware(settings config.AuthSettings) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		principal, err := ParseToken(settings, strings.TrimSpace(token))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token: " + err.Error()})
			return
		}

		ctx.Set(principalContextKey, principal)
		ctx.Request = ctx.Request.WithContext(identity.WithPrincipal(ctx.Request.Context(), principal))
		ctx.Next()
	}
}

// RequireRoles lets the request through when the principal holds one of roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal := principalFrom(ctx)
		if principal == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "authentication required"})
			return
		}
		if !principal.HasAnyRole(roles...) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "access denied"})
			return
		}
		ctx.Next()
	}
}

func principalFrom(ctx *gin.Context) *identity.Principal {
	value, ok := ctx.Get(principalContextKey)
	if !ok {
		return nil
	}
	principal, _ := value.(*identity.Principal)
	return principal
}

// username returns the name recorded in audit entries for the caller.
func username(ctx *gin.Context) string {
	if principal := principalFrom(ctx); principal != nil {
		return principal.Username()
	}
	return "anonymous"
}
