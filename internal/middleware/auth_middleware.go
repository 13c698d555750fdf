package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/pkg/apperrors"
	"github.com/ozgurweb/sitepanel/internal/pkg/auth"
)

// Context keys set by RequireAuth.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextTokenID   = "tokenID"
	ContextTokenExp  = "tokenExp"
)

// RequireAuth validates the bearer token and rejects revoked tokens. On
// success the user identity and token id land in the request context.
func RequireAuth(jwtService *auth.JWTService, blacklist *auth.TokenBlacklist) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(ctx, err)
			ctx.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			HandleAPIError(ctx, err)
			ctx.Abort()
			return
		}

		if blacklist.IsRevoked(claims.ID) {
			HandleAPIError(ctx, apperrors.ErrTokenRevoked)
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextUserEmail, claims.Email)
		ctx.Set(ContextTokenID, claims.ID)
		ctx.Set(ContextTokenExp, claims.ExpiresAt.Time)
		ctx.Next()
	}
}
