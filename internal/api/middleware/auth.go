package middleware

import (
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/response"
	"CampaignLens/internal/pkg/security"
	"context"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	msgTokenMissing = "Token 缺失或格式错误"
	msgTokenInvalid = "Token 无效或已过期"
	msgUnknown      = "未知错误"
)

// TokenBlacklist 已注销 Token 的签名存储
type TokenBlacklist interface {
	GetValue(ctx context.Context, key string) (string, error)
}

// AuthMiddleware 校验 Bearer Token 与黑名单，通过后把用户 ID 同时写入 gin.Context 和 request ctx
func AuthMiddleware(tokens *security.TokenManager, blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, response.Unauthorized, msgTokenMissing)
			return
		}
		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Abort(c, response.Unauthorized, msgTokenMissing)
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			log.DebugContext(ctx, "reject token", "err", err)
			response.Abort(c, response.Unauthorized, msgTokenInvalid)
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.GetValue(ctx, consts.TokenBlacklistKey+signature)
			if err != nil {
				log.ErrorContext(ctx, "check token blacklist error", "err", err)
				response.Abort(c, response.InternalServerError, msgUnknown)
				return
			}
			if revoked != "" {
				response.Abort(c, response.Unauthorized, msgTokenInvalid)
				return
			}
		}

		c.Set(consts.ContextUserID, claims.UserID)
		c.Request = c.Request.WithContext(context.WithValue(ctx, consts.ContextUserID, claims.UserID))
		c.Next()
	}
}

// bearerToken 方案名大小写不敏感
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
