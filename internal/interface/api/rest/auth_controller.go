package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-custody-api/internal/application/ports"
	"file-custody-api/internal/application/services"
	"file-custody-api/internal/interface/api/rest/dto/auth"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteAuthToken, ac.TokenHandler)

	return ac
}

// TokenHandler exchanges the front-end's shared bot key plus a chat identity
// for a caller-identity token. The user record is upserted on the way, so the
// first interaction a person ever has with the bot creates their account.
func (ac *AuthController) TokenHandler(c *gin.Context) {
	var req auth.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if strings.TrimSpace(req.BotKey) == "" || req.UserID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "bot_key and a positive user_id are required",
		})
		return
	}

	u, err := ac.userService.GetOrCreateUser(
		c.Request.Context(), req.UserID, req.Username, req.DisplayName,
	)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("GetOrCreateUser() error", zap.Error(err))
		return
	}

	token, err := ac.authService.IssueToken(req.BotKey, u)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBotKey):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUserBanned):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ac.logger.Error("IssueToken() error", zap.Error(err), zap.Int64("user_id", u.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		}

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
