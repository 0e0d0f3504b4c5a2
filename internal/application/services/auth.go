package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"file-custody-api/internal/application/ports"
	"file-custody-api/internal/domain/user"
	"file-custody-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidBotKey         = errors.New("invalid bot key")
	ErrUserBanned            = errors.New("user is banned")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
	botKeyHash string
}

func NewAuthService(
	jwtService *jwt.Service,
	botKeyHash string,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
		botKeyHash: botKeyHash,
	}
}

// IssueToken exchanges the chat front-end's shared bot key for a short-lived
// caller-identity token. Banned users are refused here, before any custody
// operation can run on their behalf.
func (as *AuthService) IssueToken(botKey string, u *user.User) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(as.botKeyHash), []byte(botKey))
	if err != nil {
		return "", ErrInvalidBotKey
	}

	if u.IsBanned {
		return "", ErrUserBanned
	}

	token, err := as.jwtService.GenerateJWT(u.ID, u.Username, u.DisplayName, u.IsAdmin, time.Hour)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
