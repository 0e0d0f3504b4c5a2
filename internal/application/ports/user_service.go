package ports

import (
	"context"

	"file-custody-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	GetOrCreateUser(ctx context.Context, id user.ID, username, displayName string) (*user.User, error)
	SetBanned(ctx context.Context, id user.ID, banned bool) (*user.User, error)
	AdjustStorage(ctx context.Context, id user.ID, delta int64) error
}
