package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	// GetOrCreate upserts the identity, refreshing username/display name on
	// every interaction.
	GetOrCreate(ctx context.Context, id ID, username, displayName string) (*User, error)
	SetBanned(ctx context.Context, id ID, banned bool) (*User, error)
	// AdjustStorage adds delta (may be negative) to storage_used_bytes,
	// clamped at zero inside the statement.
	AdjustStorage(ctx context.Context, id ID, delta int64) error
}
