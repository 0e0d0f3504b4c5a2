package user

import (
	"time"
)

type (
	// ID equals the external messaging-platform identity of the account.
	ID = int64

	User struct {
		ID          ID
		Username    string
		DisplayName string

		IsAdmin  bool
		IsBanned bool

		// Aggregate bytes held by the user's active records. Adjusted
		// incrementally and clamped at zero, never recomputed from scratch.
		StorageUsedBytes int64

		CreatedAt time.Time
	}
	Users []*User
)
