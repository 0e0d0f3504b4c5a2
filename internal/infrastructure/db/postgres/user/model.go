package user

import (
	"time"
)

type (
	User struct {
		ID          int64
		Username    string
		DisplayName string

		IsAdmin  bool
		IsBanned bool

		StorageUsedBytes int64

		CreatedAt time.Time
	}
	Users []*User
)
