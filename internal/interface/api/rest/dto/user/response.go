package user

import (
	"time"
)

type (
	User struct {
		ID               int64     `json:"id"`
		Username         string    `json:"username,omitempty"`
		DisplayName      string    `json:"display_name,omitempty"`
		IsAdmin          bool      `json:"is_admin"`
		IsBanned         bool      `json:"is_banned"`
		StorageUsedBytes int64     `json:"storage_used_bytes"`
		CreatedAt        time.Time `json:"created_at"`
	}

	BanRequest struct {
		Banned bool `json:"banned"`
	}
)
