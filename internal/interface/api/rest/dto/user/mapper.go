package user

import (
	domain "file-custody-api/internal/domain/user"
)

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		ID:               uDomain.ID,
		Username:         uDomain.Username,
		DisplayName:      uDomain.DisplayName,
		IsAdmin:          uDomain.IsAdmin,
		IsBanned:         uDomain.IsBanned,
		StorageUsedBytes: uDomain.StorageUsedBytes,
		CreatedAt:        uDomain.CreatedAt,
	}

	return u
}
