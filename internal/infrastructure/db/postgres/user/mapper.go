package user

import (
	domain "file-custody-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:          model.ID,
		Username:    model.Username,
		DisplayName: model.DisplayName,

		IsAdmin:  model.IsAdmin,
		IsBanned: model.IsBanned,

		StorageUsedBytes: model.StorageUsedBytes,

		CreatedAt: model.CreatedAt,
	}

	return u
}
