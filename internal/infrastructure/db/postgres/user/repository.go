package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"file-custody-api/internal/domain/user"
	"file-custody-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanUser(row pgx.Row) (*user.User, error) {
	u := new(User)

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,

		&u.IsAdmin,
		&u.IsBanned,

		&u.StorageUsedBytes,

		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u, err := r.scanUser(r.db.QueryRow(ctx, SelectUserByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) GetOrCreate(ctx context.Context, id user.ID, username, displayName string) (*user.User, error) {
	return r.scanUser(r.db.QueryRow(ctx, UpsertUser, id, username, displayName))
}

func (r *Repository) SetBanned(ctx context.Context, id user.ID, banned bool) (*user.User, error) {
	u, err := r.scanUser(r.db.QueryRow(ctx, SetUserBanned, id, banned))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}

func (r *Repository) AdjustStorage(ctx context.Context, id user.ID, delta int64) error {
	_, err := r.db.Exec(ctx, AdjustUserStorage, id, delta)
	return err
}
