package file

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"file-custody-api/internal/domain/file"
	"file-custody-api/internal/infrastructure/db/postgres"
)

var ErrIDAlreadyExists = errors.New("file id already exists")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanFile(row pgx.Row) (*file.FileRecord, error) {
	f := new(File)

	err := row.Scan(
		&f.ID,
		&f.BlobRef,
		&f.BlobUniqueRef,
		&f.Name,
		&f.MimeType,
		&f.Extension,
		&f.Kind,

		&f.SizeBytes,
		&f.DurationSeconds,
		&f.Width,
		&f.Height,

		&f.ChannelID,
		&f.MessageID,

		&f.OwnerID,
		&f.OwnerDisplayName,

		&f.DownloadCount,
		&f.ViewCount,

		&f.IsActive,
		&f.ShareExpiresAt,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchVisible(ctx context.Context, id file.ID) (*file.FileRecord, error) {
	f, err := r.scanFile(r.db.QueryRow(ctx, SelectFileVisible, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return f, nil
}

func (r *Repository) FetchAny(ctx context.Context, id file.ID) (*file.FileRecord, error) {
	f, err := r.scanFile(r.db.QueryRow(ctx, SelectFileAny, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return f, nil
}

func (r *Repository) Insert(ctx context.Context, rec *file.FileRecord) (*file.FileRecord, error) {
	f, err := r.scanFile(r.db.QueryRow(
		ctx,
		InsertFile,
		rec.ID, rec.BlobRef, rec.BlobUniqueRef, rec.Name, rec.MimeType, rec.Extension, string(rec.Kind),
		rec.SizeBytes, rec.DurationSeconds, rec.Width, rec.Height, rec.ChannelID, rec.MessageID,
		rec.OwnerID, rec.OwnerDisplayName,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrIDAlreadyExists
		}
		return nil, err
	}

	return f, nil
}

func (r *Repository) FetchByOwner(ctx context.Context, ownerID int64, limit int) (file.FileRecords, error) {
	rows, err := r.db.Query(ctx, SelectFilesByOwner, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.BlobRef,
			&f.BlobUniqueRef,
			&f.Name,
			&f.MimeType,
			&f.Extension,
			&f.Kind,

			&f.SizeBytes,
			&f.DurationSeconds,
			&f.Width,
			&f.Height,

			&f.ChannelID,
			&f.MessageID,

			&f.OwnerID,
			&f.OwnerDisplayName,

			&f.DownloadCount,
			&f.ViewCount,

			&f.IsActive,
			&f.ShareExpiresAt,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) Clone(ctx context.Context, id, newID file.ID, ownerID int64, ownerDisplayName string) (*file.FileRecord, error) {
	f, err := r.scanFile(r.db.QueryRow(ctx, CloneFile, id, newID, ownerID, ownerDisplayName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrIDAlreadyExists
		}
		return nil, err
	}

	return f, nil
}

func (r *Repository) IncrementView(ctx context.Context, id file.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, IncrementFileView, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) IncrementDownload(ctx context.Context, id file.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, IncrementFileDownload, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetShareExpiry(ctx context.Context, id file.ID, expiresAt *time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, SetFileShareExpiry, id, expiresAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id file.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, SoftDeleteFile, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ShareLinkRepository serves the legacy code-based resolution path. It is a
// separate type so the lookup strategies stay distinct (new ids never pass
// through the share_links table).
type ShareLinkRepository struct {
	db postgres.Querier
}

func NewShareLinkRepository(db postgres.Querier) file.ShareLinkRepository {
	return &ShareLinkRepository{db: db}
}

func (r *ShareLinkRepository) ResolveCode(ctx context.Context, code string) (*file.FileRecord, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, ResolveShareCode, code).Scan(
		&f.ID,
		&f.BlobRef,
		&f.BlobUniqueRef,
		&f.Name,
		&f.MimeType,
		&f.Extension,
		&f.Kind,

		&f.SizeBytes,
		&f.DurationSeconds,
		&f.Width,
		&f.Height,

		&f.ChannelID,
		&f.MessageID,

		&f.OwnerID,
		&f.OwnerDisplayName,

		&f.DownloadCount,
		&f.ViewCount,

		&f.IsActive,
		&f.ShareExpiresAt,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *ShareLinkRepository) Insert(ctx context.Context, link *file.ShareLink) (*file.ShareLink, error) {
	l := new(ShareLink)

	err := r.db.QueryRow(ctx, InsertShareLink, link.Code, link.FileID, link.CreatorID, link.ExpiresAt).Scan(
		&l.Code,
		&l.FileID,
		&l.CreatorID,
		&l.DownloadCount,
		&l.IsActive,
		&l.ExpiresAt,
		&l.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrIDAlreadyExists
		}
		return nil, err
	}

	return fromDBShareLink(l), nil
}
