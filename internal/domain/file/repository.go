package file

import (
	"context"
	"time"
)

type Repository interface {
	// FetchVisible returns the record only if it is active and unexpired.
	FetchVisible(ctx context.Context, id ID) (*FileRecord, error)
	// FetchAny ignores the visibility predicate. Audit/storage-accounting use only.
	FetchAny(ctx context.Context, id ID) (*FileRecord, error)
	Insert(ctx context.Context, rec *FileRecord) (*FileRecord, error)
	FetchByOwner(ctx context.Context, ownerID int64, limit int) (FileRecords, error)

	// Clone atomically copies a visible record under a new id and owner.
	// Returns nil when the original is not visible.
	Clone(ctx context.Context, id ID, newID ID, ownerID int64, ownerDisplayName string) (*FileRecord, error)

	// IncrementView / IncrementDownload are atomic add-one writes against
	// visible records; found=false when the record is not visible.
	IncrementView(ctx context.Context, id ID) (found bool, err error)
	IncrementDownload(ctx context.Context, id ID) (found bool, err error)

	SetShareExpiry(ctx context.Context, id ID, expiresAt *time.Time) (found bool, err error)
	SoftDelete(ctx context.Context, id ID) (found bool, err error)
}

type ShareLinkRepository interface {
	// ResolveCode maps a legacy code to its target file id and bumps the
	// file's download counter in the same statement. Returns the resolved
	// visible record or nil.
	ResolveCode(ctx context.Context, code string) (*FileRecord, error)
	Insert(ctx context.Context, link *ShareLink) (*ShareLink, error)
}
