package ports

import (
	"context"
	"time"

	"file-custody-api/internal/domain/file"
)

type CustodyService interface {
	RegisterUpload(ctx context.Context, up file.Upload) (*file.FileRecord, error)
	// Resolve looks the token up as a file id first, then as a legacy share
	// code. The legacy hit counts as a download.
	Resolve(ctx context.Context, token string) (*file.FileRecord, error)
	RecordView(ctx context.Context, id file.ID) error
	RecordDownload(ctx context.Context, id file.ID) error
	TransferOnAccess(ctx context.Context, id file.ID, requesterID int64, requesterDisplayName string) (*file.FileRecord, error)
	SetShareExpiry(ctx context.Context, id file.ID, requesterID int64, duration time.Duration) (*time.Time, error)
	// Delete returns the soft-deleted record so the caller can credit the
	// owner's storage usage.
	Delete(ctx context.Context, id file.ID, requesterID int64) (*file.FileRecord, error)
	ListOwned(ctx context.Context, ownerID int64, limit int) (file.FileRecords, error)
	CreateShareLink(ctx context.Context, id file.ID, creatorID int64, days int) (*file.ShareLink, error)
}
