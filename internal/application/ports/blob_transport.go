package ports

import (
	"context"

	"file-custody-api/internal/domain/file"
	"file-custody-api/internal/infrastructure/telegram"
)

type BlobTransport interface {
	Store(ctx context.Context, kind file.Kind, blobRef, caption string) (*telegram.StoredBlob, error)
	Delete(ctx context.Context, channelID, messageID int64) error
}
