package file

import (
	"time"
)

type (
	// ID is the public 16-hex-char token embedded in share URLs.
	ID = string

	FileRecord struct {
		ID ID

		// Transport-level references to the stored payload. BlobUniqueRef is a
		// content-stable identity kept for dedup/audit, not enforced unique.
		BlobRef       string
		BlobUniqueRef string

		Name      string
		MimeType  string
		Extension string
		Kind      Kind

		SizeBytes       int64
		DurationSeconds *int32
		Width           *int32
		Height          *int32

		// Location needed to issue a delete against the blob transport.
		ChannelID int64
		MessageID int64

		OwnerID          int64
		OwnerDisplayName string

		DownloadCount int64
		ViewCount     int64

		Active         bool
		ShareExpiresAt *time.Time
		CreatedAt      time.Time
	}
	FileRecords []*FileRecord

	// ShareLink resolves old-style share codes to a FileRecord. New shares are
	// the FileRecord id itself; this table is kept so old links stay valid.
	ShareLink struct {
		Code          string
		FileID        ID
		CreatorID     int64
		DownloadCount int64
		Active        bool
		ExpiresAt     *time.Time
		CreatedAt     time.Time
	}
)

// Visible reports whether the record may be returned to readers at the given
// instant. Expiry is a pure function of (active, share_expires_at, now); an
// expired record is hidden, never physically removed.
func (f *FileRecord) Visible(now time.Time) bool {
	if !f.Active {
		return false
	}
	return f.ShareExpiresAt == nil || f.ShareExpiresAt.After(now)
}

func (s *ShareLink) Visible(now time.Time) bool {
	if !s.Active {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}
