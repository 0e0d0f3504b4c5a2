package file

import (
	"time"
)

type (
	File struct {
		ID            string
		BlobRef       string
		BlobUniqueRef string
		Name          string
		MimeType      string
		Extension     string
		Kind          string

		SizeBytes       int64
		DurationSeconds *int32
		Width           *int32
		Height          *int32

		ChannelID int64
		MessageID int64

		OwnerID          int64
		OwnerDisplayName string

		DownloadCount int64
		ViewCount     int64

		IsActive       bool
		ShareExpiresAt *time.Time
		CreatedAt      time.Time
	}
	Files []*File

	ShareLink struct {
		Code          string
		FileID        string
		CreatorID     int64
		DownloadCount int64
		IsActive      bool
		ExpiresAt     *time.Time
		CreatedAt     time.Time
	}
)
