package file

import (
	"time"
)

type (
	FileRecord struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Kind            string     `json:"kind"`
		MimeType        string     `json:"mime_type,omitempty"`
		Extension       string     `json:"extension,omitempty"`
		SizeBytes       int64      `json:"size_bytes"`
		DurationSeconds *int32     `json:"duration_seconds,omitempty"`
		Width           *int32     `json:"width,omitempty"`
		Height          *int32     `json:"height,omitempty"`
		OwnerID         int64      `json:"owner_id"`
		DownloadCount   int64      `json:"download_count"`
		ViewCount       int64      `json:"view_count"`
		ShareExpiresAt  *time.Time `json:"share_expires_at,omitempty"`
		CreatedAt       time.Time  `json:"created_at"`
		ShareURL        string     `json:"share_url,omitempty"`
	}
	FileRecords  []FileRecord
	ResponseData struct {
		Data FileRecords `json:"data"`
	}

	ExpiryResponse struct {
		Permanent bool       `json:"permanent"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}

	ShareLinkResponse struct {
		Code      string     `json:"code"`
		ShareURL  string     `json:"share_url,omitempty"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}
)
