package file

type (
	// RegisterRequest describes an uploaded payload the front-end already
	// holds a raw transport handle for.
	RegisterRequest struct {
		BlobRef         string `json:"blob_ref"`
		Name            string `json:"name"`
		Kind            string `json:"kind,omitempty"` // inferred from name when empty
		MimeType        string `json:"mime_type,omitempty"`
		SizeBytes       int64  `json:"size_bytes"`
		DurationSeconds *int32 `json:"duration_seconds,omitempty"`
		Width           *int32 `json:"width,omitempty"`
		Height          *int32 `json:"height,omitempty"`
	}

	// ExpiryRequest: duration_seconds == 0 makes the share permanent.
	ExpiryRequest struct {
		DurationSeconds int64 `json:"duration_seconds"`
	}

	ShareLinkRequest struct {
		Days int `json:"days"` // 0 = never expires
	}
)
