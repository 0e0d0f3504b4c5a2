package file

// Upload describes a payload the front-end received, before it has been
// persisted to the custody channel.
type Upload struct {
	BlobRef  string
	Name     string
	Kind     Kind // inferred from Name when empty
	MimeType string

	SizeBytes       int64
	DurationSeconds *int32
	Width           *int32
	Height          *int32

	OwnerID          int64
	OwnerDisplayName string
}
