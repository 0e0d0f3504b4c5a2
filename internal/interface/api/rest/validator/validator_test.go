package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dtoFile "file-custody-api/internal/interface/api/rest/dto/file"
)

func TestIsFileID(t *testing.T) {
	assert.True(t, IsFileID("0123456789abcdef"))
	assert.False(t, IsFileID("0123456789ABCDEF"))
	assert.False(t, IsFileID("0123456789abcde"))
	assert.False(t, IsFileID("0123456789abcdef0"))
	assert.False(t, IsFileID("not-hex-not-hex!"))
	assert.False(t, IsFileID(""))
}

func TestIsShareToken(t *testing.T) {
	assert.True(t, IsShareToken("0123456789abcdef"), "file id")
	assert.True(t, IsShareToken("abc12345"), "legacy code")
	assert.False(t, IsShareToken("abc1234"), "too short for a code")
	assert.False(t, IsShareToken("ABC12345"), "codes are lower case")
	assert.False(t, IsShareToken(""))
}

func TestValidateUserID(t *testing.T) {
	id, ok := ValidateUserID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = ValidateUserID("0")
	assert.False(t, ok)
	_, ok = ValidateUserID("-5")
	assert.False(t, ok)
	_, ok = ValidateUserID("abc")
	assert.False(t, ok)
}

func TestValidateLimit(t *testing.T) {
	n, ok := ValidateLimit("")
	assert.True(t, ok)
	assert.Zero(t, n)

	n, ok = ValidateLimit("25")
	assert.True(t, ok)
	assert.Equal(t, 25, n)

	_, ok = ValidateLimit("-1")
	assert.False(t, ok)
	_, ok = ValidateLimit("lots")
	assert.False(t, ok)
}

func TestValidateRegister(t *testing.T) {
	valid := dtoFile.RegisterRequest{
		BlobRef:   "ref-1",
		Name:      "movie.mp4",
		SizeBytes: 1 << 20,
	}

	assert.Nil(t, ValidateRegister(valid, 2<<20))

	tests := []struct {
		name    string
		mut     func(r *dtoFile.RegisterRequest)
		wantKey string
	}{
		{"missing blob_ref", func(r *dtoFile.RegisterRequest) { r.BlobRef = " " }, "blob_ref"},
		{"missing name", func(r *dtoFile.RegisterRequest) { r.Name = "" }, "name"},
		{"negative size", func(r *dtoFile.RegisterRequest) { r.SizeBytes = -1 }, "size_bytes"},
		{"over max size", func(r *dtoFile.RegisterRequest) { r.SizeBytes = 3 << 20 }, "size_bytes"},
		{"unknown kind", func(r *dtoFile.RegisterRequest) { r.Kind = "hologram" }, "kind"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mut(&r)
			errs := ValidateRegister(r, 2<<20)
			assert.Contains(t, errs, tt.wantKey)
		})
	}

	// zero max disables the size cap
	big := valid
	big.SizeBytes = 1 << 40
	assert.Nil(t, ValidateRegister(big, 0))
}

func TestValidateExpiry(t *testing.T) {
	assert.Nil(t, ValidateExpiry(dtoFile.ExpiryRequest{DurationSeconds: 0}))
	assert.Nil(t, ValidateExpiry(dtoFile.ExpiryRequest{DurationSeconds: 3600}))
	assert.Contains(t, ValidateExpiry(dtoFile.ExpiryRequest{DurationSeconds: -1}), "duration_seconds")
}

func TestValidateShareLink(t *testing.T) {
	assert.Nil(t, ValidateShareLink(dtoFile.ShareLinkRequest{Days: 0}))
	assert.Nil(t, ValidateShareLink(dtoFile.ShareLinkRequest{Days: 7}))
	assert.Contains(t, ValidateShareLink(dtoFile.ShareLinkRequest{Days: -1}), "days")
}
