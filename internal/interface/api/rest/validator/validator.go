package validator

import (
	"regexp"
	"strconv"
	"strings"

	dtoFile "file-custody-api/internal/interface/api/rest/dto/file"

	"file-custody-api/internal/domain/file"
)

var (
	fileIDRe    = regexp.MustCompile(`^[0-9a-f]{16}$`)
	shareCodeRe = regexp.MustCompile(`^[a-z0-9]{8}$`)
)

// IsFileID accepts only the 16-hex-char record id format.
func IsFileID(s string) bool {
	return fileIDRe.MatchString(s)
}

// IsShareToken accepts anything resolvable: a record id or a legacy code.
func IsShareToken(s string) bool {
	return fileIDRe.MatchString(s) || shareCodeRe.MatchString(s)
}

func ValidateUserID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

func ValidateLimit(limit string) (int, bool) {
	if limit == "" {
		return 0, true
	}
	n, err := strconv.Atoi(limit)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ValidateRegister checks the request shape; deeper validation (kind
// inference, size bounds against config) belongs to the engine and caller.
func ValidateRegister(r dtoFile.RegisterRequest, maxSizeBytes int64) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.BlobRef) == "" {
		errs["blob_ref"] = "blob_ref is required"
	}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if r.SizeBytes < 0 {
		errs["size_bytes"] = "size_bytes must not be negative"
	} else if maxSizeBytes > 0 && r.SizeBytes > maxSizeBytes {
		errs["size_bytes"] = "file too large"
	}
	if r.Kind != "" && !file.Kind(r.Kind).Valid() {
		errs["kind"] = "unknown kind"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateExpiry(r dtoFile.ExpiryRequest) map[string]string {
	if r.DurationSeconds < 0 {
		return map[string]string{"duration_seconds": "duration_seconds must not be negative"}
	}
	return nil
}

func ValidateShareLink(r dtoFile.ShareLinkRequest) map[string]string {
	if r.Days < 0 {
		return map[string]string{"days": "days must not be negative"}
	}
	return nil
}
