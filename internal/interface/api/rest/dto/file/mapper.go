package file

import (
	domain "file-custody-api/internal/domain/file"
)

func ToResponseFileRecord(fDomain domain.FileRecord, shareURL string) FileRecord {
	var f = FileRecord{
		ID:              fDomain.ID,
		Name:            fDomain.Name,
		Kind:            string(fDomain.Kind),
		MimeType:        fDomain.MimeType,
		Extension:       fDomain.Extension,
		SizeBytes:       fDomain.SizeBytes,
		DurationSeconds: fDomain.DurationSeconds,
		Width:           fDomain.Width,
		Height:          fDomain.Height,
		OwnerID:         fDomain.OwnerID,
		DownloadCount:   fDomain.DownloadCount,
		ViewCount:       fDomain.ViewCount,
		ShareExpiresAt:  fDomain.ShareExpiresAt,
		CreatedAt:       fDomain.CreatedAt,
		ShareURL:        shareURL,
	}

	return f
}

func ToResponseFileRecords(fDomain domain.FileRecords, shareURL func(id string) string) FileRecords {
	fs := make(FileRecords, len(fDomain))
	for idx, f := range fDomain {
		fs[idx] = ToResponseFileRecord(*f, shareURL(f.ID))
	}

	return fs
}
