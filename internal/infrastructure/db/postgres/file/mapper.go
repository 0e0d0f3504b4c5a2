package file

import (
	domain "file-custody-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.FileRecord {
	var f = &domain.FileRecord{
		ID:            model.ID,
		BlobRef:       model.BlobRef,
		BlobUniqueRef: model.BlobUniqueRef,
		Name:          model.Name,
		MimeType:      model.MimeType,
		Extension:     model.Extension,
		Kind:          domain.Kind(model.Kind),

		SizeBytes:       model.SizeBytes,
		DurationSeconds: model.DurationSeconds,
		Width:           model.Width,
		Height:          model.Height,

		ChannelID: model.ChannelID,
		MessageID: model.MessageID,

		OwnerID:          model.OwnerID,
		OwnerDisplayName: model.OwnerDisplayName,

		DownloadCount: model.DownloadCount,
		ViewCount:     model.ViewCount,

		Active:         model.IsActive,
		ShareExpiresAt: model.ShareExpiresAt,
		CreatedAt:      model.CreatedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.FileRecords {
	fs := make(domain.FileRecords, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}

func fromDBShareLink(model *ShareLink) *domain.ShareLink {
	return &domain.ShareLink{
		Code:          model.Code,
		FileID:        model.FileID,
		CreatorID:     model.CreatorID,
		DownloadCount: model.DownloadCount,
		Active:        model.IsActive,
		ExpiresAt:     model.ExpiresAt,
		CreatedAt:     model.CreatedAt,
	}
}
