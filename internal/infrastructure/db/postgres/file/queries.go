package file

// Every write here is a single statement, so PostgreSQL gives each one its
// own commit-or-rollback unit and row-level serialization for free. Counter
// bumps are expressed as "n = n + 1" in SQL, never read-then-write in Go.
//
// The visibility predicate (active and unexpired) is evaluated at read time
// inside each statement; expired records are hidden, not deleted.

const fileColumns = `
		  id, blob_ref, blob_unique_ref, name, mime_type, extension, kind,
		  size_bytes, duration_seconds, width, height, channel_id, message_id,
		  owner_id, owner_display_name, download_count, view_count,
		  is_active, share_expires_at, created_at`

const visible = `is_active AND (share_expires_at IS NULL OR share_expires_at > now())`

const (
	SelectFileVisible = `
		SELECT` + fileColumns + `
		FROM files
		WHERE id = $1 AND ` + visible + `
	`
	SelectFileAny = `
		SELECT` + fileColumns + `
		FROM files
		WHERE id = $1
	`
	InsertFile = `
		INSERT INTO files (
		  id, blob_ref, blob_unique_ref, name, mime_type, extension, kind,
		  size_bytes, duration_seconds, width, height, channel_id, message_id,
		  owner_id, owner_display_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING` + fileColumns + `
	`
	SelectFilesByOwner = `
		SELECT` + fileColumns + `
		FROM files
		WHERE owner_id = $1 AND is_active
		ORDER BY created_at DESC
		LIMIT $2
	`
	// Clone-on-access: copy every transport/media column of a visible record
	// under a fresh id and owner, zero counters, no expiry. One statement, so
	// the copy can never observe a half-applied original.
	CloneFile = `
		INSERT INTO files (
		  id, blob_ref, blob_unique_ref, name, mime_type, extension, kind,
		  size_bytes, duration_seconds, width, height, channel_id, message_id,
		  owner_id, owner_display_name
		)
		SELECT
		  $2, blob_ref, blob_unique_ref, name, mime_type, extension, kind,
		  size_bytes, duration_seconds, width, height, channel_id, message_id,
		  $3, $4
		FROM files
		WHERE id = $1 AND ` + visible + `
		RETURNING` + fileColumns + `
	`
	IncrementFileView = `
		UPDATE files
		SET view_count = view_count + 1
		WHERE id = $1 AND ` + visible + `
	`
	IncrementFileDownload = `
		UPDATE files
		SET download_count = download_count + 1
		WHERE id = $1 AND ` + visible + `
	`
	SetFileShareExpiry = `
		UPDATE files
		SET share_expires_at = $2
		WHERE id = $1 AND ` + visible + `
	`
	SoftDeleteFile = `
		UPDATE files
		SET is_active = false
		WHERE id = $1 AND is_active
	`
	// Legacy path: resolve an old share code and count the resolution as a
	// download, the way the old link format did.
	ResolveShareCode = `
		UPDATE files
		SET download_count = files.download_count + 1
		FROM share_links sl
		WHERE sl.code = $1
		  AND sl.is_active AND (sl.expires_at IS NULL OR sl.expires_at > now())
		  AND files.id = sl.file_id
		  AND files.is_active AND (files.share_expires_at IS NULL OR files.share_expires_at > now())
		RETURNING
		  files.id, files.blob_ref, files.blob_unique_ref, files.name, files.mime_type,
		  files.extension, files.kind, files.size_bytes, files.duration_seconds,
		  files.width, files.height, files.channel_id, files.message_id,
		  files.owner_id, files.owner_display_name, files.download_count,
		  files.view_count, files.is_active, files.share_expires_at, files.created_at
	`
	InsertShareLink = `
		INSERT INTO share_links (code, file_id, creator_id, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING code, file_id, creator_id, download_count, is_active, expires_at, created_at
	`
)
