package user

const (
	SelectUserByID = `
		SELECT id, username, display_name, is_admin, is_banned, storage_used_bytes, created_at
		FROM users
		WHERE id = $1
	`
	// Identity is created lazily on first interaction; the handles are
	// refreshed on every later one.
	UpsertUser = `
		INSERT INTO users (id, username, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    display_name = EXCLUDED.display_name
		RETURNING id, username, display_name, is_admin, is_banned, storage_used_bytes, created_at
	`
	SetUserBanned = `
		UPDATE users
		SET is_banned = $2
		WHERE id = $1
		RETURNING id, username, display_name, is_admin, is_banned, storage_used_bytes, created_at
	`
	// Decrements clamp at zero inside the statement so concurrent credits can
	// never drive the aggregate negative.
	AdjustUserStorage = `
		UPDATE users
		SET storage_used_bytes = GREATEST(0, storage_used_bytes + $2)
		WHERE id = $1
	`
)
