package file

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "file-custody-api/internal/domain/file"
)

var fileCols = []string{
	"id", "blob_ref", "blob_unique_ref", "name", "mime_type", "extension", "kind",
	"size_bytes", "duration_seconds", "width", "height", "channel_id", "message_id",
	"owner_id", "owner_display_name", "download_count", "view_count",
	"is_active", "share_expires_at", "created_at",
}

func fileRow(mock pgxmock.PgxPoolIface, id string, ownerID int64) *pgxmock.Rows {
	return mock.NewRows(fileCols).AddRow(
		id, "srv-ref", "uniq-ref", "report.pdf", "application/pdf", "pdf", "document",
		int64(2048), (*int32)(nil), (*int32)(nil), (*int32)(nil), int64(-100123), int64(7),
		ownerID, "Alice", int64(0), int64(0),
		true, (*time.Time)(nil), time.Now(),
	)
}

func newFileRepo(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &Repository{db: mock}
}

func TestRepository_FetchVisible(t *testing.T) {
	mock, repo := newFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectFileVisible)).
		WithArgs("0123456789abcdef").
		WillReturnRows(fileRow(mock, "0123456789abcdef", 42))

	rec, err := repo.FetchVisible(context.Background(), "0123456789abcdef")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "0123456789abcdef", rec.ID)
	assert.Equal(t, domain.KindDocument, rec.Kind)
	assert.Equal(t, int64(42), rec.OwnerID)
	assert.True(t, rec.Active)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchVisible_NoRows(t *testing.T) {
	mock, repo := newFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectFileVisible)).
		WithArgs("0123456789abcdef").
		WillReturnError(pgx.ErrNoRows)

	rec, err := repo.FetchVisible(context.Background(), "0123456789abcdef")
	require.NoError(t, err, "a hidden record is not an error")
	assert.Nil(t, rec)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert_UniqueViolation(t *testing.T) {
	mock, repo := newFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Insert(context.Background(), &domain.FileRecord{ID: "0123456789abcdef"})
	require.ErrorIs(t, err, ErrIDAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Clone(t *testing.T) {
	mock, repo := newFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(CloneFile)).
		WithArgs("0123456789abcdef", "fedcba9876543210", int64(99), "Bob").
		WillReturnRows(fileRow(mock, "fedcba9876543210", 99))

	clone, err := repo.Clone(context.Background(), "0123456789abcdef", "fedcba9876543210", 99, "Bob")
	require.NoError(t, err)
	require.NotNil(t, clone)
	assert.Equal(t, "fedcba9876543210", clone.ID)
	assert.Equal(t, int64(99), clone.OwnerID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Clone_OriginalHidden(t *testing.T) {
	mock, repo := newFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(CloneFile)).
		WithArgs("0123456789abcdef", "fedcba9876543210", int64(99), "Bob").
		WillReturnError(pgx.ErrNoRows)

	clone, err := repo.Clone(context.Background(), "0123456789abcdef", "fedcba9876543210", 99, "Bob")
	require.NoError(t, err)
	assert.Nil(t, clone)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementView(t *testing.T) {
	mock, repo := newFileRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(IncrementFileView)).
		WithArgs("0123456789abcdef").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(IncrementFileView)).
		WithArgs("ffffffffffffffff").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := repo.IncrementView(context.Background(), "0123456789abcdef")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.IncrementView(context.Background(), "ffffffffffffffff")
	require.NoError(t, err)
	assert.False(t, found, "hidden records take no counter bumps")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SoftDelete(t *testing.T) {
	mock, repo := newFileRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(SoftDeleteFile)).
		WithArgs("0123456789abcdef").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(SoftDeleteFile)).
		WithArgs("0123456789abcdef").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := repo.SoftDelete(context.Background(), "0123456789abcdef")
	require.NoError(t, err)
	assert.True(t, found)

	// second delete hits an already-inactive row
	found, err = repo.SoftDelete(context.Background(), "0123456789abcdef")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetShareExpiry(t *testing.T) {
	mock, repo := newFileRepo(t)
	expiresAt := time.Now().Add(time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(SetFileShareExpiry)).
		WithArgs("0123456789abcdef", &expiresAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	found, err := repo.SetShareExpiry(context.Background(), "0123456789abcdef", &expiresAt)
	require.NoError(t, err)
	assert.True(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchByOwner(t *testing.T) {
	mock, repo := newFileRepo(t)

	rows := mock.NewRows(fileCols).
		AddRow(
			"0123456789abcdef", "srv-1", "uniq-1", "a.pdf", "", "pdf", "document",
			int64(1), (*int32)(nil), (*int32)(nil), (*int32)(nil), int64(-1), int64(1),
			int64(42), "Alice", int64(0), int64(0), true, (*time.Time)(nil), time.Now(),
		).
		AddRow(
			"fedcba9876543210", "srv-2", "uniq-2", "b.mp4", "", "mp4", "video",
			int64(2), (*int32)(nil), (*int32)(nil), (*int32)(nil), int64(-1), int64(2),
			int64(42), "Alice", int64(3), int64(1), true, (*time.Time)(nil), time.Now(),
		)

	mock.ExpectQuery(regexp.QuoteMeta(SelectFilesByOwner)).
		WithArgs(int64(42), 30).
		WillReturnRows(rows)

	files, err := repo.FetchByOwner(context.Background(), 42, 30)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, domain.KindVideo, files[1].Kind)
	assert.Equal(t, int64(3), files[1].DownloadCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShareLinkRepository_ResolveCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := &ShareLinkRepository{db: mock}

	mock.ExpectQuery(regexp.QuoteMeta(ResolveShareCode)).
		WithArgs("abc12345").
		WillReturnRows(fileRow(mock, "0123456789abcdef", 42))

	rec, err := repo.ResolveCode(context.Background(), "abc12345")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "0123456789abcdef", rec.ID)

	mock.ExpectQuery(regexp.QuoteMeta(ResolveShareCode)).
		WithArgs("gone0000").
		WillReturnError(pgx.ErrNoRows)

	rec, err = repo.ResolveCode(context.Background(), "gone0000")
	require.NoError(t, err)
	assert.Nil(t, rec)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShareLinkRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := &ShareLinkRepository{db: mock}

	cols := []string{"code", "file_id", "creator_id", "download_count", "is_active", "expires_at", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta(InsertShareLink)).
		WithArgs("abc12345", "0123456789abcdef", int64(42), (*time.Time)(nil)).
		WillReturnRows(mock.NewRows(cols).AddRow(
			"abc12345", "0123456789abcdef", int64(42), int64(0), true, (*time.Time)(nil), time.Now(),
		))

	link, err := repo.Insert(context.Background(), &domain.ShareLink{
		Code:      "abc12345",
		FileID:    "0123456789abcdef",
		CreatorID: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "abc12345", link.Code)
	assert.True(t, link.Active)

	mock.ExpectQuery(regexp.QuoteMeta(InsertShareLink)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = repo.Insert(context.Background(), &domain.ShareLink{Code: "abc12345"})
	require.ErrorIs(t, err, ErrIDAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}
