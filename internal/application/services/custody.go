package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"file-custody-api/internal/application/ports"
	domain "file-custody-api/internal/domain/file"
	fileDB "file-custody-api/internal/infrastructure/db/postgres/file"
	"file-custody-api/internal/infrastructure/ids"
	"file-custody-api/internal/infrastructure/mq"
	dto "file-custody-api/internal/interface/api/rest/dto/file"
)

var (
	ErrInvalidUpload   = errors.New("invalid upload metadata")
	ErrInvalidDuration = errors.New("share duration must not be negative")
)

const (
	// attempts before giving up on a fresh random id; a second collision in a
	// row is already vanishingly unlikely
	idInsertAttempts = 3

	defaultListLimit = 30
	maxListLimit     = 100
)

type CustodyService struct {
	transport     ports.BlobTransport
	fileRepo      domain.Repository
	shareLinkRepo domain.ShareLinkRepository
	mq            ports.RabbitMQ
	mCounter      *prometheus.CounterVec
	logger        *zap.Logger
}

func NewCustodyService(
	transport ports.BlobTransport,
	fileRepo domain.Repository,
	shareLinkRepo domain.ShareLinkRepository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.CustodyService {
	return &CustodyService{
		transport:     transport,
		fileRepo:      fileRepo,
		shareLinkRepo: shareLinkRepo,
		mq:            rbMQ,
		mCounter:      mCounter,
		logger:        logger,
	}
}

func validateUpload(up *domain.Upload) error {
	if up.BlobRef == "" {
		return fmt.Errorf("%w: blob_ref is required", ErrInvalidUpload)
	}
	if up.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidUpload)
	}
	if up.SizeBytes < 0 {
		return fmt.Errorf("%w: size_bytes must not be negative", ErrInvalidUpload)
	}
	if up.Kind == "" {
		up.Kind = domain.KindForName(up.Name)
	}
	if !up.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidUpload, up.Kind)
	}
	return nil
}

// RegisterUpload persists the payload to the custody channel, then writes a
// FileRecord bound to the returned reference. Not idempotent: every call
// creates a new record, and an ambiguous transport failure is surfaced as-is
// rather than retried.
func (cs *CustodyService) RegisterUpload(ctx context.Context, up domain.Upload) (*domain.FileRecord, error) {
	if err := validateUpload(&up); err != nil {
		return nil, err
	}

	name := sanitizeFileName(up.Name)
	caption := fmt.Sprintf("%s\n\nuploaded by %s (ID: %d)", name, up.OwnerDisplayName, up.OwnerID)

	stored, err := cs.transport.Store(ctx, up.Kind, up.BlobRef, caption)
	if err != nil {
		return nil, err
	}

	rec := &domain.FileRecord{
		BlobRef:       stored.BlobRef,
		BlobUniqueRef: stored.BlobUniqueRef,
		Name:          name,
		MimeType:      up.MimeType,
		Extension:     domain.ExtensionFor(name, up.MimeType),
		Kind:          up.Kind,

		SizeBytes:       up.SizeBytes,
		DurationSeconds: up.DurationSeconds,
		Width:           up.Width,
		Height:          up.Height,

		ChannelID: stored.ChannelID,
		MessageID: stored.MessageID,

		OwnerID:          up.OwnerID,
		OwnerDisplayName: up.OwnerDisplayName,
	}

	out, err := cs.insertWithFreshID(ctx, rec)
	if err != nil {
		return nil, err
	}

	cs.publish(mq.ActionRegistered, out)
	cs.mCounter.WithLabelValues("files_registered_total").Inc()

	return out, nil
}

func (cs *CustodyService) insertWithFreshID(ctx context.Context, rec *domain.FileRecord) (*domain.FileRecord, error) {
	var err error
	for attempt := 0; attempt < idInsertAttempts; attempt++ {
		rec.ID = ids.NewFileID()

		var out *domain.FileRecord
		out, err = cs.fileRepo.Insert(ctx, rec)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, fileDB.ErrIDAlreadyExists) {
			return nil, err
		}
		cs.logger.Warn("file id collision, regenerating", zap.String("file_id", rec.ID))
	}

	return nil, fmt.Errorf("file id generation kept colliding: %w", err)
}

// Resolve tries the token as a FileRecord id first, then as a legacy share
// code. The two strategies stay distinct because old external links depend on
// the code format remaining resolvable; a legacy hit also counts as a
// download, the way the old link format did.
func (cs *CustodyService) Resolve(ctx context.Context, token string) (*domain.FileRecord, error) {
	rec, err := cs.fileRepo.FetchVisible(ctx, token)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	rec, err = cs.shareLinkRepo.ResolveCode(ctx, token)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}

	return rec, nil
}

func (cs *CustodyService) RecordView(ctx context.Context, id domain.ID) error {
	found, err := cs.fileRepo.IncrementView(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func (cs *CustodyService) RecordDownload(ctx context.Context, id domain.ID) error {
	found, err := cs.fileRepo.IncrementDownload(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// TransferOnAccess implements the clone-on-access rule: a non-owner opening a
// shared record gets an independent FileRecord pointing at the same blob, so
// the original owner's later deletion or expiry cannot touch the copy. The
// owner gets the original id back unchanged.
func (cs *CustodyService) TransferOnAccess(ctx context.Context, id domain.ID, requesterID int64, requesterDisplayName string) (*domain.FileRecord, error) {
	rec, err := cs.fileRepo.FetchVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if rec.OwnerID == requesterID {
		return rec, nil
	}

	var clone *domain.FileRecord
	for attempt := 0; attempt < idInsertAttempts; attempt++ {
		clone, err = cs.fileRepo.Clone(ctx, id, ids.NewFileID(), requesterID, requesterDisplayName)
		if err == nil {
			break
		}
		if !errors.Is(err, fileDB.ErrIDAlreadyExists) {
			return nil, err
		}
	}
	if err != nil {
		return nil, fmt.Errorf("file id generation kept colliding: %w", err)
	}
	if clone == nil {
		// original vanished between the read and the copy
		return nil, domain.ErrNotFound
	}

	cs.publish(mq.ActionTransferred, clone)
	cs.mCounter.WithLabelValues("files_transferred_total").Inc()

	return clone, nil
}

// SetShareExpiry sets (or, with duration 0, clears) the share deadline.
// Returns the effective expiry instant, nil meaning permanent.
func (cs *CustodyService) SetShareExpiry(ctx context.Context, id domain.ID, requesterID int64, duration time.Duration) (*time.Time, error) {
	if duration < 0 {
		return nil, ErrInvalidDuration
	}

	rec, err := cs.fileRepo.FetchVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if rec.OwnerID != requesterID {
		return nil, domain.ErrPermissionDenied
	}

	var expiresAt *time.Time
	if duration > 0 {
		t := time.Now().Add(duration)
		expiresAt = &t
	}

	found, err := cs.fileRepo.SetShareExpiry(ctx, id, expiresAt)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	return expiresAt, nil
}

// Delete soft-deletes the record after issuing a remote delete against the
// blob transport. The remote delete is deliberately best-effort: a clone may
// already have taken the message away, and a missing blob must never block
// metadata deletion. The deleted record is returned so the caller can credit
// the owner's storage usage; the engine itself does not touch user records.
func (cs *CustodyService) Delete(ctx context.Context, id domain.ID, requesterID int64) (*domain.FileRecord, error) {
	rec, err := cs.fileRepo.FetchVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if rec.OwnerID != requesterID {
		return nil, domain.ErrPermissionDenied
	}

	if err = cs.transport.Delete(ctx, rec.ChannelID, rec.MessageID); err != nil {
		cs.logger.Warn("remote blob delete failed, proceeding with metadata delete",
			zap.String("file_id", id),
			zap.Int64("channel_id", rec.ChannelID),
			zap.Int64("message_id", rec.MessageID),
			zap.Error(err),
		)
	}

	found, err := cs.fileRepo.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		// a concurrent delete got there first
		return nil, domain.ErrNotFound
	}

	cs.publish(mq.ActionDeleted, rec)
	cs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return rec, nil
}

func (cs *CustodyService) ListOwned(ctx context.Context, ownerID int64, limit int) (domain.FileRecords, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return cs.fileRepo.FetchByOwner(ctx, ownerID, limit)
}

// CreateShareLink issues a legacy short code for a record. New shares use the
// record id directly; this path exists for clients still on the old format.
func (cs *CustodyService) CreateShareLink(ctx context.Context, id domain.ID, creatorID int64, days int) (*domain.ShareLink, error) {
	rec, err := cs.fileRepo.FetchVisible(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if rec.OwnerID != creatorID {
		return nil, domain.ErrPermissionDenied
	}

	var expiresAt *time.Time
	if days > 0 {
		t := time.Now().AddDate(0, 0, days)
		expiresAt = &t
	}

	var out *domain.ShareLink
	for attempt := 0; attempt < idInsertAttempts; attempt++ {
		out, err = cs.shareLinkRepo.Insert(ctx, &domain.ShareLink{
			Code:      ids.NewShareCode(),
			FileID:    id,
			CreatorID: creatorID,
			ExpiresAt: expiresAt,
		})
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, fileDB.ErrIDAlreadyExists) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("share code generation kept colliding: %w", err)
}

func (cs *CustodyService) publish(action string, rec *domain.FileRecord) {
	cs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		OwnerID: rec.OwnerID,
		Payload: dto.ToResponseFileRecord(*rec, ""),
	}
}
