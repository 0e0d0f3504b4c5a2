package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-custody-api/config"
	"file-custody-api/internal/application/ports"
	"file-custody-api/internal/application/services"
	domain "file-custody-api/internal/domain/file"
	"file-custody-api/internal/infrastructure/jwt"
	"file-custody-api/internal/infrastructure/telegram"
	"file-custody-api/internal/interface/api/rest/dto/file"
	"file-custody-api/internal/interface/api/rest/middleware"
	"file-custody-api/internal/interface/api/rest/validator"
)

type FileController struct {
	custodyService ports.CustodyService
	userService    ports.UserService
	cfg            *config.Config
	logger         *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	custodyService ports.CustodyService,
	userService ports.UserService,
	cfg *config.Config,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		custodyService: custodyService,
		userService:    userService,
		cfg:            cfg,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.POST(RouteFiles, auth, fc.RegisterFileHandler)
	r.GET(RouteFile, fc.ResolveFileHandler)
	r.DELETE(RouteFile, auth, fc.DeleteFileHandler)
	r.POST(RouteFileViews, fc.RecordViewHandler)
	r.POST(RouteFileDownloads, fc.RecordDownloadHandler)
	r.POST(RouteFileTransfer, auth, fc.TransferFileHandler)
	r.PUT(RouteFileExpiry, auth, fc.SetExpiryHandler)
	r.POST(RouteFileShares, auth, fc.CreateShareLinkHandler)
	r.GET(RouteUserFiles, auth, fc.GetUserFilesHandler)

	return fc
}

func (fc *FileController) RegisterFileHandler(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req file.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRegister(req, fc.cfg.MaxFileSizeBytes()); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	rec, err := fc.custodyService.RegisterUpload(c.Request.Context(), domain.Upload{
		BlobRef:          req.BlobRef,
		Name:             req.Name,
		Kind:             domain.Kind(req.Kind),
		MimeType:         req.MimeType,
		SizeBytes:        req.SizeBytes,
		DurationSeconds:  req.DurationSeconds,
		Width:            req.Width,
		Height:           req.Height,
		OwnerID:          callerID,
		OwnerDisplayName: middleware.CallerDisplayName(c),
	})
	if err != nil {
		fc.writeServiceError(c, "RegisterUpload", err)
		return
	}

	if err = fc.userService.AdjustStorage(c.Request.Context(), callerID, rec.SizeBytes); err != nil {
		// the record exists either way; accounting drift is tolerable
		fc.logger.Error("AdjustStorage() error after register",
			zap.Int64("user_id", callerID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, file.ToResponseFileRecord(*rec, fc.cfg.ShareURL(rec.ID)))
}

func (fc *FileController) ResolveFileHandler(c *gin.Context) {
	token := c.Param("file_id")
	if !validator.IsShareToken(token) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a file id or share code"})
		return
	}

	rec, err := fc.custodyService.Resolve(c.Request.Context(), token)
	if err != nil {
		fc.writeServiceError(c, "Resolve", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFileRecord(*rec, fc.cfg.ShareURL(rec.ID)))
}

func (fc *FileController) RecordViewHandler(c *gin.Context) {
	id := c.Param("file_id")
	if !validator.IsFileID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid file id"})
		return
	}

	if err := fc.custodyService.RecordView(c.Request.Context(), id); err != nil {
		fc.writeServiceError(c, "RecordView", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) RecordDownloadHandler(c *gin.Context) {
	id := c.Param("file_id")
	if !validator.IsFileID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid file id"})
		return
	}

	if err := fc.custodyService.RecordDownload(c.Request.Context(), id); err != nil {
		fc.writeServiceError(c, "RecordDownload", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) TransferFileHandler(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	id := c.Param("file_id")
	if !validator.IsFileID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid file id"})
		return
	}

	rec, err := fc.custodyService.TransferOnAccess(
		c.Request.Context(), id, callerID, middleware.CallerDisplayName(c),
	)
	if err != nil {
		fc.writeServiceError(c, "TransferOnAccess", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFileRecord(*rec, fc.cfg.ShareURL(rec.ID)))
}

func (fc *FileController) SetExpiryHandler(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	id := c.Param("file_id")
	if !validator.IsFileID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid file id"})
		return
	}

	var req file.ExpiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateExpiry(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	expiresAt, err := fc.custodyService.SetShareExpiry(
		c.Request.Context(), id, callerID, time.Duration(req.DurationSeconds)*time.Second,
	)
	if err != nil {
		fc.writeServiceError(c, "SetShareExpiry", err)
		return
	}

	c.JSON(http.StatusOK, file.ExpiryResponse{
		Permanent: expiresAt == nil,
		ExpiresAt: expiresAt,
	})
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	id := c.Param("file_id")
	if !validator.IsFileID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid file id"})
		return
	}

	rec, err := fc.custodyService.Delete(c.Request.Context(), id, callerID)
	if err != nil {
		fc.writeServiceError(c, "Delete", err)
		return
	}

	if err = fc.userService.AdjustStorage(c.Request.Context(), rec.OwnerID, -rec.SizeBytes); err != nil {
		fc.logger.Error("AdjustStorage() error after delete",
			zap.Int64("user_id", rec.OwnerID), zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) CreateShareLinkHandler(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	id := c.Param("file_id")
	if !validator.IsFileID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_id must be a valid file id"})
		return
	}

	var req file.ShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateShareLink(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	link, err := fc.custodyService.CreateShareLink(c.Request.Context(), id, callerID, req.Days)
	if err != nil {
		fc.writeServiceError(c, "CreateShareLink", err)
		return
	}

	c.JSON(http.StatusCreated, file.ShareLinkResponse{
		Code:      link.Code,
		ShareURL:  fc.cfg.ShareURL(link.Code),
		ExpiresAt: link.ExpiresAt,
	})
}

func (fc *FileController) GetUserFilesHandler(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	userID, ok := validator.ValidateUserID(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
		return
	}
	if userID != callerID && !middleware.CallerIsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	limit, ok := validator.ValidateLimit(c.Query("limit"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	files, err := fc.custodyService.ListOwned(c.Request.Context(), userID, limit)
	if err != nil {
		fc.writeServiceError(c, "ListOwned", err)
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{
		Data: file.ToResponseFileRecords(files, fc.cfg.ShareURL),
	})
}

// writeServiceError maps engine and transport failures onto HTTP statuses.
// Unknown errors are logged here and surfaced as a bare 500.
func (fc *FileController) writeServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidUpload), errors.Is(err, services.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, telegram.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "blob transport timed out"})
	case errors.Is(err, telegram.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "blob transport unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		fc.logger.Error(op+"() error", zap.Error(err))
	}
}
