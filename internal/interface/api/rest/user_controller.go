package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-custody-api/internal/application/ports"
	"file-custody-api/internal/infrastructure/jwt"
	"file-custody-api/internal/interface/api/rest/dto/user"
	"file-custody-api/internal/interface/api/rest/middleware"
	"file-custody-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	auth := middleware.AuthMiddleware(jwtService)

	r.GET(RouteUser, auth, uc.GetUserHandler)
	r.PUT(RouteUserBan, auth, uc.BanUserHandler)

	return uc
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	userID, ok := validator.ValidateUserID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) BanUserHandler(c *gin.Context) {
	if !middleware.CallerIsAdmin(c) {
		c.JSON(
			http.StatusForbidden,
			gin.H{"error": "permission denied"},
		)
		return
	}

	userID, ok := validator.ValidateUserID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a positive integer"},
		)
		return
	}

	var req user.BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	u, err := uc.userService.SetBanned(c.Request.Context(), userID, req.Banned)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update ban state"},
		)
		uc.logger.Error("SetBanned() error", zap.Error(err))
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
