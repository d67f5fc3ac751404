package http

import (
	"net/http"

	"vibes-backend/domain/dto"
	"vibes-backend/usecase"

	"github.com/gin-gonic/gin"
)

// IUserHandler defines the interface for admin account HTTP handlers
type IUserHandler interface {
	Login(ctx *gin.Context)
	Register(ctx *gin.Context)
}

// UserHandler implements the admin account HTTP handlers
type UserHandler struct {
	userUseCase usecase.IUserUseCase
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.IUserUseCase) IUserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp, err := h.userUseCase.Login(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credentials"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
}

// Register handles POST /api/admin/users
func (h *UserHandler) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, err := h.userUseCase.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}
