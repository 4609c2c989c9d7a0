package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lotledger/internal/application/user/usecases"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type AuthHandler struct {
	authenticateUC *usecases.AuthenticateUseCase
	logger         logger.Interface
}

func NewAuthHandler(authenticateUC *usecases.AuthenticateUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		authenticateUC: authenticateUC,
		logger:         logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}
