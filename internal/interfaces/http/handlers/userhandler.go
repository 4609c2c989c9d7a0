package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lotledger/internal/application/user/usecases"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type UserHandler struct {
	createUserUC  *usecases.CreateUserUseCase
	listUsersUC   *usecases.ListUsersUseCase
	setUserLockUC *usecases.SetUserLockUseCase
	assignRoleUC  *usecases.AssignRoleUseCase
	logger        logger.Interface
}

func NewUserHandler(
	createUserUC *usecases.CreateUserUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	setUserLockUC *usecases.SetUserLockUseCase,
	assignRoleUC *usecases.AssignRoleUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC:  createUserUC,
		listUsersUC:   listUsersUC,
		setUserLockUC: setUserLockUC,
		assignRoleUC:  assignRoleUC,
		logger:        logger,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type SetUserLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username:  req.Username,
		FullName:  req.FullName,
		Password:  req.Password,
		Role:      req.Role,
		Actor:     c.GetString(constants.ContextKeyUsername),
		ActorRole: c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "user created")
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:      p.Page,
		PageSize:  p.PageSize,
		ActorRole: c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p.Page, p.PageSize)
}

func (h *UserHandler) SetUserLock(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetUserLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.setUserLockUC.Execute(c.Request.Context(), usecases.SetUserLockCommand{
		UserID:    userID,
		Locked:    *req.Locked,
		Actor:     c.GetString(constants.ContextKeyUsername),
		ActorRole: c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user lock updated", result)
}

func (h *UserHandler) AssignRole(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.assignRoleUC.Execute(c.Request.Context(), usecases.AssignRoleCommand{
		UserID:    userID,
		Role:      req.Role,
		Actor:     c.GetString(constants.ContextKeyUsername),
		ActorRole: c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role assigned", result)
}
