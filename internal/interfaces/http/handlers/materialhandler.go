package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lotledger/internal/application/catalog/usecases"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type MaterialHandler struct {
	createMaterialUC *usecases.CreateMaterialUseCase
	renameMaterialUC *usecases.RenameMaterialUseCase
	toggleMaterialUC *usecases.ToggleMaterialUseCase
	listMaterialsUC  *usecases.ListMaterialsUseCase
	logger           logger.Interface
}

func NewMaterialHandler(
	createMaterialUC *usecases.CreateMaterialUseCase,
	renameMaterialUC *usecases.RenameMaterialUseCase,
	toggleMaterialUC *usecases.ToggleMaterialUseCase,
	listMaterialsUC *usecases.ListMaterialsUseCase,
	logger logger.Interface,
) *MaterialHandler {
	return &MaterialHandler{
		createMaterialUC: createMaterialUC,
		renameMaterialUC: renameMaterialUC,
		toggleMaterialUC: toggleMaterialUC,
		listMaterialsUC:  listMaterialsUC,
		logger:           logger,
	}
}

type CreateMaterialRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type RenameMaterialRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createMaterialUC.Execute(c.Request.Context(), usecases.CreateMaterialCommand{
		Code:     req.Code,
		Name:     req.Name,
		Category: req.Category,
		Actor:    c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "material created")
}

func (h *MaterialHandler) RenameMaterial(c *gin.Context) {
	materialID, err := utils.ParseUintParam(c, "id", "material")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RenameMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.renameMaterialUC.Execute(c.Request.Context(), usecases.RenameMaterialCommand{
		MaterialID: materialID,
		Name:       req.Name,
		Actor:      c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "material updated", result)
}

func (h *MaterialHandler) ToggleMaterial(c *gin.Context) {
	materialID, err := utils.ParseUintParam(c, "id", "material")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleMaterialUC.Execute(c.Request.Context(), usecases.ToggleMaterialCommand{
		MaterialID: materialID,
		Actor:      c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "material status toggled", result)
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	p := utils.ParsePagination(c)
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	result, err := h.listMaterialsUC.Execute(c.Request.Context(), usecases.ListMaterialsQuery{
		ActiveOnly: activeOnly,
		Category:   c.Query("category"),
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Materials, result.Total, p.Page, p.PageSize)
}
