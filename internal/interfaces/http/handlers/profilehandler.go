package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lotledger/internal/application/catalog/usecases"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

// ProfileHandler manages standard tests and material test profiles.
type ProfileHandler struct {
	createStandardTestUC *usecases.CreateStandardTestUseCase
	listStandardTestsUC  *usecases.ListStandardTestsUseCase
	addProfileEntryUC    *usecases.AddProfileEntryUseCase
	removeProfileEntryUC *usecases.RemoveProfileEntryUseCase
	getProfileUC         *usecases.GetProfileUseCase
	logger               logger.Interface
}

func NewProfileHandler(
	createStandardTestUC *usecases.CreateStandardTestUseCase,
	listStandardTestsUC *usecases.ListStandardTestsUseCase,
	addProfileEntryUC *usecases.AddProfileEntryUseCase,
	removeProfileEntryUC *usecases.RemoveProfileEntryUseCase,
	getProfileUC *usecases.GetProfileUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		createStandardTestUC: createStandardTestUC,
		listStandardTestsUC:  listStandardTestsUC,
		addProfileEntryUC:    addProfileEntryUC,
		removeProfileEntryUC: removeProfileEntryUC,
		getProfileUC:         getProfileUC,
		logger:               logger,
	}
}

type CreateStandardTestRequest struct {
	Name   string `json:"name" binding:"required"`
	Method string `json:"method"`
}

type AddProfileEntryRequest struct {
	TestID        uint   `json:"test_id" binding:"required"`
	Specification string `json:"specification" binding:"required"`
}

func (h *ProfileHandler) CreateStandardTest(c *gin.Context) {
	var req CreateStandardTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createStandardTestUC.Execute(c.Request.Context(), usecases.CreateStandardTestCommand{
		Name:   req.Name,
		Method: req.Method,
		Actor:  c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "standard test created")
}

func (h *ProfileHandler) ListStandardTests(c *gin.Context) {
	result, err := h.listStandardTestsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ProfileHandler) AddProfileEntry(c *gin.Context) {
	materialID, err := utils.ParseUintParam(c, "id", "material")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddProfileEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.addProfileEntryUC.Execute(c.Request.Context(), usecases.AddProfileEntryCommand{
		MaterialID:    materialID,
		TestID:        req.TestID,
		Specification: req.Specification,
		Actor:         c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "test added to profile")
}

func (h *ProfileHandler) RemoveProfileEntry(c *gin.Context) {
	materialID, err := utils.ParseUintParam(c, "id", "material")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	testID, err := utils.ParseUintParam(c, "testId", "standard test")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.removeProfileEntryUC.Execute(c.Request.Context(), usecases.RemoveProfileEntryCommand{
		MaterialID: materialID,
		TestID:     testID,
		Actor:      c.GetString(constants.ContextKeyUsername),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	materialID, err := utils.ParseUintParam(c, "id", "material")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), materialID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
