package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lotledger/internal/application/inventory/usecases"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type LotHandler struct {
	receiveLotUC *usecases.ReceiveLotUseCase
	sampleLotUC  *usecases.SampleLotUseCase
	getLotUC     *usecases.GetLotUseCase
	listLotsUC   *usecases.ListLotsUseCase
	logger       logger.Interface
}

func NewLotHandler(
	receiveLotUC *usecases.ReceiveLotUseCase,
	sampleLotUC *usecases.SampleLotUseCase,
	getLotUC *usecases.GetLotUseCase,
	listLotsUC *usecases.ListLotsUseCase,
	logger logger.Interface,
) *LotHandler {
	return &LotHandler{
		receiveLotUC: receiveLotUC,
		sampleLotUC:  sampleLotUC,
		getLotUC:     getLotUC,
		listLotsUC:   listLotsUC,
		logger:       logger,
	}
}

type ReceiveLotRequest struct {
	MaterialID   uint    `json:"material_id" binding:"required"`
	InternalLot  string  `json:"internal_lot" binding:"required"`
	VendorLot    string  `json:"vendor_lot" binding:"required"`
	Manufacturer string  `json:"manufacturer" binding:"required"`
	Supplier     string  `json:"supplier"`
	ExpiryDate   string  `json:"expiry_date" binding:"required,dateonly"`
	Quantity     float64 `json:"quantity" binding:"required"`
}

type SampleLotRequest struct {
	ContainerCount int     `json:"container_count" binding:"required"`
	MassRemoved    float64 `json:"mass_removed" binding:"required"`
}

func (h *LotHandler) ReceiveLot(c *gin.Context) {
	var req ReceiveLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("expiry_date must be YYYY-MM-DD"))
		return
	}

	result, err := h.receiveLotUC.Execute(c.Request.Context(), usecases.ReceiveLotCommand{
		MaterialID:   req.MaterialID,
		InternalLot:  req.InternalLot,
		VendorLot:    req.VendorLot,
		Manufacturer: req.Manufacturer,
		Supplier:     req.Supplier,
		ExpiryDate:   expiryDate,
		Quantity:     req.Quantity,
		Actor:        c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "lot received into quarantine")
}

func (h *LotHandler) SampleLot(c *gin.Context) {
	lotID, err := utils.ParseUintParam(c, "id", "lot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SampleLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.sampleLotUC.Execute(c.Request.Context(), usecases.SampleLotCommand{
		LotID:          lotID,
		ContainerCount: req.ContainerCount,
		MassRemoved:    req.MassRemoved,
		Actor:          c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "lot sampled", result)
}

func (h *LotHandler) GetLot(c *gin.Context) {
	lotID, err := utils.ParseUintParam(c, "id", "lot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getLotUC.Execute(c.Request.Context(), lotID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LotHandler) ListLots(c *gin.Context) {
	p := utils.ParsePagination(c)

	var materialID uint
	if raw := c.Query("material_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid material_id"))
			return
		}
		materialID = uint(parsed)
	}

	inStock, _ := strconv.ParseBool(c.DefaultQuery("in_stock", "false"))

	result, err := h.listLotsUC.Execute(c.Request.Context(), usecases.ListLotsQuery{
		MaterialID: materialID,
		Status:     c.Query("status"),
		InStock:    inStock,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Lots, result.Total, p.Page, p.PageSize)
}
