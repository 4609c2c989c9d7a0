package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lotledger/internal/application/correction/usecases"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type CorrectionHandler struct {
	correctLotUC      *usecases.CorrectLotUseCase
	correctAnalysisUC *usecases.CorrectAnalysisUseCase
	logger            logger.Interface
}

func NewCorrectionHandler(
	correctLotUC *usecases.CorrectLotUseCase,
	correctAnalysisUC *usecases.CorrectAnalysisUseCase,
	logger logger.Interface,
) *CorrectionHandler {
	return &CorrectionHandler{
		correctLotUC:      correctLotUC,
		correctAnalysisUC: correctAnalysisUC,
		logger:            logger,
	}
}

type CorrectLotRequest struct {
	Justification string   `json:"justification" binding:"required"`
	VendorLot     *string  `json:"vendor_lot"`
	Manufacturer  *string  `json:"manufacturer"`
	Supplier      *string  `json:"supplier"`
	Quantity      *float64 `json:"quantity"`
	ExpiryDate    *string  `json:"expiry_date" binding:"omitempty,dateonly"`
	Status        *string  `json:"status" binding:"omitempty,lotstatus"`
}

type CorrectAnalysisRequest struct {
	Justification    string            `json:"justification" binding:"required"`
	Results          map[string]string `json:"results"`
	Conclusion       *string           `json:"conclusion" binding:"omitempty,conclusion"`
	BibliographicRef *string           `json:"bibliographic_ref"`
	Observations     *string           `json:"observations"`
	ReanalysisDate   *string           `json:"reanalysis_date" binding:"omitempty,dateonly"`
}

func (h *CorrectionHandler) CorrectLot(c *gin.Context) {
	lotID, err := utils.ParseUintParam(c, "id", "lot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CorrectLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	expiryDate, err := parseOptionalDate(req.ExpiryDate, "expiry_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.correctLotUC.Execute(c.Request.Context(), usecases.CorrectLotCommand{
		LotID:         lotID,
		Justification: req.Justification,
		VendorLot:     req.VendorLot,
		Manufacturer:  req.Manufacturer,
		Supplier:      req.Supplier,
		Quantity:      req.Quantity,
		ExpiryDate:    expiryDate,
		Status:        req.Status,
		Actor:         c.GetString(constants.ContextKeyUsername),
		ActorRole:     c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "lot corrected", result)
}

func (h *CorrectionHandler) CorrectAnalysis(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id", "analysis")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CorrectAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	reanalysisDate, err := parseOptionalDate(req.ReanalysisDate, "reanalysis_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.correctAnalysisUC.Execute(c.Request.Context(), usecases.CorrectAnalysisCommand{
		AnalysisID:       analysisID,
		Justification:    req.Justification,
		Results:          req.Results,
		Conclusion:       req.Conclusion,
		BibliographicRef: req.BibliographicRef,
		Observations:     req.Observations,
		ReanalysisDate:   reanalysisDate,
		Actor:            c.GetString(constants.ContextKeyUsername),
		ActorRole:        c.GetString(constants.ContextKeyUserRole),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "analysis corrected", result)
}

func parseOptionalDate(raw *string, field string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, errors.NewValidationError(field + " must be YYYY-MM-DD")
	}
	return &parsed, nil
}
