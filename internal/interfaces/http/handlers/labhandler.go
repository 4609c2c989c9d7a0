package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lotledger/internal/application/lab/usecases"
	"lotledger/internal/shared/constants"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type LabHandler struct {
	beginAnalysisUC      *usecases.BeginAnalysisUseCase
	submitAnalysisUC     *usecases.SubmitAnalysisUseCase
	getAnalysisUC        *usecases.GetAnalysisUseCase
	listAnalysesUC       *usecases.ListAnalysesUseCase
	reprintCertificateUC *usecases.ReprintCertificateUseCase
	logger               logger.Interface
}

func NewLabHandler(
	beginAnalysisUC *usecases.BeginAnalysisUseCase,
	submitAnalysisUC *usecases.SubmitAnalysisUseCase,
	getAnalysisUC *usecases.GetAnalysisUseCase,
	listAnalysesUC *usecases.ListAnalysesUseCase,
	reprintCertificateUC *usecases.ReprintCertificateUseCase,
	logger logger.Interface,
) *LabHandler {
	return &LabHandler{
		beginAnalysisUC:      beginAnalysisUC,
		submitAnalysisUC:     submitAnalysisUC,
		getAnalysisUC:        getAnalysisUC,
		listAnalysesUC:       listAnalysesUC,
		reprintCertificateUC: reprintCertificateUC,
		logger:               logger,
	}
}

type SubmitAnalysisRequest struct {
	AnalysisNumber   string            `json:"analysis_number"`
	Results          map[string]string `json:"results" binding:"required"`
	Conclusion       string            `json:"conclusion" binding:"required,conclusion"`
	BibliographicRef string            `json:"bibliographic_ref"`
	ReanalysisDate   string            `json:"reanalysis_date" binding:"omitempty,dateonly"`
	Observations     string            `json:"observations"`
}

// BeginAnalysis returns the analysis worksheet for a sampled lot: the
// material's test profile with the fields the analyst must fill in.
func (h *LabHandler) BeginAnalysis(c *gin.Context) {
	lotID, err := utils.ParseUintParam(c, "id", "lot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.beginAnalysisUC.Execute(c.Request.Context(), lotID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LabHandler) SubmitAnalysis(c *gin.Context) {
	lotID, err := utils.ParseUintParam(c, "id", "lot")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubmitAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	var reanalysisDate *time.Time
	if req.ReanalysisDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReanalysisDate)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("reanalysis_date must be YYYY-MM-DD"))
			return
		}
		reanalysisDate = &parsed
	}

	result, err := h.submitAnalysisUC.Execute(c.Request.Context(), usecases.SubmitAnalysisCommand{
		LotID:            lotID,
		AnalysisNumber:   req.AnalysisNumber,
		Results:          req.Results,
		Conclusion:       req.Conclusion,
		BibliographicRef: req.BibliographicRef,
		ReanalysisDate:   reanalysisDate,
		Observations:     req.Observations,
		Actor:            c.GetString(constants.ContextKeyUsername),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.CertificatePath == "" {
		utils.SuccessResponseWithWarning(c, http.StatusCreated,
			"analysis recorded but certificate rendering failed; reprint to recover", result)
		return
	}

	utils.CreatedResponse(c, result, "analysis recorded")
}

func (h *LabHandler) GetAnalysis(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id", "analysis")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAnalysisUC.Execute(c.Request.Context(), analysisID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *LabHandler) ListAnalyses(c *gin.Context) {
	p := utils.ParsePagination(c)

	var lotID uint
	if raw := c.Query("lot_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid lot_id"))
			return
		}
		lotID = uint(parsed)
	}

	result, err := h.listAnalysesUC.Execute(c.Request.Context(), usecases.ListAnalysesQuery{
		LotID:    lotID,
		Analyst:  c.Query("analyst"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Analyses, result.Total, p.Page, p.PageSize)
}

// ReprintCertificate regenerates the certificate for an analysis already on
// record and streams the document back. No data changes and nothing new
// enters the audit trail.
func (h *LabHandler) ReprintCertificate(c *gin.Context) {
	analysisID, err := utils.ParseUintParam(c, "id", "analysis")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	path, err := h.reprintCertificateUC.Execute(c.Request.Context(), analysisID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header(constants.HeaderContentType, constants.ContentTypePDF)
	c.Header("Content-Disposition", "attachment; filename="+filepath.Base(path))
	c.File(path)
}
