package handlers

import (
	"github.com/gin-gonic/gin"

	"lotledger/internal/application/audit/usecases"
	"lotledger/internal/shared/logger"
	"lotledger/internal/shared/utils"
)

type AuditHandler struct {
	listAuditUC *usecases.ListAuditUseCase
	logger      logger.Interface
}

func NewAuditHandler(listAuditUC *usecases.ListAuditUseCase, logger logger.Interface) *AuditHandler {
	return &AuditHandler{
		listAuditUC: listAuditUC,
		logger:      logger,
	}
}

func (h *AuditHandler) ListAudit(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listAuditUC.Execute(c.Request.Context(), usecases.ListAuditQuery{
		Actor:    c.Query("actor"),
		Action:   c.Query("action"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, p.Page, p.PageSize)
}
