package handlers

import (
	"net/http"

	"reseller-console/internal/domain/models"
	"reseller-console/internal/http/middleware"
	"reseller-console/internal/repositories"
	"reseller-console/internal/services"
	"reseller-console/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/settlements?partnerId=&status=
func (a *API) ListSettlements(c *gin.Context) {
	partnerID, err := queryInt64(c, "partnerId")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	filter := repositories.SettlementFilter{
		PartnerID: partnerID,
		Status:    utils.TrimOrEmpty(c.Query("status")),
	}
	items, err := a.settlementService(c).List(c.Request.Context(), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if items == nil {
		items = []models.SettlementBatch{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GET /api/settlements/:id
func (a *API) GetSettlement(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sum, err := a.settlementService(c).Summary(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	missing := sum.MissingOrderIDs
	if missing == nil {
		missing = []int64{}
	}
	c.JSON(http.StatusOK, gin.H{
		"batch":           sum.Batch,
		"partner":         sum.Partner,
		"orders":          orderCommissionDTOs(sum.Orders),
		"totals":          totalsDTO(sum.Totals),
		"byPartner":       partnerTotalsDTOs(sum.ByPartner),
		"missingOrderIds": missing,
	})
}

// GET /api/settlements/:id/statement returns the PDF statement inline.
func (a *API) GetSettlementStatement(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{
		Settlements: a.settlementService(c),
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateStatement(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
