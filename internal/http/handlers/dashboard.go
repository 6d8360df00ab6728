package handlers

import (
	"net/http"

	"reseller-console/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/summary
// Accepts the same filters as /api/orders, without pagination.
func (a *API) DashboardSummary(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.DashboardService{Orders: a.Orders, Partners: a.Partners}
	sum, err := svc.Summary(c.Request.Context(), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	byModel := make(map[string]TotalsDTO, len(sum.ByModel))
	for m, t := range sum.ByModel {
		byModel[string(m)] = totalsDTO(t)
	}
	c.JSON(http.StatusOK, gin.H{
		"totals":      totalsDTO(sum.Totals),
		"byModel":     byModel,
		"byStatus":    sum.ByStatus,
		"topPartners": partnerTotalsDTOs(sum.TopPartners),
	})
}
