package handlers

import (
	"net/http"
	"strings"

	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"
	"reseller-console/internal/repositories"
	"reseller-console/internal/services"
	"reseller-console/internal/utils"

	"github.com/gin-gonic/gin"
)

// orderFilterFromQuery reads businessModel, status, partnerId, keyword, from and to.
func orderFilterFromQuery(c *gin.Context) (repositories.OrderFilter, error) {
	f := repositories.OrderFilter{
		BusinessModel: models.BusinessModel(strings.ToLower(utils.TrimOrEmpty(c.Query("businessModel")))),
		Status:        utils.TrimOrEmpty(c.Query("status")),
		Keyword:       utils.NormalizeSpace(c.Query("keyword")),
		From:          utils.TrimOrEmpty(c.Query("from")),
		To:            utils.TrimOrEmpty(c.Query("to")),
	}
	switch f.BusinessModel {
	case "", models.ModelSaaS, models.ModelMCP, models.ModelAffiliate:
	default:
		return f, domain.ValidationError{Field: "businessModel", Msg: "must be saas, mcp or affiliate"}
	}
	for name, v := range map[string]string{"from": f.From, "to": f.To} {
		if v == "" {
			continue
		}
		if _, err := utils.ParseDate(v); err != nil {
			return f, domain.ValidationError{Field: name, Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	partnerID, err := queryInt64(c, "partnerId")
	if err != nil {
		return f, err
	}
	f.PartnerID = partnerID
	return f, nil
}

// GET /api/orders
func (a *API) ListOrders(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := queryPagination(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.OrderService{Orders: a.Orders, Partners: a.Partners}
	res, err := svc.List(c.Request.Context(), services.OrderListFilter{OrderFilter: filter, Pagination: page})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      orderCommissionDTOs(res.Items),
		"pagination": res.Pagination,
		"pageTotals": totalsDTO(res.PageTotals),
	})
}

// GET /api/orders/:id
func (a *API) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	oc, err := a.commissionService(c).ForOrder(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderCommissionDTO(oc))
}

// GET /api/orders/:id/commission
// With ?strict=1 an order missing P2, P0 or its business model is rejected.
func (a *API) GetOrderCommission(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc := a.commissionService(c)
	var (
		oc  services.OrderCommission
		err error
	)
	if queryBool(c, "strict") {
		oc, err = svc.ForOrderStrict(c.Request.Context(), id)
	} else {
		oc, err = svc.ForOrder(c.Request.Context(), id)
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orderId":       oc.Order.ID,
		"orderNo":       oc.Order.OrderNo,
		"businessModel": oc.Order.BusinessModel,
		"commission":    commissionDTO(oc.Result),
	})
}

// GET /api/orders/by-no/:orderNo/commission
func (a *API) GetOrderCommissionByNo(c *gin.Context) {
	orderNo := utils.TrimOrEmpty(c.Param("orderNo"))
	if orderNo == "" {
		respondError(c, http.StatusBadRequest, "invalid_orderNo", "invalid orderNo", nil)
		return
	}
	oc, err := a.commissionService(c).ForOrderNo(c.Request.Context(), orderNo)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderCommissionDTO(oc))
}

// GET /api/orders/:id/nightly
func (a *API) GetOrderNightly(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	on, err := a.commissionService(c).Nightly(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, nightlyDTO(on))
}
