package handlers

import (
	"net/http"

	"reseller-console/internal/domain/models"
	"reseller-console/internal/repositories"
	"reseller-console/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/partners?tier=&parentId=&keyword=
func (a *API) ListPartners(c *gin.Context) {
	parentID, err := queryInt64(c, "parentId")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	filter := repositories.PartnerFilter{
		Tier:     utils.TrimOrEmpty(c.Query("tier")),
		ParentID: parentID,
		Keyword:  utils.NormalizeSpace(c.Query("keyword")),
	}
	items, err := a.Partners.List(c.Request.Context(), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if items == nil {
		items = []models.Partner{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GET /api/partners/:id
func (a *API) GetPartner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := a.Partners.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
