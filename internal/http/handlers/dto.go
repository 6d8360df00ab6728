package handlers

import (
	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"
	"reseller-console/internal/services"
	"reseller-console/internal/utils"

	"github.com/shopspring/decimal"
)

// CommissionDTO carries exact amounts next to their display strings.
type CommissionDTO struct {
	TotalProfit             decimal.Decimal     `json:"totalProfit"`
	TotalProfitDisplay      string              `json:"totalProfit_display"`
	SmallBCommission        decimal.Decimal     `json:"smallBCommission"`
	SmallBCommissionDisplay string              `json:"smallBCommission_display"`
	BigBProfit              decimal.Decimal     `json:"bigBProfit"`
	BigBProfitDisplay       string              `json:"bigBProfit_display"`
	CommissionRate          decimal.NullDecimal `json:"commissionRate"`
	CommissionRateDisplay   string              `json:"commissionRate_display"`
}

func commissionDTO(r domain.CommissionResult) CommissionDTO {
	return CommissionDTO{
		TotalProfit:             r.TotalProfit,
		TotalProfitDisplay:      utils.FormatYuan(r.TotalProfit),
		SmallBCommission:        r.SmallBCommission,
		SmallBCommissionDisplay: utils.FormatYuan(r.SmallBCommission),
		BigBProfit:              r.BigBProfit,
		BigBProfitDisplay:       utils.FormatYuan(r.BigBProfit),
		CommissionRate:          r.CommissionRate,
		CommissionRateDisplay:   utils.FormatPercent(r.CommissionRate),
	}
}

type TotalsDTO struct {
	Orders                  int             `json:"orders"`
	GMV                     decimal.Decimal `json:"gmv"`
	GMVDisplay              string          `json:"gmv_display"`
	SupplierCost            decimal.Decimal `json:"supplierCost"`
	SupplierCostDisplay     string          `json:"supplierCost_display"`
	TotalProfit             decimal.Decimal `json:"totalProfit"`
	TotalProfitDisplay      string          `json:"totalProfit_display"`
	SmallBCommission        decimal.Decimal `json:"smallBCommission"`
	SmallBCommissionDisplay string          `json:"smallBCommission_display"`
	BigBProfit              decimal.Decimal `json:"bigBProfit"`
	BigBProfitDisplay       string          `json:"bigBProfit_display"`
}

func totalsDTO(t domain.Totals) TotalsDTO {
	return TotalsDTO{
		Orders:                  t.Orders,
		GMV:                     t.GMV,
		GMVDisplay:              utils.FormatYuan(t.GMV),
		SupplierCost:            t.SupplierCost,
		SupplierCostDisplay:     utils.FormatYuan(t.SupplierCost),
		TotalProfit:             t.TotalProfit,
		TotalProfitDisplay:      utils.FormatYuan(t.TotalProfit),
		SmallBCommission:        t.SmallBCommission,
		SmallBCommissionDisplay: utils.FormatYuan(t.SmallBCommission),
		BigBProfit:              t.BigBProfit,
		BigBProfitDisplay:       utils.FormatYuan(t.BigBProfit),
	}
}

type OrderCommissionDTO struct {
	Order      models.Order    `json:"order"`
	Partner    *models.Partner `json:"partner,omitempty"`
	Commission CommissionDTO   `json:"commission"`
}

func orderCommissionDTO(oc services.OrderCommission) OrderCommissionDTO {
	return OrderCommissionDTO{
		Order:      oc.Order,
		Partner:    oc.Partner,
		Commission: commissionDTO(oc.Result),
	}
}

func orderCommissionDTOs(rows []services.OrderCommission) []OrderCommissionDTO {
	out := make([]OrderCommissionDTO, 0, len(rows))
	for _, oc := range rows {
		out = append(out, orderCommissionDTO(oc))
	}
	return out
}

type PartnerTotalsDTO struct {
	PartnerID   int64     `json:"partnerId"`
	PartnerCode string    `json:"partnerCode"`
	PartnerName string    `json:"partnerName"`
	Totals      TotalsDTO `json:"totals"`
}

func partnerTotalsDTOs(rows []services.PartnerTotals) []PartnerTotalsDTO {
	out := make([]PartnerTotalsDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, PartnerTotalsDTO{
			PartnerID:   p.PartnerID,
			PartnerCode: p.PartnerCode,
			PartnerName: p.PartnerName,
			Totals:      totalsDTO(p.Totals),
		})
	}
	return out
}

type NightlyLineDTO struct {
	Date         string              `json:"date"`
	Status       string              `json:"status"`
	P0           decimal.Decimal     `json:"p0"`
	P1           decimal.NullDecimal `json:"p1"`
	P2           decimal.Decimal     `json:"p2"`
	P2Display    string              `json:"p2_display"`
	Discount     decimal.Decimal     `json:"discount"`
	RefundAmount decimal.Decimal     `json:"refundAmount"`
	Commission   CommissionDTO       `json:"commission"`
}

type NightlyDTO struct {
	Order           models.Order     `json:"order"`
	Partner         *models.Partner  `json:"partner,omitempty"`
	OrderCommission CommissionDTO    `json:"orderCommission"`
	Lines           []NightlyLineDTO `json:"lines"`
	Nights          int              `json:"nights"`
	EffectiveNights int              `json:"effectiveNights"`

	TotalSale                    decimal.Decimal `json:"totalSale"`
	TotalSaleDisplay             string          `json:"totalSale_display"`
	TotalCost                    decimal.Decimal `json:"totalCost"`
	TotalCostDisplay             string          `json:"totalCost_display"`
	TotalDiscount                decimal.Decimal `json:"totalDiscount"`
	TotalRefund                  decimal.Decimal `json:"totalRefund"`
	TotalProfit                  decimal.Decimal `json:"totalProfit"`
	TotalProfitDisplay           string          `json:"totalProfit_display"`
	TotalSmallBCommission        decimal.Decimal `json:"totalSmallBCommission"`
	TotalSmallBCommissionDisplay string          `json:"totalSmallBCommission_display"`
	TotalBigBProfit              decimal.Decimal `json:"totalBigBProfit"`
	TotalBigBProfitDisplay       string          `json:"totalBigBProfit_display"`
}

func nightlyDTO(on services.OrderNightly) NightlyDTO {
	b := on.Nightly
	lines := make([]NightlyLineDTO, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, NightlyLineDTO{
			Date:         l.Date,
			Status:       l.Status,
			P0:           l.P0,
			P1:           l.P1,
			P2:           l.P2,
			P2Display:    utils.FormatYuan(l.P2),
			Discount:     l.Discount,
			RefundAmount: l.RefundAmount,
			Commission:   commissionDTO(l.Result),
		})
	}
	return NightlyDTO{
		Order:                        on.Order,
		Partner:                      on.Partner,
		OrderCommission:              commissionDTO(on.OrderCalc),
		Lines:                        lines,
		Nights:                       b.Nights,
		EffectiveNights:              b.EffectiveNights,
		TotalSale:                    b.TotalSale,
		TotalSaleDisplay:             utils.FormatYuan(b.TotalSale),
		TotalCost:                    b.TotalCost,
		TotalCostDisplay:             utils.FormatYuan(b.TotalCost),
		TotalDiscount:                b.TotalDiscount,
		TotalRefund:                  b.TotalRefund,
		TotalProfit:                  b.TotalProfit,
		TotalProfitDisplay:           utils.FormatYuan(b.TotalProfit),
		TotalSmallBCommission:        b.TotalSmallBCommission,
		TotalSmallBCommissionDisplay: utils.FormatYuan(b.TotalSmallBCommission),
		TotalBigBProfit:              b.TotalBigBProfit,
		TotalBigBProfitDisplay:       utils.FormatYuan(b.TotalBigBProfit),
	}
}
