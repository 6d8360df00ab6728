package domain

import (
	"reseller-console/internal/domain/models"

	"github.com/shopspring/decimal"
)

// NightlyLine is one night with its profit split.
type NightlyLine struct {
	Date         string              `json:"date"`
	Status       string              `json:"status"`
	P0           decimal.Decimal     `json:"p0"`
	P1           decimal.NullDecimal `json:"p1"`
	P2           decimal.Decimal     `json:"p2"`
	Discount     decimal.Decimal     `json:"discount"`
	RefundAmount decimal.Decimal     `json:"refundAmount"`
	Result       CommissionResult    `json:"result"`
}

// NightlyBreakdown is the per-night view of an order plus its totals.
type NightlyBreakdown struct {
	Lines           []NightlyLine `json:"lines"`
	Nights          int           `json:"nights"`
	EffectiveNights int           `json:"effectiveNights"`

	TotalSale             decimal.Decimal `json:"totalSale"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	TotalDiscount         decimal.Decimal `json:"totalDiscount"`
	TotalRefund           decimal.Decimal `json:"totalRefund"`
	TotalProfit           decimal.Decimal `json:"totalProfit"`
	TotalSmallBCommission decimal.Decimal `json:"totalSmallBCommission"`
	TotalBigBProfit       decimal.Decimal `json:"totalBigBProfit"`
}

// DeriveSaaSProfits returns the write-time SaaS margins: the reseller keeps P2-P1,
// the big B keeps P1-P0.
func DeriveSaaSProfits(p0, p1, p2 decimal.Decimal) (partnerProfit, bigBProfit decimal.Decimal) {
	return p2.Sub(p1), p1.Sub(p0)
}

// nightOrder rebuilds the order's pricing input from a single night.
func nightOrder(o models.Order, n models.NightlyPrice) models.Order {
	row := models.Order{
		ID:                    o.ID,
		OrderNo:               o.OrderNo,
		PartnerID:             o.PartnerID,
		BusinessModel:         o.BusinessModel,
		PartnerCommissionRate: o.PartnerCommissionRate,
		P0SupplierCost:        n.P0SupplierCost,
		P1PlatformPrice:       n.P1PlatformPrice,
		P2SalePrice:           n.P2SalePrice,
		PartnerProfit:         n.PartnerProfit,
		BigBProfit:            n.BigBProfit,
	}
	if o.BusinessModel == models.ModelSaaS && n.P1PlatformPrice.Valid && !n.PartnerProfit.Valid {
		partner, _ := DeriveSaaSProfits(orZero(n.P0SupplierCost), n.P1PlatformPrice.Decimal, orZero(n.P2SalePrice))
		row.PartnerProfit = decimal.NewNullDecimal(partner)
	}
	return row
}

func isEffectiveNight(status string) bool {
	return status != models.NightCancelled && status != models.NightRefunded
}

// ComputeNightly runs every night through ComputeCommission and sums the lines.
// Cancelled and refunded nights are left out of EffectiveNights only; their
// amounts still count in every total.
func ComputeNightly(o models.Order, p *models.Partner, nights []models.NightlyPrice) NightlyBreakdown {
	out := NightlyBreakdown{
		Lines:                 make([]NightlyLine, 0, len(nights)),
		Nights:                len(nights),
		TotalSale:             decimal.Zero,
		TotalCost:             decimal.Zero,
		TotalDiscount:         decimal.Zero,
		TotalRefund:           decimal.Zero,
		TotalProfit:           decimal.Zero,
		TotalSmallBCommission: decimal.Zero,
		TotalBigBProfit:       decimal.Zero,
	}

	for _, n := range nights {
		res := ComputeCommission(nightOrder(o, n), p)
		line := NightlyLine{
			Date:         n.Date,
			Status:       n.Status,
			P0:           orZero(n.P0SupplierCost),
			P1:           n.P1PlatformPrice,
			P2:           orZero(n.P2SalePrice),
			Discount:     n.Discount,
			RefundAmount: n.RefundAmount,
			Result:       res,
		}
		out.Lines = append(out.Lines, line)

		if isEffectiveNight(n.Status) {
			out.EffectiveNights++
		}
		out.TotalSale = out.TotalSale.Add(line.P2)
		out.TotalCost = out.TotalCost.Add(line.P0)
		out.TotalDiscount = out.TotalDiscount.Add(n.Discount)
		out.TotalRefund = out.TotalRefund.Add(n.RefundAmount)
		out.TotalProfit = out.TotalProfit.Add(res.TotalProfit)
		out.TotalSmallBCommission = out.TotalSmallBCommission.Add(res.SmallBCommission)
		out.TotalBigBProfit = out.TotalBigBProfit.Add(res.BigBProfit)
	}
	return out
}
