package domain

import (
	"strings"

	"reseller-console/internal/domain/models"

	"github.com/shopspring/decimal"
)

// CommissionResult is the profit split for one order (or one night).
// Amounts are not rounded; formatting belongs to the caller.
type CommissionResult struct {
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	SmallBCommission decimal.Decimal `json:"smallBCommission"`
	BigBProfit       decimal.Decimal `json:"bigBProfit"`

	// CommissionRate is only set for mcp and affiliate orders.
	CommissionRate decimal.NullDecimal `json:"commissionRate"`
}

func orZero(v decimal.NullDecimal) decimal.Decimal {
	if v.Valid {
		return v.Decimal
	}
	return decimal.Zero
}

// percentOf returns amount * rate / 100 without any division rounding.
func percentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Shift(-2)
}

// commissionRate picks the rate captured on the order, then the partner default.
func commissionRate(o models.Order, p *models.Partner) decimal.Decimal {
	if o.PartnerCommissionRate.Valid {
		return o.PartnerCommissionRate.Decimal
	}
	if p != nil && p.DefaultCommissionRate.Valid {
		return p.DefaultCommissionRate.Decimal
	}
	return decimal.Zero
}

// ComputeCommission derives total profit and the small-B / big-B split.
// Missing numeric inputs count as zero; nothing is mutated and no error is returned.
//
// For saas orders SmallBCommission and BigBProfit come from separate sources
// and do not necessarily add up to TotalProfit.
func ComputeCommission(o models.Order, p *models.Partner) CommissionResult {
	p0 := orZero(o.P0SupplierCost)
	total := orZero(o.P2SalePrice).Sub(p0)
	res := CommissionResult{
		TotalProfit:      total,
		SmallBCommission: decimal.Zero,
		BigBProfit:       decimal.Zero,
	}

	switch o.BusinessModel {
	case models.ModelSaaS:
		res.SmallBCommission = orZero(o.PartnerProfit)
		switch {
		case o.BigBProfit.Valid:
			res.BigBProfit = o.BigBProfit.Decimal
		case o.P1PlatformPrice.Valid:
			res.BigBProfit = o.P1PlatformPrice.Decimal.Sub(p0)
		}
	case models.ModelAffiliate, models.ModelMCP:
		rate := commissionRate(o, p)
		res.CommissionRate = decimal.NewNullDecimal(rate)
		res.SmallBCommission = percentOf(total, rate)
		res.BigBProfit = total.Sub(res.SmallBCommission)
	default:
		res.BigBProfit = total
	}
	return res
}

// ComputeCommissionStrict is ComputeCommission with the required inputs checked first.
// It reports a MissingFieldError instead of treating P0, P2 or the business model as zero.
func ComputeCommissionStrict(o models.Order, p *models.Partner) (CommissionResult, error) {
	switch {
	case !o.P2SalePrice.Valid:
		return CommissionResult{}, MissingFieldError{Field: "p2SalePrice"}
	case !o.P0SupplierCost.Valid:
		return CommissionResult{}, MissingFieldError{Field: "p0SupplierCost"}
	case strings.TrimSpace(string(o.BusinessModel)) == "":
		return CommissionResult{}, MissingFieldError{Field: "businessModel"}
	}
	return ComputeCommission(o, p), nil
}
