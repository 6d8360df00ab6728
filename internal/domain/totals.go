package domain

import (
	"reseller-console/internal/domain/models"

	"github.com/shopspring/decimal"
)

// Totals accumulates commission results over many orders.
type Totals struct {
	Orders           int             `json:"orders"`
	GMV              decimal.Decimal `json:"gmv"`
	SupplierCost     decimal.Decimal `json:"supplierCost"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	SmallBCommission decimal.Decimal `json:"smallBCommission"`
	BigBProfit       decimal.Decimal `json:"bigBProfit"`
}

func NewTotals() Totals {
	return Totals{
		GMV:              decimal.Zero,
		SupplierCost:     decimal.Zero,
		TotalProfit:      decimal.Zero,
		SmallBCommission: decimal.Zero,
		BigBProfit:       decimal.Zero,
	}
}

// Add folds one order and its result into t.
func (t *Totals) Add(o models.Order, r CommissionResult) {
	t.Orders++
	t.GMV = t.GMV.Add(orZero(o.P2SalePrice))
	t.SupplierCost = t.SupplierCost.Add(orZero(o.P0SupplierCost))
	t.TotalProfit = t.TotalProfit.Add(r.TotalProfit)
	t.SmallBCommission = t.SmallBCommission.Add(r.SmallBCommission)
	t.BigBProfit = t.BigBProfit.Add(r.BigBProfit)
}

// Merge adds the sums of other into t.
func (t *Totals) Merge(other Totals) {
	t.Orders += other.Orders
	t.GMV = t.GMV.Add(other.GMV)
	t.SupplierCost = t.SupplierCost.Add(other.SupplierCost)
	t.TotalProfit = t.TotalProfit.Add(other.TotalProfit)
	t.SmallBCommission = t.SmallBCommission.Add(other.SmallBCommission)
	t.BigBProfit = t.BigBProfit.Add(other.BigBProfit)
}
