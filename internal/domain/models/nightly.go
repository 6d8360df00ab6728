package models

import "github.com/shopspring/decimal"

const (
	NightNormal    = "normal"
	NightCancelled = "cancelled"
	NightRefunded  = "refunded"
)

// NightlyPrice is one night of a stay with its own P0/P1/P2.
type NightlyPrice struct {
	ID      int64  `json:"id"`
	OrderID int64  `json:"orderId"`
	Date    string `json:"date"`
	Status  string `json:"status"`

	P0SupplierCost  decimal.NullDecimal `json:"p0SupplierCost"`
	P1PlatformPrice decimal.NullDecimal `json:"p1PlatformPrice"`
	P2SalePrice     decimal.NullDecimal `json:"p2SalePrice"`
	Discount        decimal.Decimal     `json:"discount"`
	RefundAmount    decimal.Decimal     `json:"refundAmount"`

	PartnerProfit decimal.NullDecimal `json:"partnerProfit"`
	BigBProfit    decimal.NullDecimal `json:"bigBProfit"`
}
