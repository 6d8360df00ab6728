package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessModel is fixed when the order is created.
type BusinessModel string

const (
	ModelSaaS      BusinessModel = "saas"
	ModelMCP       BusinessModel = "mcp"
	ModelAffiliate BusinessModel = "affiliate"
)

// Order status values used by the console.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
	OrderRefunded  = "refunded"
)

// Order is a hotel booking placed through a partner. Pricing fields are
// written once by the order-creation flow and only read afterwards.
type Order struct {
	ID        int64  `json:"id"`
	OrderNo   string `json:"orderNo"`
	HotelName string `json:"hotelName"`
	RoomType  string `json:"roomType"`
	GuestName string `json:"guestName"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Status    string `json:"status"`
	PartnerID int64  `json:"partnerId"`
	BigBID    int64  `json:"bigBId"`

	BusinessModel BusinessModel `json:"businessModel"`

	P0SupplierCost        decimal.NullDecimal `json:"p0SupplierCost"`
	P1PlatformPrice       decimal.NullDecimal `json:"p1PlatformPrice"`
	P2SalePrice           decimal.NullDecimal `json:"p2SalePrice"`
	PartnerCommissionRate decimal.NullDecimal `json:"partnerCommissionRate"`

	PlatformProfit decimal.NullDecimal `json:"platformProfit"`
	PartnerProfit  decimal.NullDecimal `json:"partnerProfit"`
	BigBProfit     decimal.NullDecimal `json:"bigBProfit"`

	CreatedAt time.Time `json:"createdAt"`
}
