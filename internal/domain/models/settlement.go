package models

import "time"

const (
	BatchDraft     = "draft"
	BatchConfirmed = "confirmed"
	BatchPaid      = "paid"
)

// SettlementBatch groups orders settled with one partner for a period.
type SettlementBatch struct {
	ID          int64     `json:"id"`
	BatchNo     string    `json:"batchNo"`
	PartnerID   int64     `json:"partnerId"`
	PeriodStart string    `json:"periodStart"`
	PeriodEnd   string    `json:"periodEnd"`
	Status      string    `json:"status"`
	OrderIDs    []int64   `json:"orderIds"`
	CreatedAt   time.Time `json:"createdAt"`
}
