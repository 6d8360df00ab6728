package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TierBigB   = "big_b"
	TierSmallB = "small_b"
)

// Partner is a reseller. Small-B partners point at their managing big B via ParentID.
type Partner struct {
	ID            int64         `json:"id"`
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	Tier          string        `json:"tier"`
	ParentID      int64         `json:"parentId"`
	BusinessModel BusinessModel `json:"businessModel"`
	Status        string        `json:"status"`

	// DefaultCommissionRate is a 0-100 percentage.
	DefaultCommissionRate decimal.NullDecimal `json:"defaultCommissionRate"`

	CreatedAt time.Time `json:"createdAt"`
}
