package repositories

import (
	"context"
	"strings"
	"time"

	"reseller-console/internal/domain/models"
	"reseller-console/internal/utils"
)

// OrderRepository is the order data source. Implementations: OrderMySQLRepository, MockOrderRepository.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (models.Order, error)
	GetByOrderNo(ctx context.Context, orderNo string) (models.Order, error)
	List(ctx context.Context, f OrderFilter) ([]models.Order, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.Order, error)
	ListNightly(ctx context.Context, orderID int64) ([]models.NightlyPrice, error)
}

// PartnerRepository is the partner data source.
type PartnerRepository interface {
	GetByID(ctx context.Context, id int64) (models.Partner, error)
	List(ctx context.Context, f PartnerFilter) ([]models.Partner, error)
}

// SettlementRepository is the settlement batch data source.
type SettlementRepository interface {
	GetByID(ctx context.Context, id int64) (models.SettlementBatch, error)
	List(ctx context.Context, f SettlementFilter) ([]models.SettlementBatch, error)
}

// OrderFilter narrows order listings. Zero values mean "any".
// From/To are inclusive YYYY-MM-DD bounds on the creation date.
type OrderFilter struct {
	BusinessModel models.BusinessModel
	Status        string
	PartnerID     int64
	Keyword       string
	From          string
	To            string
}

// Matches applies the filter in memory.
func (f OrderFilter) Matches(o models.Order) bool {
	if f.BusinessModel != "" && o.BusinessModel != f.BusinessModel {
		return false
	}
	if f.Status != "" && !strings.EqualFold(o.Status, f.Status) {
		return false
	}
	if f.PartnerID > 0 && o.PartnerID != f.PartnerID && o.BigBID != f.PartnerID {
		return false
	}
	if !utils.ContainsFold(f.Keyword, o.OrderNo, o.HotelName, o.GuestName) {
		return false
	}
	created := o.CreatedAt.In(time.Local)
	if from, err := utils.ParseDate(f.From); err == nil && created.Before(from) {
		return false
	}
	if to, err := utils.ParseDate(f.To); err == nil && !created.Before(to.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

type PartnerFilter struct {
	Tier     string
	ParentID int64
	Keyword  string
}

func (f PartnerFilter) Matches(p models.Partner) bool {
	if f.Tier != "" && p.Tier != f.Tier {
		return false
	}
	if f.ParentID > 0 && p.ParentID != f.ParentID {
		return false
	}
	return utils.ContainsFold(f.Keyword, p.Code, p.Name)
}

type SettlementFilter struct {
	PartnerID int64
	Status    string
}

func (f SettlementFilter) Matches(b models.SettlementBatch) bool {
	if f.PartnerID > 0 && b.PartnerID != f.PartnerID {
		return false
	}
	return f.Status == "" || strings.EqualFold(b.Status, f.Status)
}
