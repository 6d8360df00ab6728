package services

import (
	"context"
	"fmt"

	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"
	"reseller-console/internal/repositories"
	"reseller-console/internal/utils"
)

// CommissionService loads orders and partners and runs them through the calculator.
type CommissionService struct {
	Orders    repositories.OrderRepository
	Partners  repositories.PartnerRepository
	RequestID string
}

// OrderCommission is an order together with its commission split.
type OrderCommission struct {
	Order   models.Order            `json:"order"`
	Partner *models.Partner         `json:"partner,omitempty"`
	Result  domain.CommissionResult `json:"commission"`
}

// OrderNightly is the per-night breakdown of one order.
type OrderNightly struct {
	Order     models.Order            `json:"order"`
	Partner   *models.Partner         `json:"partner,omitempty"`
	Nightly   domain.NightlyBreakdown `json:"nightly"`
	OrderCalc domain.CommissionResult `json:"orderCommission"`
}

// ForOrder computes the commission of order id with the permissive calculator.
func (s CommissionService) ForOrder(ctx context.Context, id int64) (OrderCommission, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return OrderCommission{}, err
	}
	return s.compute(ctx, o)
}

// ForOrderNo is ForOrder keyed by order number.
func (s CommissionService) ForOrderNo(ctx context.Context, orderNo string) (OrderCommission, error) {
	o, err := s.Orders.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return OrderCommission{}, err
	}
	return s.compute(ctx, o)
}

// ForOrderStrict fails with domain.MissingFieldError when the order lacks P0, P2 or its business model.
func (s CommissionService) ForOrderStrict(ctx context.Context, id int64) (OrderCommission, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return OrderCommission{}, err
	}
	p, err := s.partnerFor(ctx, o)
	if err != nil {
		return OrderCommission{}, err
	}
	res, err := domain.ComputeCommissionStrict(o, p)
	if err != nil {
		utils.LogEvent(s.RequestID, "commission", "strict", fmt.Sprintf("order_id=%d %v", id, err))
		return OrderCommission{}, err
	}
	return OrderCommission{Order: o, Partner: p, Result: res}, nil
}

// Nightly computes the per-night breakdown of order id.
func (s CommissionService) Nightly(ctx context.Context, id int64) (OrderNightly, error) {
	o, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return OrderNightly{}, err
	}
	p, err := s.partnerFor(ctx, o)
	if err != nil {
		return OrderNightly{}, err
	}
	nights, err := s.Orders.ListNightly(ctx, o.ID)
	if err != nil {
		return OrderNightly{}, err
	}
	return OrderNightly{
		Order:     o,
		Partner:   p,
		Nightly:   domain.ComputeNightly(o, p, nights),
		OrderCalc: domain.ComputeCommission(o, p),
	}, nil
}

func (s CommissionService) compute(ctx context.Context, o models.Order) (OrderCommission, error) {
	p, err := s.partnerFor(ctx, o)
	if err != nil {
		return OrderCommission{}, err
	}
	return OrderCommission{Order: o, Partner: p, Result: domain.ComputeCommission(o, p)}, nil
}

// partnerFor returns the order's partner, or nil when the order has none or it no longer exists.
func (s CommissionService) partnerFor(ctx context.Context, o models.Order) (*models.Partner, error) {
	if o.PartnerID <= 0 || s.Partners == nil {
		return nil, nil
	}
	p, err := s.Partners.GetByID(ctx, o.PartnerID)
	if err != nil {
		if domain.IsNotFound(err) {
			utils.LogEvent(s.RequestID, "commission", "partner_lookup", fmt.Sprintf("order=%s partner_id=%d missing", o.OrderNo, o.PartnerID))
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// partnerIndex loads every partner once for bulk computations.
func partnerIndex(ctx context.Context, repo repositories.PartnerRepository) (map[int64]*models.Partner, error) {
	idx := map[int64]*models.Partner{}
	if repo == nil {
		return idx, nil
	}
	partners, err := repo.List(ctx, repositories.PartnerFilter{})
	if err != nil {
		return nil, err
	}
	for i := range partners {
		idx[partners[i].ID] = &partners[i]
	}
	return idx, nil
}

// computeAll pairs every order with its result using a preloaded partner index.
func computeAll(orders []models.Order, partners map[int64]*models.Partner) []OrderCommission {
	out := make([]OrderCommission, 0, len(orders))
	for _, o := range orders {
		p := partners[o.PartnerID]
		out = append(out, OrderCommission{Order: o, Partner: p, Result: domain.ComputeCommission(o, p)})
	}
	return out
}
