package services

import (
	"context"
	"sort"

	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"
	"reseller-console/internal/repositories"
)

const topPartnerLimit = 5

// PartnerTotals is the sum of results attributed to one partner.
type PartnerTotals struct {
	PartnerID   int64         `json:"partnerId"`
	PartnerCode string        `json:"partnerCode"`
	PartnerName string        `json:"partnerName"`
	Totals      domain.Totals `json:"totals"`
}

type DashboardSummary struct {
	Totals      domain.Totals                          `json:"totals"`
	ByModel     map[models.BusinessModel]domain.Totals `json:"byModel"`
	ByStatus    map[string]int                         `json:"byStatus"`
	TopPartners []PartnerTotals                        `json:"topPartners"`
}

type DashboardService struct {
	Orders   repositories.OrderRepository
	Partners repositories.PartnerRepository
}

// Summary sums commission results over the orders matching f.
func (s DashboardService) Summary(ctx context.Context, f repositories.OrderFilter) (DashboardSummary, error) {
	orders, err := s.Orders.List(ctx, f)
	if err != nil {
		return DashboardSummary{}, err
	}
	partners, err := partnerIndex(ctx, s.Partners)
	if err != nil {
		return DashboardSummary{}, err
	}

	rows := computeAll(orders, partners)
	out := DashboardSummary{
		Totals:   domain.NewTotals(),
		ByModel:  map[models.BusinessModel]domain.Totals{},
		ByStatus: map[string]int{},
	}
	for _, r := range rows {
		out.Totals.Add(r.Order, r.Result)

		m, ok := out.ByModel[r.Order.BusinessModel]
		if !ok {
			m = domain.NewTotals()
		}
		m.Add(r.Order, r.Result)
		out.ByModel[r.Order.BusinessModel] = m

		out.ByStatus[r.Order.Status]++
	}

	top := totalsByPartner(rows)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Totals.SmallBCommission.GreaterThan(top[j].Totals.SmallBCommission)
	})
	if len(top) > topPartnerLimit {
		top = top[:topPartnerLimit]
	}
	out.TopPartners = top
	return out, nil
}

// totalsByPartner groups rows by partner id, ascending.
func totalsByPartner(rows []OrderCommission) []PartnerTotals {
	byID := map[int64]*PartnerTotals{}
	for _, r := range rows {
		pt, ok := byID[r.Order.PartnerID]
		if !ok {
			pt = &PartnerTotals{PartnerID: r.Order.PartnerID, Totals: domain.NewTotals()}
			if r.Partner != nil {
				pt.PartnerCode = r.Partner.Code
				pt.PartnerName = r.Partner.Name
			}
			byID[r.Order.PartnerID] = pt
		}
		pt.Totals.Add(r.Order, r.Result)
	}

	out := make([]PartnerTotals, 0, len(byID))
	for _, pt := range byID {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PartnerID < out[j].PartnerID })
	return out
}
