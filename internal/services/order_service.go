package services

import (
	"context"

	"reseller-console/internal/domain"
	"reseller-console/internal/repositories"
)

type OrderListFilter struct {
	repositories.OrderFilter
	domain.Pagination
}

// OrderPage is one page of orders with their commissions and the page sums.
type OrderPage struct {
	Items      []OrderCommission `json:"items"`
	Pagination domain.Pagination `json:"pagination"`
	PageTotals domain.Totals     `json:"pageTotals"`
}

type OrderService struct {
	Orders   repositories.OrderRepository
	Partners repositories.PartnerRepository
}

func (s OrderService) List(ctx context.Context, f OrderListFilter) (OrderPage, error) {
	orders, err := s.Orders.List(ctx, f.OrderFilter)
	if err != nil {
		return OrderPage{}, err
	}
	partners, err := partnerIndex(ctx, s.Partners)
	if err != nil {
		return OrderPage{}, err
	}

	page := f.Pagination.Normalize()
	page.Total = len(orders)
	start, end := page.Bounds(len(orders))

	items := computeAll(orders[start:end], partners)
	totals := domain.NewTotals()
	for _, it := range items {
		totals.Add(it.Order, it.Result)
	}
	return OrderPage{Items: items, Pagination: page, PageTotals: totals}, nil
}
