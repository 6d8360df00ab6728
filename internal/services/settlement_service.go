package services

import (
	"context"
	"fmt"

	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"
	"reseller-console/internal/repositories"
	"reseller-console/internal/utils"
)

// SettlementSummary is a batch with per-order results and their sums.
type SettlementSummary struct {
	Batch           models.SettlementBatch `json:"batch"`
	Partner         *models.Partner        `json:"partner,omitempty"`
	Orders          []OrderCommission      `json:"orders"`
	Totals          domain.Totals          `json:"totals"`
	ByPartner       []PartnerTotals        `json:"byPartner"`
	MissingOrderIDs []int64                `json:"missingOrderIds,omitempty"`
}

type SettlementService struct {
	Batches   repositories.SettlementRepository
	Orders    repositories.OrderRepository
	Partners  repositories.PartnerRepository
	RequestID string
}

func (s SettlementService) List(ctx context.Context, f repositories.SettlementFilter) ([]models.SettlementBatch, error) {
	return s.Batches.List(ctx, f)
}

// Summary recomputes every order of the batch and adds the results up.
func (s SettlementService) Summary(ctx context.Context, batchID int64) (SettlementSummary, error) {
	batch, err := s.Batches.GetByID(ctx, batchID)
	if err != nil {
		return SettlementSummary{}, err
	}
	orders, err := s.Orders.ListByIDs(ctx, batch.OrderIDs)
	if err != nil {
		return SettlementSummary{}, err
	}
	partners, err := partnerIndex(ctx, s.Partners)
	if err != nil {
		return SettlementSummary{}, err
	}

	rows := computeAll(orders, partners)
	totals := domain.NewTotals()
	for _, r := range rows {
		totals.Add(r.Order, r.Result)
	}

	out := SettlementSummary{
		Batch:     batch,
		Partner:   partners[batch.PartnerID],
		Orders:    rows,
		Totals:    totals,
		ByPartner: totalsByPartner(rows),
	}

	found := make(map[int64]bool, len(orders))
	for _, o := range orders {
		found[o.ID] = true
	}
	for _, id := range batch.OrderIDs {
		if !found[id] {
			out.MissingOrderIDs = append(out.MissingOrderIDs, id)
		}
	}
	if len(out.MissingOrderIDs) > 0 {
		utils.LogEvent(s.RequestID, "settlement", "summary",
			fmt.Sprintf("batch=%s missing_orders=%v", batch.BatchNo, out.MissingOrderIDs))
	}
	return out, nil
}
