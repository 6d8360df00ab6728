package services

import (
	"context"
	"errors"
	"testing"

	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"
	"reseller-console/internal/repositories"

	"github.com/shopspring/decimal"
)

func newSettlementService(store *repositories.MockStore) SettlementService {
	return SettlementService{
		Batches:  repositories.MockSettlementRepository{Store: store},
		Orders:   repositories.MockOrderRepository{Store: store},
		Partners: repositories.MockPartnerRepository{Store: store},
	}
}

func newCommissionService(store *repositories.MockStore) CommissionService {
	return CommissionService{
		Orders:   repositories.MockOrderRepository{Store: store},
		Partners: repositories.MockPartnerRepository{Store: store},
	}
}

func assertAmount(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s: got %s want %s", name, got, want)
	}
}

// stubOrders serves a fixed set of orders.
type stubOrders struct {
	orders []models.Order
	err    error
}

func (s stubOrders) GetByID(_ context.Context, id int64) (models.Order, error) {
	if s.err != nil {
		return models.Order{}, s.err
	}
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, domain.NotFoundError{Resource: "order"}
}

func (s stubOrders) GetByOrderNo(ctx context.Context, _ string) (models.Order, error) {
	return s.GetByID(ctx, 1)
}

func (s stubOrders) List(context.Context, repositories.OrderFilter) ([]models.Order, error) {
	return s.orders, s.err
}

func (s stubOrders) ListByIDs(context.Context, []int64) ([]models.Order, error) {
	return s.orders, s.err
}

func (s stubOrders) ListNightly(context.Context, int64) ([]models.NightlyPrice, error) {
	return nil, s.err
}

type failingPartners struct{ err error }

func (f failingPartners) GetByID(context.Context, int64) (models.Partner, error) {
	return models.Partner{}, f.err
}

func (f failingPartners) List(context.Context, repositories.PartnerFilter) ([]models.Partner, error) {
	return nil, f.err
}

func TestCommissionServiceOrderRateBeatsPartnerDefault(t *testing.T) {
	svc := newCommissionService(repositories.NewMockStore())

	got, err := svc.ForOrderNo(context.Background(), "ORD-2025001")
	if err != nil {
		t.Fatalf("ForOrderNo error: %v", err)
	}
	if got.Partner == nil || got.Partner.ID != 2 {
		t.Fatalf("partner not resolved: %+v", got.Partner)
	}
	assertAmount(t, "rate", got.Result.CommissionRate.Decimal, "10")
	assertAmount(t, "totalProfit", got.Result.TotalProfit, "168")
	assertAmount(t, "smallB", got.Result.SmallBCommission, "16.8")
	assertAmount(t, "bigB", got.Result.BigBProfit, "151.2")
}

func TestCommissionServiceFallsBackToPartnerDefault(t *testing.T) {
	svc := newCommissionService(repositories.NewMockStore())

	got, err := svc.ForOrder(context.Background(), 3)
	if err != nil {
		t.Fatalf("ForOrder error: %v", err)
	}
	assertAmount(t, "rate", got.Result.CommissionRate.Decimal, "12")
	assertAmount(t, "smallB", got.Result.SmallBCommission, "21.6")
	assertAmount(t, "bigB", got.Result.BigBProfit, "158.4")
}

func TestCommissionServiceMissingPartnerMeansNoDefault(t *testing.T) {
	svc := CommissionService{
		Orders: stubOrders{orders: []models.Order{{
			ID: 1, PartnerID: 77, BusinessModel: models.ModelAffiliate,
			P0SupplierCost: decimal.NewNullDecimal(decimal.NewFromInt(100)),
			P2SalePrice:    decimal.NewNullDecimal(decimal.NewFromInt(150)),
		}}},
		Partners: failingPartners{err: domain.NotFoundError{Resource: "partner"}},
	}
	got, err := svc.ForOrder(context.Background(), 1)
	if err != nil {
		t.Fatalf("ForOrder error: %v", err)
	}
	if got.Partner != nil {
		t.Fatalf("partner should be nil")
	}
	assertAmount(t, "smallB", got.Result.SmallBCommission, "0")
	assertAmount(t, "bigB", got.Result.BigBProfit, "50")
}

func TestCommissionServicePartnerErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	svc := CommissionService{
		Orders:   stubOrders{orders: []models.Order{{ID: 1, PartnerID: 2}}},
		Partners: failingPartners{err: boom},
	}
	if _, err := svc.ForOrder(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected partner error, got %v", err)
	}
}

func TestCommissionServiceStrict(t *testing.T) {
	svc := CommissionService{
		Orders: stubOrders{orders: []models.Order{
			{ID: 1, BusinessModel: models.ModelAffiliate, P0SupplierCost: decimal.NewNullDecimal(decimal.NewFromInt(100))},
			{ID: 2, BusinessModel: models.ModelMCP,
				P0SupplierCost: decimal.NewNullDecimal(decimal.NewFromInt(100)),
				P2SalePrice:    decimal.NewNullDecimal(decimal.NewFromInt(200))},
		}},
	}
	if _, err := svc.ForOrderStrict(context.Background(), 1); !domain.IsMissingField(err) {
		t.Fatalf("expected missing field error, got %v", err)
	}

	got, err := svc.ForOrderStrict(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, "bigB", got.Result.BigBProfit, "100")
}

func TestCommissionServiceNightly(t *testing.T) {
	svc := newCommissionService(repositories.NewMockStore())

	got, err := svc.Nightly(context.Background(), 1)
	if err != nil {
		t.Fatalf("Nightly error: %v", err)
	}
	assertAmount(t, "nightly profit", got.Nightly.TotalProfit, got.OrderCalc.TotalProfit.String())
	assertAmount(t, "nightly smallB", got.Nightly.TotalSmallBCommission, got.OrderCalc.SmallBCommission.String())
	assertAmount(t, "nightly bigB", got.Nightly.TotalBigBProfit, got.OrderCalc.BigBProfit.String())

	refunded, err := svc.Nightly(context.Background(), 3)
	if err != nil {
		t.Fatalf("Nightly error: %v", err)
	}
	if refunded.Nightly.Nights != 3 || refunded.Nightly.EffectiveNights != 2 {
		t.Fatalf("nights: %d/%d", refunded.Nightly.Nights, refunded.Nightly.EffectiveNights)
	}
	assertAmount(t, "refunded order profit", refunded.Nightly.TotalProfit, "180")
	assertAmount(t, "refunded order smallB", refunded.Nightly.TotalSmallBCommission, "21.6")
}

func TestSettlementServiceSummary(t *testing.T) {
	svc := newSettlementService(repositories.NewMockStore())

	got, err := svc.Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if got.Totals.Orders != 4 || len(got.Orders) != 4 {
		t.Fatalf("orders: %d", got.Totals.Orders)
	}
	if got.Partner == nil || got.Partner.Code != "BB-001" {
		t.Fatalf("batch partner not resolved: %+v", got.Partner)
	}
	assertAmount(t, "gmv", got.Totals.GMV, "4466")
	assertAmount(t, "profit", got.Totals.TotalProfit, "666")
	assertAmount(t, "smallB", got.Totals.SmallBCommission, "95.2")
	assertAmount(t, "bigB", got.Totals.BigBProfit, "479.6")

	if len(got.ByPartner) != 3 || got.ByPartner[0].PartnerID != 1 {
		t.Fatalf("unexpected partner breakdown: %+v", got.ByPartner)
	}
	assertAmount(t, "partner 1 smallB", got.ByPartner[0].Totals.SmallBCommission, "56.8")

	sum := decimal.Zero
	for _, pt := range got.ByPartner {
		sum = sum.Add(pt.Totals.SmallBCommission)
	}
	assertAmount(t, "partner breakdown adds up", sum, got.Totals.SmallBCommission.String())
}

func TestSettlementServiceReportsMissingOrders(t *testing.T) {
	store := repositories.NewMockStore()
	svc := SettlementService{
		Batches:  repositories.MockSettlementRepository{Store: store},
		Orders:   stubOrders{orders: []models.Order{{ID: 1, BusinessModel: models.ModelAffiliate}}},
		Partners: repositories.MockPartnerRepository{Store: store},
	}
	got, err := svc.Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if len(got.MissingOrderIDs) != 3 {
		t.Fatalf("missing ids: %v", got.MissingOrderIDs)
	}
}

func TestDashboardServiceSummary(t *testing.T) {
	store := repositories.NewMockStore()
	svc := DashboardService{
		Orders:   repositories.MockOrderRepository{Store: store},
		Partners: repositories.MockPartnerRepository{Store: store},
	}

	got, err := svc.Summary(context.Background(), repositories.OrderFilter{})
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if got.Totals.Orders != 5 {
		t.Fatalf("orders: %d", got.Totals.Orders)
	}
	assertAmount(t, "gmv", got.Totals.GMV, "5026")
	assertAmount(t, "profit", got.Totals.TotalProfit, "726")
	assertAmount(t, "smallB", got.Totals.SmallBCommission, "95.2")
	assertAmount(t, "bigB", got.Totals.BigBProfit, "539.6")

	assertAmount(t, "saas smallB", got.ByModel[models.ModelSaaS].SmallBCommission, "56.8")
	assertAmount(t, "saas bigB", got.ByModel[models.ModelSaaS].BigBProfit, "170")
	assertAmount(t, "affiliate bigB", got.ByModel[models.ModelAffiliate].BigBProfit, "211.2")
	if got.ByStatus[models.OrderCompleted] != 3 || got.ByStatus[models.OrderCancelled] != 1 {
		t.Fatalf("status counts: %v", got.ByStatus)
	}
	if len(got.TopPartners) != 4 || got.TopPartners[0].PartnerID != 1 || got.TopPartners[1].PartnerID != 3 {
		t.Fatalf("top partners order: %+v", got.TopPartners)
	}
}

func TestDashboardServiceListError(t *testing.T) {
	boom := errors.New("boom")
	svc := DashboardService{Orders: stubOrders{err: boom}}
	if _, err := svc.Summary(context.Background(), repositories.OrderFilter{}); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
}

func TestOrderServiceListPaginates(t *testing.T) {
	store := repositories.NewMockStore()
	svc := OrderService{
		Orders:   repositories.MockOrderRepository{Store: store},
		Partners: repositories.MockPartnerRepository{Store: store},
	}

	got, err := svc.List(context.Background(), OrderListFilter{Pagination: domain.Pagination{Page: 2, PageSize: 2}})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got.Pagination.Total != 5 || len(got.Items) != 2 {
		t.Fatalf("pagination: %+v items=%d", got.Pagination, len(got.Items))
	}
	if got.Items[0].Order.ID != 3 || got.Items[1].Order.ID != 2 {
		t.Fatalf("unexpected page: %d, %d", got.Items[0].Order.ID, got.Items[1].Order.ID)
	}
	assertAmount(t, "page smallB", got.PageTotals.SmallBCommission, "38.4")

	past, err := svc.List(context.Background(), OrderListFilter{Pagination: domain.Pagination{Page: 9}})
	if err != nil || len(past.Items) != 0 || past.Pagination.PageSize != domain.DefaultPageSize {
		t.Fatalf("page past end: %+v %v", past.Pagination, err)
	}
}
