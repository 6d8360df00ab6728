package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"

	"github.com/shopspring/decimal"
)

// MockStore holds the console demo data in memory. It backs the Mock*Repository
// types when DATA_SOURCE=mock.
type MockStore struct {
	mu       sync.RWMutex
	orders   []models.Order
	nightly  map[int64][]models.NightlyPrice
	partners []models.Partner
	batches  []models.SettlementBatch
}

func money(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.Local)
}

// NewMockStore returns a store seeded with the demo partners, orders and batches.
func NewMockStore() *MockStore {
	s := &MockStore{nightly: map[int64][]models.NightlyPrice{}}

	s.partners = []models.Partner{
		{ID: 1, Code: "BB-001", Name: "华东旅行社", Tier: models.TierBigB, BusinessModel: models.ModelSaaS, Status: "active", CreatedAt: day(2024, time.October, 1)},
		{ID: 2, Code: "SB-001", Name: "小李旅行达人", Tier: models.TierSmallB, ParentID: 1, BusinessModel: models.ModelAffiliate, Status: "active", DefaultCommissionRate: money("15"), CreatedAt: day(2024, time.November, 3)},
		{ID: 3, Code: "SB-002", Name: "MCP 酒店助手", Tier: models.TierSmallB, ParentID: 1, BusinessModel: models.ModelMCP, Status: "active", DefaultCommissionRate: money("12"), CreatedAt: day(2024, time.November, 20)},
		{ID: 4, Code: "SB-003", Name: "周末去哪儿", Tier: models.TierSmallB, ParentID: 1, BusinessModel: models.ModelAffiliate, Status: "inactive", CreatedAt: day(2024, time.December, 8)},
	}

	s.orders = []models.Order{
		{
			ID: 1, OrderNo: "ORD-2025001", HotelName: "上海外滩华尔道夫酒店", RoomType: "豪华大床房", GuestName: "张伟",
			CheckIn: "2025-01-10", CheckOut: "2025-01-12", Status: models.OrderCompleted, PartnerID: 2, BigBID: 1,
			BusinessModel: models.ModelAffiliate, P0SupplierCost: money("800"), P2SalePrice: money("968"),
			PartnerCommissionRate: money("10"), CreatedAt: day(2025, time.January, 5),
		},
		{
			ID: 2, OrderNo: "ORD-2025002", HotelName: "杭州西湖国宾馆", RoomType: "湖景双床房", GuestName: "李娜",
			CheckIn: "2025-01-15", CheckOut: "2025-01-17", Status: models.OrderCompleted, PartnerID: 1, BigBID: 1,
			BusinessModel: models.ModelSaaS, P0SupplierCost: money("800"), P1PlatformPrice: money("880"), P2SalePrice: money("968"),
			PartnerProfit: money("16.8"), CreatedAt: day(2025, time.January, 8),
		},
		{
			ID: 3, OrderNo: "ORD-2025003", HotelName: "北京王府半岛酒店", RoomType: "行政套房", GuestName: "王芳",
			CheckIn: "2025-01-20", CheckOut: "2025-01-23", Status: models.OrderCompleted, PartnerID: 3, BigBID: 1,
			BusinessModel: models.ModelMCP, P0SupplierCost: money("1200"), P2SalePrice: money("1380"),
			CreatedAt: day(2025, time.January, 12),
		},
		{
			ID: 4, OrderNo: "ORD-2025004", HotelName: "成都博舍", RoomType: "高级大床房", GuestName: "刘洋",
			CheckIn: "2025-02-01", CheckOut: "2025-02-02", Status: models.OrderCancelled, PartnerID: 4, BigBID: 1,
			BusinessModel: models.ModelAffiliate, P0SupplierCost: money("500"), P2SalePrice: money("560"),
			CreatedAt: day(2025, time.January, 25),
		},
		{
			ID: 5, OrderNo: "ORD-2025005", HotelName: "三亚亚特兰蒂斯酒店", RoomType: "海景房", GuestName: "陈静",
			CheckIn: "2025-02-10", CheckOut: "2025-02-12", Status: models.OrderConfirmed, PartnerID: 1, BigBID: 1,
			BusinessModel: models.ModelSaaS, P0SupplierCost: money("1000"), P2SalePrice: money("1150"),
			PartnerProfit: money("40"), BigBProfit: money("90"), PlatformProfit: money("20"),
			CreatedAt: day(2025, time.February, 2),
		},
	}

	s.nightly[1] = []models.NightlyPrice{
		{ID: 1, OrderID: 1, Date: "2025-01-10", Status: models.NightNormal, P0SupplierCost: money("400"), P2SalePrice: money("484")},
		{ID: 2, OrderID: 1, Date: "2025-01-11", Status: models.NightNormal, P0SupplierCost: money("400"), P2SalePrice: money("484")},
	}
	s.nightly[2] = []models.NightlyPrice{
		{ID: 3, OrderID: 2, Date: "2025-01-15", Status: models.NightNormal, P0SupplierCost: money("400"), P1PlatformPrice: money("440"), P2SalePrice: money("484"), PartnerProfit: money("8.4")},
		{ID: 4, OrderID: 2, Date: "2025-01-16", Status: models.NightNormal, P0SupplierCost: money("400"), P1PlatformPrice: money("440"), P2SalePrice: money("484"), PartnerProfit: money("8.4")},
	}
	s.nightly[3] = []models.NightlyPrice{
		{ID: 5, OrderID: 3, Date: "2025-01-20", Status: models.NightNormal, P0SupplierCost: money("400"), P2SalePrice: money("460")},
		{ID: 6, OrderID: 3, Date: "2025-01-21", Status: models.NightNormal, P0SupplierCost: money("400"), P2SalePrice: money("460"), Discount: amount("20")},
		{ID: 7, OrderID: 3, Date: "2025-01-22", Status: models.NightRefunded, P0SupplierCost: money("400"), P2SalePrice: money("460"), RefundAmount: amount("460")},
	}

	s.batches = []models.SettlementBatch{
		{ID: 1, BatchNo: "STL-202501-001", PartnerID: 1, PeriodStart: "2025-01-01", PeriodEnd: "2025-02-28", Status: models.BatchConfirmed, OrderIDs: []int64{1, 2, 3, 5}, CreatedAt: day(2025, time.March, 1)},
		{ID: 2, BatchNo: "STL-202501-002", PartnerID: 2, PeriodStart: "2025-01-01", PeriodEnd: "2025-01-31", Status: models.BatchDraft, OrderIDs: []int64{1}, CreatedAt: day(2025, time.February, 1)},
	}
	return s
}

func cloneBatch(b models.SettlementBatch) models.SettlementBatch {
	b.OrderIDs = append([]int64(nil), b.OrderIDs...)
	return b
}

// MockOrderRepository serves orders from a MockStore.
type MockOrderRepository struct {
	Store *MockStore
}

func (r MockOrderRepository) GetByID(_ context.Context, id int64) (models.Order, error) {
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	for _, o := range r.Store.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, domain.NotFoundError{Resource: "order"}
}

func (r MockOrderRepository) GetByOrderNo(_ context.Context, orderNo string) (models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	for _, o := range r.Store.orders {
		if strings.EqualFold(o.OrderNo, orderNo) {
			return o, nil
		}
	}
	return models.Order{}, domain.NotFoundError{Resource: "order"}
}

func (r MockOrderRepository) List(_ context.Context, f OrderFilter) ([]models.Order, error) {
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	out := []models.Order{}
	for _, o := range r.Store.orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r MockOrderRepository) ListByIDs(_ context.Context, ids []int64) ([]models.Order, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	out := []models.Order{}
	for _, o := range r.Store.orders {
		if want[o.ID] {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r MockOrderRepository) ListNightly(_ context.Context, orderID int64) ([]models.NightlyPrice, error) {
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	return append([]models.NightlyPrice{}, r.Store.nightly[orderID]...), nil
}

// MockPartnerRepository serves partners from a MockStore.
type MockPartnerRepository struct {
	Store *MockStore
}

func (r MockPartnerRepository) GetByID(_ context.Context, id int64) (models.Partner, error) {
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	for _, p := range r.Store.partners {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Partner{}, domain.NotFoundError{Resource: "partner"}
}

func (r MockPartnerRepository) List(_ context.Context, f PartnerFilter) ([]models.Partner, error) {
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	out := []models.Partner{}
	for _, p := range r.Store.partners {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// MockSettlementRepository serves settlement batches from a MockStore.
type MockSettlementRepository struct {
	Store *MockStore
}

func (r MockSettlementRepository) GetByID(_ context.Context, id int64) (models.SettlementBatch, error) {
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	for _, b := range r.Store.batches {
		if b.ID == id {
			return cloneBatch(b), nil
		}
	}
	return models.SettlementBatch{}, domain.NotFoundError{Resource: "settlement batch"}
}

func (r MockSettlementRepository) List(_ context.Context, f SettlementFilter) ([]models.SettlementBatch, error) {
	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()
	out := []models.SettlementBatch{}
	for _, b := range r.Store.batches {
		if f.Matches(b) {
			out = append(out, cloneBatch(b))
		}
	}
	return out, nil
}
