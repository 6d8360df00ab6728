package domain

import (
	"reflect"
	"testing"

	"reseller-console/internal/domain/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func assertDec(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s: got %s want %s", name, got, want)
	}
}

func TestComputeCommissionTotalProfitIgnoresModel(t *testing.T) {
	for _, m := range []models.BusinessModel{models.ModelSaaS, models.ModelMCP, models.ModelAffiliate, "legacy", ""} {
		o := models.Order{
			BusinessModel:   m,
			P0SupplierCost:  nd("800"),
			P1PlatformPrice: nd("880"),
			P2SalePrice:     nd("968"),
		}
		res := ComputeCommission(o, nil)
		assertDec(t, string(m)+" totalProfit", res.TotalProfit, "168")
	}
}

func TestComputeCommissionAffiliateSplitsTotalProfit(t *testing.T) {
	rates := []string{"0", "0.5", "10", "12.345", "33.3333", "99.99", "100"}
	for _, m := range []models.BusinessModel{models.ModelAffiliate, models.ModelMCP} {
		for _, rate := range rates {
			o := models.Order{
				BusinessModel:         m,
				P0SupplierCost:        nd("1234.57"),
				P2SalePrice:           nd("1530.11"),
				PartnerCommissionRate: nd(rate),
			}
			res := ComputeCommission(o, nil)
			sum := res.SmallBCommission.Add(res.BigBProfit)
			if !sum.Equal(res.TotalProfit) {
				t.Fatalf("%s rate=%s: small+big=%s, total=%s", m, rate, sum, res.TotalProfit)
			}
			if !res.CommissionRate.Valid || !res.CommissionRate.Decimal.Equal(dec(rate)) {
				t.Fatalf("%s rate=%s: commission rate not echoed: %+v", m, rate, res.CommissionRate)
			}
		}
	}
}

func TestComputeCommissionRatePrecedence(t *testing.T) {
	tests := []struct {
		name      string
		orderRate decimal.NullDecimal
		partner   *models.Partner
		wantRate  string
		wantSmall string
	}{
		{
			name:      "order rate wins over partner default",
			orderRate: nd("10"),
			partner:   &models.Partner{DefaultCommissionRate: nd("15")},
			wantRate:  "10",
			wantSmall: "10",
		},
		{
			name:      "partner default used when order has none",
			partner:   &models.Partner{DefaultCommissionRate: nd("15")},
			wantRate:  "15",
			wantSmall: "15",
		},
		{
			name:      "no partner",
			wantRate:  "0",
			wantSmall: "0",
		},
		{
			name:      "partner without default",
			partner:   &models.Partner{},
			wantRate:  "0",
			wantSmall: "0",
		},
		{
			name:      "explicit zero on order beats partner default",
			orderRate: nd("0"),
			partner:   &models.Partner{DefaultCommissionRate: nd("15")},
			wantRate:  "0",
			wantSmall: "0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := models.Order{
				BusinessModel:         models.ModelAffiliate,
				P0SupplierCost:        nd("100"),
				P2SalePrice:           nd("200"),
				PartnerCommissionRate: tc.orderRate,
			}
			res := ComputeCommission(o, tc.partner)
			if !res.CommissionRate.Valid {
				t.Fatalf("commission rate should be set for affiliate")
			}
			assertDec(t, "rate", res.CommissionRate.Decimal, tc.wantRate)
			assertDec(t, "smallB", res.SmallBCommission, tc.wantSmall)
		})
	}
}

func TestComputeCommissionSaaSSourcesAreIndependent(t *testing.T) {
	o := models.Order{
		BusinessModel:   models.ModelSaaS,
		P0SupplierCost:  nd("800"),
		P1PlatformPrice: nd("880"),
		P2SalePrice:     nd("968"),
		PartnerProfit:   nd("16.8"),
	}
	res := ComputeCommission(o, &models.Partner{DefaultCommissionRate: nd("50")})

	assertDec(t, "totalProfit", res.TotalProfit, "168")
	assertDec(t, "smallB", res.SmallBCommission, "16.8")
	assertDec(t, "bigB", res.BigBProfit, "80")
	if res.CommissionRate.Valid {
		t.Fatalf("saas must not echo a commission rate, got %s", res.CommissionRate.Decimal)
	}
	if res.SmallBCommission.Add(res.BigBProfit).Equal(res.TotalProfit) {
		t.Fatalf("saas split is not expected to sum to total profit")
	}
}

func TestComputeCommissionSaaSFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		order     models.Order
		wantSmall string
		wantBig   string
	}{
		{
			name: "persisted big-B profit wins over P1 spread",
			order: models.Order{
				P0SupplierCost:  nd("1000"),
				P1PlatformPrice: nd("1050"),
				P2SalePrice:     nd("1150"),
				PartnerProfit:   nd("40"),
				BigBProfit:      nd("90"),
			},
			wantSmall: "40",
			wantBig:   "90",
		},
		{
			name: "no P1 and no persisted profits",
			order: models.Order{
				P0SupplierCost: nd("1000"),
				P2SalePrice:    nd("1150"),
			},
			wantSmall: "0",
			wantBig:   "0",
		},
		{
			name: "missing P0 counts as zero",
			order: models.Order{
				P1PlatformPrice: nd("880"),
				P2SalePrice:     nd("968"),
			},
			wantSmall: "0",
			wantBig:   "880",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.order.BusinessModel = models.ModelSaaS
			res := ComputeCommission(tc.order, nil)
			assertDec(t, "smallB", res.SmallBCommission, tc.wantSmall)
			assertDec(t, "bigB", res.BigBProfit, tc.wantBig)
		})
	}
}

func TestComputeCommissionUnknownModel(t *testing.T) {
	o := models.Order{
		BusinessModel:         "wholesale",
		P0SupplierCost:        nd("500"),
		P2SalePrice:           nd("560"),
		PartnerCommissionRate: nd("10"),
	}
	res := ComputeCommission(o, nil)
	assertDec(t, "smallB", res.SmallBCommission, "0")
	assertDec(t, "bigB", res.BigBProfit, "60")
	if res.CommissionRate.Valid {
		t.Fatalf("unknown model must not echo a commission rate")
	}
}

func TestComputeCommissionOrder2025001(t *testing.T) {
	o := models.Order{
		OrderNo:               "ORD-2025001",
		BusinessModel:         models.ModelAffiliate,
		P0SupplierCost:        nd("800"),
		P2SalePrice:           nd("968"),
		PartnerCommissionRate: nd("10"),
	}
	res := ComputeCommission(o, nil)
	assertDec(t, "totalProfit", res.TotalProfit, "168")
	assertDec(t, "smallB", res.SmallBCommission, "16.8")
	assertDec(t, "bigB", res.BigBProfit, "151.2")
}

func TestComputeCommissionIsIdempotent(t *testing.T) {
	o := models.Order{
		BusinessModel:         models.ModelMCP,
		P0SupplierCost:        nd("1200"),
		P2SalePrice:           nd("1380"),
		PartnerCommissionRate: nd("12"),
	}
	p := &models.Partner{DefaultCommissionRate: nd("20")}
	snapshot := o

	first := ComputeCommission(o, p)
	second := ComputeCommission(o, p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between calls: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(o, snapshot) {
		t.Fatalf("order was mutated")
	}
}

func TestComputeCommissionEmptyOrder(t *testing.T) {
	res := ComputeCommission(models.Order{BusinessModel: models.ModelAffiliate}, nil)
	assertDec(t, "totalProfit", res.TotalProfit, "0")
	assertDec(t, "smallB", res.SmallBCommission, "0")
	assertDec(t, "bigB", res.BigBProfit, "0")
}

func TestComputeCommissionStrict(t *testing.T) {
	full := models.Order{
		BusinessModel:         models.ModelAffiliate,
		P0SupplierCost:        nd("800"),
		P2SalePrice:           nd("968"),
		PartnerCommissionRate: nd("10"),
	}

	tests := []struct {
		name      string
		mutate    func(o *models.Order)
		wantField string
	}{
		{name: "missing sale price", mutate: func(o *models.Order) { o.P2SalePrice = decimal.NullDecimal{} }, wantField: "p2SalePrice"},
		{name: "missing supplier cost", mutate: func(o *models.Order) { o.P0SupplierCost = decimal.NullDecimal{} }, wantField: "p0SupplierCost"},
		{name: "missing business model", mutate: func(o *models.Order) { o.BusinessModel = " " }, wantField: "businessModel"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := full
			tc.mutate(&o)
			_, err := ComputeCommissionStrict(o, nil)
			if !IsMissingField(err) {
				t.Fatalf("expected missing field error, got %v", err)
			}
			if mf := err.(MissingFieldError); mf.Field != tc.wantField {
				t.Fatalf("field: got %s want %s", mf.Field, tc.wantField)
			}
		})
	}

	res, err := ComputeCommissionStrict(full, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res, ComputeCommission(full, nil)) {
		t.Fatalf("strict result differs from permissive result")
	}
}
