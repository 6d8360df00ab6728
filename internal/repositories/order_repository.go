package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "reseller-console/internal/config"
	intdb "reseller-console/internal/db"
	"reseller-console/internal/domain"
	"reseller-console/internal/domain/models"
)

const (
	ordersTable  = "orders"
	nightlyTable = "order_nightly_prices"
)

// Decimal columns are selected raw so NULL stays distinguishable from 0.
const orderColumns = `id,
	COALESCE(order_no,''),
	COALESCE(hotel_name,''),
	COALESCE(room_type,''),
	COALESCE(guest_name,''),
	COALESCE(check_in,''),
	COALESCE(check_out,''),
	COALESCE(status,''),
	COALESCE(partner_id,0),
	COALESCE(big_b_id,0),
	COALESCE(business_model,''),
	p0_supplier_cost,
	p1_platform_price,
	p2_sale_price,
	partner_commission_rate,
	platform_profit,
	partner_profit,
	big_b_profit,
	created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type OrderMySQLRepository struct {
	DB *sql.DB
}

func (r OrderMySQLRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanOrder(s rowScanner) (models.Order, error) {
	var (
		o       models.Order
		model   string
		created sql.NullTime
	)
	err := s.Scan(
		&o.ID,
		&o.OrderNo,
		&o.HotelName,
		&o.RoomType,
		&o.GuestName,
		&o.CheckIn,
		&o.CheckOut,
		&o.Status,
		&o.PartnerID,
		&o.BigBID,
		&model,
		&o.P0SupplierCost,
		&o.P1PlatformPrice,
		&o.P2SalePrice,
		&o.PartnerCommissionRate,
		&o.PlatformProfit,
		&o.PartnerProfit,
		&o.BigBProfit,
		&created,
	)
	if err != nil {
		return models.Order{}, err
	}
	o.BusinessModel = models.BusinessModel(strings.ToLower(strings.TrimSpace(model)))
	if created.Valid {
		o.CreatedAt = created.Time
	}
	return o, nil
}

func (r OrderMySQLRepository) getOne(ctx context.Context, where string, arg any) (models.Order, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, ordersTable) {
		return models.Order{}, domain.InternalError{Msg: "orders table not available"}
	}
	query := `SELECT ` + orderColumns + ` FROM ` + ordersTable + ` WHERE ` + where + ` LIMIT 1`
	o, err := scanOrder(db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, domain.NotFoundError{Resource: "order", Err: err}
		}
		return models.Order{}, err
	}
	return o, nil
}

func (r OrderMySQLRepository) GetByID(ctx context.Context, id int64) (models.Order, error) {
	if id <= 0 {
		return models.Order{}, domain.ValidationError{Field: "id", Msg: "invalid order id"}
	}
	return r.getOne(ctx, "id=?", id)
}

func (r OrderMySQLRepository) GetByOrderNo(ctx context.Context, orderNo string) (models.Order, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return models.Order{}, domain.ValidationError{Field: "order_no", Msg: "order number required"}
	}
	return r.getOne(ctx, "order_no=?", orderNo)
}

// List returns orders matching f, newest first.
func (r OrderMySQLRepository) List(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, ordersTable) {
		return []models.Order{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if f.BusinessModel != "" {
		where = append(where, "business_model=?")
		args = append(args, string(f.BusinessModel))
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "status=?")
		args = append(args, s)
	}
	if f.PartnerID > 0 {
		where = append(where, "(partner_id=? OR big_b_id=?)")
		args = append(args, f.PartnerID, f.PartnerID)
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		like := "%" + kw + "%"
		where = append(where, "(order_no LIKE ? OR hotel_name LIKE ? OR guest_name LIKE ?)")
		args = append(args, like, like, like)
	}
	if from := strings.TrimSpace(f.From); from != "" {
		where = append(where, "DATE(created_at)>=?")
		args = append(args, from)
	}
	if to := strings.TrimSpace(f.To); to != "" {
		where = append(where, "DATE(created_at)<=?")
		args = append(args, to)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY created_at DESC, id DESC`,
		orderColumns, ordersTable, strings.Join(where, " AND "))
	return r.query(ctx, db, query, args...)
}

// ListByIDs returns the orders with the given ids in id order. Unknown ids are skipped.
func (r OrderMySQLRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Order, error) {
	if len(ids) == 0 {
		return []models.Order{}, nil
	}
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, ordersTable) {
		return []models.Order{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id IN (%s) ORDER BY id ASC`,
		orderColumns, ordersTable, intdb.Placeholders(len(ids)))
	return r.query(ctx, db, query, intdb.Int64Args(ids)...)
}

func (r OrderMySQLRepository) query(ctx context.Context, db *sql.DB, query string, args ...any) ([]models.Order, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return out, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ListNightly returns the per-night rows of an order by stay date.
// A database without the nightly table yields no rows.
func (r OrderMySQLRepository) ListNightly(ctx context.Context, orderID int64) ([]models.NightlyPrice, error) {
	if orderID <= 0 {
		return nil, domain.ValidationError{Field: "order_id", Msg: "invalid order id"}
	}
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, nightlyTable) {
		return []models.NightlyPrice{}, nil
	}

	// SaaS write-time profit columns were added later; older tables read them as NULL.
	partnerProfit := optionalColumn(ctx, db, nightlyTable, "partner_profit")
	bigBProfit := optionalColumn(ctx, db, nightlyTable, "big_b_profit")

	rows, err := db.QueryContext(ctx, `
		SELECT id,
		       order_id,
		       COALESCE(stay_date,''),
		       COALESCE(status,'normal'),
		       p0_supplier_cost,
		       p1_platform_price,
		       p2_sale_price,
		       COALESCE(discount,0),
		       COALESCE(refund_amount,0),
		       `+partnerProfit+`,
		       `+bigBProfit+`
		FROM `+nightlyTable+`
		WHERE order_id=?
		ORDER BY stay_date ASC, id ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.NightlyPrice{}
	for rows.Next() {
		var n models.NightlyPrice
		if err := rows.Scan(
			&n.ID,
			&n.OrderID,
			&n.Date,
			&n.Status,
			&n.P0SupplierCost,
			&n.P1PlatformPrice,
			&n.P2SalePrice,
			&n.Discount,
			&n.RefundAmount,
			&n.PartnerProfit,
			&n.BigBProfit,
		); err != nil {
			return out, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// optionalColumn returns column when it exists, otherwise a NULL literal.
func optionalColumn(ctx context.Context, db *sql.DB, table, column string) string {
	if intdb.HasColumn(ctx, db, table, column) {
		return column
	}
	return "NULL"
}
