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
	batchesTable     = "settlement_batches"
	batchOrdersTable = "settlement_batch_orders"
)

const batchColumns = `id,
	COALESCE(batch_no,''),
	COALESCE(partner_id,0),
	COALESCE(period_start,''),
	COALESCE(period_end,''),
	COALESCE(status,''),
	created_at`

type SettlementMySQLRepository struct {
	DB *sql.DB
}

func (r SettlementMySQLRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanBatch(s rowScanner) (models.SettlementBatch, error) {
	var (
		b       models.SettlementBatch
		created sql.NullTime
	)
	if err := s.Scan(&b.ID, &b.BatchNo, &b.PartnerID, &b.PeriodStart, &b.PeriodEnd, &b.Status, &created); err != nil {
		return models.SettlementBatch{}, err
	}
	if created.Valid {
		b.CreatedAt = created.Time
	}
	return b, nil
}

func (r SettlementMySQLRepository) GetByID(ctx context.Context, id int64) (models.SettlementBatch, error) {
	if id <= 0 {
		return models.SettlementBatch{}, domain.ValidationError{Field: "id", Msg: "invalid batch id"}
	}
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, batchesTable) {
		return models.SettlementBatch{}, domain.InternalError{Msg: "settlement_batches table not available"}
	}

	b, err := scanBatch(db.QueryRowContext(ctx,
		`SELECT `+batchColumns+` FROM `+batchesTable+` WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SettlementBatch{}, domain.NotFoundError{Resource: "settlement batch", Err: err}
		}
		return models.SettlementBatch{}, err
	}

	ids, err := r.orderIDs(ctx, db, b.ID)
	if err != nil {
		return models.SettlementBatch{}, err
	}
	b.OrderIDs = ids
	return b, nil
}

func (r SettlementMySQLRepository) orderIDs(ctx context.Context, db *sql.DB, batchID int64) ([]int64, error) {
	if !intdb.HasTable(ctx, db, batchOrdersTable) {
		return []int64{}, nil
	}
	rows, err := db.QueryContext(ctx,
		`SELECT order_id FROM `+batchOrdersTable+` WHERE batch_id=? ORDER BY order_id ASC`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// List returns batches without their order ids; use GetByID for the full batch.
func (r SettlementMySQLRepository) List(ctx context.Context, f SettlementFilter) ([]models.SettlementBatch, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, batchesTable) {
		return []models.SettlementBatch{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if f.PartnerID > 0 {
		where = append(where, "partner_id=?")
		args = append(args, f.PartnerID)
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "status=?")
		args = append(args, s)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY created_at DESC, id DESC`,
		batchColumns, batchesTable, strings.Join(where, " AND "))
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SettlementBatch{}
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
