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

const partnersTable = "partners"

const partnerColumns = `id,
	COALESCE(code,''),
	COALESCE(name,''),
	COALESCE(tier,''),
	COALESCE(parent_id,0),
	COALESCE(business_model,''),
	COALESCE(status,''),
	default_commission_rate,
	created_at`

type PartnerMySQLRepository struct {
	DB *sql.DB
}

func (r PartnerMySQLRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanPartner(s rowScanner) (models.Partner, error) {
	var (
		p       models.Partner
		model   string
		created sql.NullTime
	)
	if err := s.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Tier,
		&p.ParentID,
		&model,
		&p.Status,
		&p.DefaultCommissionRate,
		&created,
	); err != nil {
		return models.Partner{}, err
	}
	p.BusinessModel = models.BusinessModel(strings.ToLower(strings.TrimSpace(model)))
	if created.Valid {
		p.CreatedAt = created.Time
	}
	return p, nil
}

func (r PartnerMySQLRepository) GetByID(ctx context.Context, id int64) (models.Partner, error) {
	if id <= 0 {
		return models.Partner{}, domain.ValidationError{Field: "id", Msg: "invalid partner id"}
	}
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, partnersTable) {
		return models.Partner{}, domain.InternalError{Msg: "partners table not available"}
	}

	p, err := scanPartner(db.QueryRowContext(ctx,
		`SELECT `+partnerColumns+` FROM `+partnersTable+` WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Partner{}, domain.NotFoundError{Resource: "partner", Err: err}
		}
		return models.Partner{}, err
	}
	return p, nil
}

func (r PartnerMySQLRepository) List(ctx context.Context, f PartnerFilter) ([]models.Partner, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, partnersTable) {
		return []models.Partner{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if f.Tier != "" {
		where = append(where, "tier=?")
		args = append(args, f.Tier)
	}
	if f.ParentID > 0 {
		where = append(where, "parent_id=?")
		args = append(args, f.ParentID)
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		where = append(where, "(code LIKE ? OR name LIKE ?)")
		args = append(args, "%"+kw+"%", "%"+kw+"%")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY id ASC`,
		partnerColumns, partnersTable, strings.Join(where, " AND "))
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Partner{}
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
