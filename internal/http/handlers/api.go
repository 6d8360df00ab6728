package handlers

import (
	"database/sql"

	"reseller-console/internal/config"
	"reseller-console/internal/http/middleware"
	"reseller-console/internal/repositories"
	"reseller-console/internal/services"

	"github.com/gin-gonic/gin"
)

// API holds the data sources every handler works against.
// DB is nil when the console runs on the in-memory store.
type API struct {
	Env         config.Env
	DB          *sql.DB
	Orders      repositories.OrderRepository
	Partners    repositories.PartnerRepository
	Settlements repositories.SettlementRepository
}

// NewMockAPI wires every repository to one seeded in-memory store.
func NewMockAPI(env config.Env) *API {
	store := repositories.NewMockStore()
	return &API{
		Env:         env,
		Orders:      repositories.MockOrderRepository{Store: store},
		Partners:    repositories.MockPartnerRepository{Store: store},
		Settlements: repositories.MockSettlementRepository{Store: store},
	}
}

// NewMySQLAPI wires every repository to db.
func NewMySQLAPI(env config.Env, db *sql.DB) *API {
	return &API{
		Env:         env,
		DB:          db,
		Orders:      repositories.OrderMySQLRepository{DB: db},
		Partners:    repositories.PartnerMySQLRepository{DB: db},
		Settlements: repositories.SettlementMySQLRepository{DB: db},
	}
}

func (a *API) commissionService(c *gin.Context) services.CommissionService {
	return services.CommissionService{
		Orders:    a.Orders,
		Partners:  a.Partners,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a *API) settlementService(c *gin.Context) services.SettlementService {
	return services.SettlementService{
		Batches:   a.Settlements,
		Orders:    a.Orders,
		Partners:  a.Partners,
		RequestID: middleware.GetRequestID(c),
	}
}
