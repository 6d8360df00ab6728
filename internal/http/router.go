package api

import (
	stdhttp "net/http"

	intconfig "reseller-console/internal/config"
	h "reseller-console/internal/http/handlers"
	"reseller-console/internal/http/middleware"
	"reseller-console/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/db-check", a.DBCheck)

		// Auth
		api.POST("/auth/login", a.Login)

		secured := api.Group("", middleware.AuthRequired([]byte(env.JWTSecret)))

		// Dashboard
		secured.GET("/dashboard/summary", a.DashboardSummary)

		// Orders
		orders := secured.Group("/orders")
		orders.GET("", a.ListOrders)
		orders.GET("/:id", a.GetOrder)
		orders.GET("/:id/commission", a.GetOrderCommission)
		orders.GET("/:id/nightly", a.GetOrderNightly)
		orders.GET("/by-no/:orderNo/commission", a.GetOrderCommissionByNo)

		// Partners
		partners := secured.Group("/partners")
		partners.GET("", a.ListPartners)
		partners.GET("/:id", a.GetPartner)

		// Settlements
		settlements := secured.Group("/settlements")
		settlements.GET("", a.ListSettlements)
		settlements.GET("/:id", a.GetSettlement)
		settlements.GET("/:id/statement", middleware.RequireRoles("admin", "finance"), a.GetSettlementStatement)
	}

	return r
}
