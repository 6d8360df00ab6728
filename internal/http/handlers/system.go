package handlers

import (
	"context"
	"net/http"
	"time"

	"reseller-console/internal/config"
	dbutil "reseller-console/internal/db"

	"github.com/gin-gonic/gin"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"message":    "reseller console backend running",
		"dataSource": a.Env.DataSource,
	})
}

// DBCheck pings the database and reports how many orders it holds.
func (a *API) DBCheck(c *gin.Context) {
	if a.DB == nil {
		c.JSON(http.StatusOK, gin.H{
			"message":    "in-memory data source, no database configured",
			"dataSource": config.DataSourceMock,
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := a.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unreachable", "database unreachable", err.Error())
		return
	}
	if !dbutil.HasTable(ctx, a.DB, "orders") {
		c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "orders_table": false})
		return
	}

	var count int
	if err := a.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_query_failed", "failed to query database", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "orders_in_db": count})
}
