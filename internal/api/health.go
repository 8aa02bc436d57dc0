package api

import (
	"net/http"
	"runtime"
	"strings"

	"leadgate/internal/config"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health reports configuration and runtime diagnostics. It never touches
// the database and always answers 200.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"status":             "ok",
			"databaseConfigured": h.cfg.DBDriver == "sqlite" || h.cfg.DatabaseURL != "",
			"databaseDriver":     h.cfg.DBDriver,
			"database":           redactDSN(h.cfg.DatabaseURL),
			"jwtConfigured":      h.cfg.JWTSecret != "",
			"goVersion":          runtime.Version(),
			"platform":           runtime.GOOS + "/" + runtime.GOARCH,
			"environment":        h.cfg.Env,
		},
	})
}

// redactDSN keeps only the scheme of a connection string so the health
// endpoint never leaks credentials.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}
	return "..."
}
