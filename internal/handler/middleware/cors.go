package middleware

import (
	"log/slog"
	"slices"

	"staymarket/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// guestIDHeader must stay allowed regardless of the configured header list;
// browser clients identify themselves with it on every booking call.
const guestIDHeader = "X-Guest-ID"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := cfg.AllowHeaders
	if !slices.Contains(allowHeaders, guestIDHeader) {
		allowHeaders = append(slices.Clone(allowHeaders), guestIDHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins, "allow_headers", allowHeaders)
	return cors.New(corsCfg)
}
