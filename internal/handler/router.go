package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staymarket/internal/handler/api"
	"staymarket/internal/handler/middleware"
	"staymarket/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	propertyHandler *api.PropertyHandler,
	pricingRuleHandler *api.PricingRuleHandler,
	suggestionHandler *api.SuggestionHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, propertyHandler, pricingRuleHandler, suggestionHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.GuestContext())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	propertyHandler *api.PropertyHandler,
	pricingRuleHandler *api.PricingRuleHandler,
	suggestionHandler *api.SuggestionHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/properties", propertyHandler.CreateProperty)

		properties := apiGroup.Group("/properties/:id")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: propertyHandler.GetProperty},
				{Method: http.MethodGet, Path: "/availability", Handler: propertyHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/quote", Handler: propertyHandler.GetQuote},
				{Method: http.MethodGet, Path: "/bookings", Handler: propertyHandler.GetPropertyBookings},
				{Method: http.MethodGet, Path: "/pricing-rules", Handler: pricingRuleHandler.ListRules},
				{Method: http.MethodPost, Path: "/pricing-rules", Handler: pricingRuleHandler.CreateRule},
				{Method: http.MethodPost, Path: "/pricing-rules/:ruleID/deactivate", Handler: pricingRuleHandler.DeactivateRule},
				{Method: http.MethodGet, Path: "/suggestions", Handler: suggestionHandler.ListSuggestions},
				{Method: http.MethodPost, Path: "/suggestions", Handler: suggestionHandler.CreateSuggestion},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetGuestBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
			})
		}

		suggestions := apiGroup.Group("/suggestions")
		{
			addRoutes(suggestions, []route{
				{Method: http.MethodPost, Path: "/:id/accept", Handler: suggestionHandler.AcceptSuggestion},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: suggestionHandler.RejectSuggestion},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
