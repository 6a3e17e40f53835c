package api

import (
	"net/http"

	reqdto "staymarket/internal/handler/dto/request"
	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	propertyCommands    commands.PropertyCommands
	propertyQueries     queries.PropertyQueries
	availabilityQueries queries.AvailabilityQueries
	pricingQueries      queries.PricingQueries
	bookingQueries      queries.BookingQueries
}

func NewPropertyHandler(
	propertyCommands commands.PropertyCommands,
	propertyQueries queries.PropertyQueries,
	availabilityQueries queries.AvailabilityQueries,
	pricingQueries queries.PricingQueries,
	bookingQueries queries.BookingQueries,
) *PropertyHandler {
	return &PropertyHandler{
		propertyCommands:    propertyCommands,
		propertyQueries:     propertyQueries,
		availabilityQueries: availabilityQueries,
		pricingQueries:      pricingQueries,
		bookingQueries:      bookingQueries,
	}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req reqdto.CreatePropertyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.propertyCommands.CreateProperty(c.Request.Context(), req.ToParams())
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid property",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPropertyView(view))
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := parsePropertyID(c)
	if !ok {
		return
	}

	view, err := h.propertyQueries.GetDetail(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

func (h *PropertyHandler) GetAvailability(c *gin.Context) {
	id, ok := parsePropertyID(c)
	if !ok {
		return
	}

	checkIn, checkOut, err := reqdto.ParseStayDates(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.availabilityQueries.IsAvailable(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidStayRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func (h *PropertyHandler) GetQuote(c *gin.Context) {
	id, ok := parsePropertyID(c)
	if !ok {
		return
	}

	checkIn, checkOut, err := reqdto.ParseStayDates(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	view, err := h.pricingQueries.Quote(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func (h *PropertyHandler) GetPropertyBookings(c *gin.Context) {
	id, ok := parsePropertyID(c)
	if !ok {
		return
	}

	items, err := h.bookingQueries.ListByProperty(c.Request.Context(), id, queryLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

func parsePropertyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
