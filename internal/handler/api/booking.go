package api

import (
	"net/http"

	reqdto "staymarket/internal/handler/dto/request"
	resdto "staymarket/internal/handler/dto/response"
	"staymarket/internal/handler/middleware"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: cmds,
		bookingQueries:  qs,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Guest-ID header is required",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, checkOut, err := req.StayDates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	params := commands.CreateBookingParams{
		PropertyID: req.PropertyID,
		GuestID:    guestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errs.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking request",
			})
		case errs.Is(err, errs.ErrPropertyInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Property is not accepting bookings",
			})
		case errs.Is(err, errs.ErrTooManyGuests):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest count exceeds property capacity",
			})
		case errs.Is(err, errs.ErrStayTooShort):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Stay is shorter than the property minimum",
			})
		case errs.Is(err, errs.ErrDatesUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested dates are unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) GetGuestBookings(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Guest-ID header is required",
		})
		return
	}

	items, err := h.bookingQueries.ListByGuest(c.Request.Context(), guestID, queryLimit(c))
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

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	guestID, ok := middleware.GetGuestID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Guest-ID header is required",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id, guestID); err != nil {
		switch {
		case errs.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errs.Is(err, errs.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking cannot be cancelled in its current status",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
