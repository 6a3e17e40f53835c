//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"staymarket/internal/handler/api"
	"staymarket/internal/handler/middleware"
	"staymarket/internal/infra"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/tests/common/builder"
	"staymarket/tests/common/httptest"
	"staymarket/tests/common/testutil"
	commandsmock "staymarket/tests/mock/commands"
	queriesmock "staymarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockPropertyCommands
	mockProperty     *queriesmock.MockPropertyQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockPricing      *queriesmock.MockPricingQueries
	mockBookings     *queriesmock.MockBookingQueries
	handler          *api.PropertyHandler
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.GuestContext())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPropertyCommands(s.mockCtrl)
	s.mockProperty = queriesmock.NewMockPropertyQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewPropertyHandler(s.mockCommands, s.mockProperty, s.mockAvailability, s.mockPricing, s.mockBookings)

	// Setup routes
	s.router.POST("/properties", s.handler.CreateProperty)
	s.router.GET("/properties/:id", s.handler.GetProperty)
	s.router.GET("/properties/:id/availability", s.handler.GetAvailability)
	s.router.GET("/properties/:id/quote", s.handler.GetQuote)
	s.router.GET("/properties/:id/bookings", s.handler.GetPropertyBookings)
}

func (s *PropertyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

// ================================================================================
// TestCreateProperty
// ================================================================================

func (s *PropertyHandlerTestSuite) TestCreateProperty() {
	url := "/properties"

	b := builder.NewPropertyBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateProperty(gomock.Any(), b.BuildCreateParams()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.Name, body["name"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationTestCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: host_id (required)", mutate: testutil.Field("host_id", nil)},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: base_rate (required)", mutate: testutil.Field("base_rate", nil)},
			{name: "max_guests boundary invalid (0)", mutate: testutil.Field("max_guests", 0)},
		}

		for _, tc := range validationTestCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("negative base rate"), errs.ErrDomainValidation)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid property")
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetProperty
// ================================================================================

func (s *PropertyHandlerTestSuite) TestGetProperty() {
	returnView := builder.NewPropertyBuilder().BuildView()
	url := "/properties/" + returnView.ID.String()

	s.Run("success: returns 200 OK with property detail", func() {
		s.mockProperty.EXPECT().GetDetail(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.BaseRate, body["baseRate"])
		s.Equal(returnView.IsActive, body["isActive"])
	})

	s.Run("error: 400 Bad Request for malformed property ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/properties/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid property ID")
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		s.mockProperty.EXPECT().GetDetail(gomock.Any(), returnView.ID).
			Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})
}

// ================================================================================
// TestGetAvailability
// ================================================================================

func (s *PropertyHandlerTestSuite) TestGetAvailability() {
	view := builder.NewPropertyBuilder().BuildView()
	base := "/properties/" + view.ID.String() + "/availability"
	checkIn := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	url := base + "?check_in=2026-06-10&check_out=2026-06-13"

	s.Run("success: returns 200 OK with availability", func() {
		s.mockAvailability.EXPECT().IsAvailable(gomock.Any(), view.ID, checkIn, checkOut).
			Return(&queries.AvailabilityView{
				PropertyID: view.ID,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Available:  true,
			}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["available"])
		s.Equal("2026-06-10", body["checkIn"])
	})

	s.Run("error: 400 Bad Request on missing date parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 Bad Request on inverted date range", func() {
		s.mockAvailability.EXPECT().IsAvailable(gomock.Any(), view.ID, checkOut, checkIn).
			Return(nil, errs.ErrInvalidStayRange).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			base+"?check_in=2026-06-13&check_out=2026-06-10", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out must be after check-in")
	})
}

// ================================================================================
// TestGetQuote
// ================================================================================

func (s *PropertyHandlerTestSuite) TestGetQuote() {
	view := builder.NewPropertyBuilder().BuildView()
	base := "/properties/" + view.ID.String() + "/quote"
	checkIn := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	url := base + "?check_in=2026-06-10&check_out=2026-06-12"

	quote := &queries.QuoteView{
		PropertyID: view.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights: []queries.NightPriceView{
			{Date: checkIn, Price: 120},
			{Date: checkIn.AddDate(0, 0, 1), Price: 150},
		},
		Total:   270,
		Average: 135,
	}

	s.Run("success: returns 200 OK with per-night prices", func() {
		s.mockPricing.EXPECT().Quote(gomock.Any(), view.ID, checkIn, checkOut).
			Return(quote, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(quote.Total, body["total"])
		s.Equal(quote.Average, body["average"])
		nights, ok := body["nights"].([]any)
		s.Require().True(ok)
		s.Len(nights, 2)
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		s.mockPricing.EXPECT().Quote(gomock.Any(), view.ID, checkIn, checkOut).
			Return(nil, infra.WrapRepoErr("property not found", nil, infra.KindNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})

	s.Run("error: 400 Bad Request on malformed dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			base+"?check_in=tomorrow&check_out=2026-06-12", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

// ================================================================================
// TestGetPropertyBookings
// ================================================================================

func (s *PropertyHandlerTestSuite) TestGetPropertyBookings() {
	propertyID := builder.NewPropertyBuilder().ID
	url := "/properties/" + propertyID.String() + "/bookings"

	s.Run("success: returns 200 OK with bookings for the property", func() {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.PropertyID = propertyID
		})
		s.mockBookings.EXPECT().ListByProperty(gomock.Any(), propertyID, 0).
			Return([]*queries.BookingListItem{b.BuildListItem()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(b.ID.String(), body[0]["id"])
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockBookings.EXPECT().ListByProperty(gomock.Any(), propertyID, 0).
			Return(nil, errors.New("connection refused")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
