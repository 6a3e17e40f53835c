//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"staymarket/internal/handler/api"
	"staymarket/internal/handler/middleware"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/queries"
	"staymarket/tests/common/builder"
	"staymarket/tests/common/httptest"
	"staymarket/tests/common/testutil"
	commandsmock "staymarket/tests/mock/commands"
	queriesmock "staymarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingRuleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPricingRuleCommands
	mockQueries  *queriesmock.MockPricingQueries
	handler      *api.PricingRuleHandler
}

func (s *PricingRuleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.GuestContext())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPricingRuleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.handler = api.NewPricingRuleHandler(s.mockCommands, s.mockQueries)

	// Setup routes
	s.router.POST("/properties/:id/pricing-rules", s.handler.CreateRule)
	s.router.GET("/properties/:id/pricing-rules", s.handler.ListRules)
	s.router.POST("/properties/:id/pricing-rules/:ruleID/deactivate", s.handler.DeactivateRule)
}

func (s *PricingRuleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingRuleHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingRuleHandlerTestSuite))
}

// ================================================================================
// TestCreateRule
// ================================================================================

func (s *PricingRuleHandlerTestSuite) TestCreateRule() {
	b := builder.NewPricingRuleBuilder()
	url := "/properties/" + b.PropertyID.String() + "/pricing-rules"
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the new rule ID", func() {
		s.mockCommands.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
			Return(b.ID, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID.String(), body["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationTestCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: kind (required)", mutate: testutil.Field("kind", nil)},
			{name: "missing field: adjustment_kind (required)", mutate: testutil.Field("adjustment_kind", nil)},
			{name: "malformed start_date", mutate: testutil.Field("start_date", "next friday")},
			{name: "malformed end_date", mutate: testutil.Field("end_date", "2026/06/10")},
		}

		for _, tc := range validationTestCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for malformed property ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/properties/abc/pricing-rules", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid property ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid rule",
				commandsError:  errs.Mark(errors.New("unknown kind"), errs.ErrInvalidPricingRule),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid pricing rule",
			},
			{
				name:           "property not found",
				commandsError:  errs.ErrPropertyNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Property not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListRules
// ================================================================================

func (s *PricingRuleHandlerTestSuite) TestListRules() {
	b := builder.NewPricingRuleBuilder()
	url := "/properties/" + b.PropertyID.String() + "/pricing-rules"

	s.Run("success: returns 200 OK with the property's rules", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), b.PropertyID).
			Return([]*queries.PricingRuleView{b.BuildView()}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(b.ID.String(), body[0]["id"])
		s.Equal(b.Kind, body[0]["kind"])
		s.Equal(b.AdjustmentValue, body[0]["adjustmentValue"])
	})

	s.Run("success: returns empty list when the property has no rules", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), b.PropertyID).
			Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListRules(gomock.Any(), b.PropertyID).
			Return(nil, errors.New("connection refused")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestDeactivateRule
// ================================================================================

func (s *PricingRuleHandlerTestSuite) TestDeactivateRule() {
	b := builder.NewPricingRuleBuilder()
	url := "/properties/" + b.PropertyID.String() + "/pricing-rules/" + b.ID.String() + "/deactivate"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeactivateRule(gomock.Any(), b.ID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for malformed rule ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/properties/"+b.PropertyID.String()+"/pricing-rules/xyz/deactivate", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rule ID")
	})

	s.Run("error: 404 Not Found for unknown rule", func() {
		s.mockCommands.EXPECT().DeactivateRule(gomock.Any(), b.ID).
			Return(errs.ErrPricingRuleNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pricing rule not found")
	})
}
