//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"printcanvas/internal/handler/api"
	resdto "printcanvas/internal/handler/dto/response"
	"printcanvas/internal/pkg/errs"
	"printcanvas/internal/usecase/commands"
	"printcanvas/internal/usecase/queries"
	"printcanvas/tests/common/builder"
	"printcanvas/tests/common/httptest"
	"printcanvas/tests/common/testutil"
	commandsmock "printcanvas/tests/mock/commands"
	queriesmock "printcanvas/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
	customerID   uuid.UUID
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)
	s.customerID = uuid.New()

	// Mock storefront authentication for the public route; admin routes sit
	// behind merchant auth in the real router.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("customer_id", s.customerID)
		c.Next()
	}

	s.router.POST("/coupons/redeem", authMiddleware, s.handler.Redeem)
	s.router.POST("/admin/coupons", s.handler.Create)
	s.router.GET("/admin/coupons", s.handler.List)
	s.router.DELETE("/admin/coupons/:id", s.handler.Deactivate)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *CouponHandlerTestSuite) TestRedeem() {
	url := "/coupons/redeem"
	reqBody := map[string]any{"code": "WELCOME10"}

	s.Run("success: returns the credited balance", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "WELCOME10", s.customerID).
			Return(&commands.RedeemResult{CreditsAdded: 10, NewBalance: 15}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(10), response.CreditsAdded)
		s.Equal(int32(15), response.NewBalance)
	})

	s.Run("error: 400 Bad Request when code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "coupon not found",
				commandsError:  errs.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coupon not found",
			},
			{
				name:           "coupon inactive",
				commandsError:  errs.ErrCouponInactive,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not active",
			},
			{
				name:           "coupon expired",
				commandsError:  errs.ErrCouponExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "expired",
			},
			{
				name:           "coupon exhausted",
				commandsError:  errs.ErrCouponExhausted,
				expectedStatus: http.StatusGone,
				expectedMsg:    "usage limit",
			},
			{
				name:           "already redeemed",
				commandsError:  errs.ErrCouponAlreadyRedeemed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already redeemed",
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
				s.mockCommands.EXPECT().Redeem(gomock.Any(), "WELCOME10", s.customerID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CouponHandlerTestSuite) TestCreate() {
	url := "/admin/coupons"
	reqBody := builder.NewCouponBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the coupon id", func() {
		couponID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(couponID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CouponCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(couponID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: code (required)", mutate: testutil.Field("code", nil)},
			{name: "missing field: creditAmount (required)", mutate: testutil.Field("creditAmount", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid parameters",
				commandsError:  errs.ErrInvalidCouponInput,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid coupon parameters",
			},
			{
				name:           "duplicate code",
				commandsError:  errs.ErrCouponCodeTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already exists",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *CouponHandlerTestSuite) TestList() {
	url := "/admin/coupons"

	view := func() *queries.CouponAdminView {
		b := builder.NewCouponBuilder()
		return &queries.CouponAdminView{
			ID:           b.ID,
			Code:         b.Code,
			CreditAmount: b.CreditAmount,
			MaxUses:      b.MaxUses,
			UsedCount:    b.UsedCount,
			IsActive:     b.IsActive,
			ExpiresAt:    b.ExpiresAt,
		}
	}
	items := []*queries.CouponAdminView{view(), view()}

	s.Run("success: returns the coupon list", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), queries.Page{Number: 1, Size: 20}).
			Return(items, int64(2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CouponListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Coupons, 2)
		s.Equal(int64(2), response.Total)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), gomock.Any()).
			Return(nil, int64(0), errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestDeactivate
// ================================================================================

func (s *CouponHandlerTestSuite) TestDeactivate() {
	couponID := uuid.New()
	url := "/admin/coupons/" + couponID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), couponID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/coupons/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon ID")
	})

	s.Run("error: 404 Not Found for unknown coupon", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), couponID).
			Return(errs.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}
