//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"expert-booking/internal/domain/schedule"
	"expert-booking/internal/handler/api"
	resdto "expert-booking/internal/handler/dto/response"
	"expert-booking/internal/pkg/errs"
	"expert-booking/tests/common/httptest"
	queriesmock "expert-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAvbl *queriesmock.MockAvailabilityQueries
	handler  *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvbl = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvbl)

	s.router.GET("/providers/:id/slots", s.handler.GetOpenSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetOpenSlots() {
	providerID := uuid.New()
	url := "/providers/" + providerID.String() + "/slots?date=2030-06-15"

	s.Run("success: returns merged slots", func() {
		slots := []schedule.CandidateSlot{
			{Time: "09:00", Available: true},
			{Time: "10:00", Available: false},
		}
		s.mockAvbl.EXPECT().OpenSlots(gomock.Any(), providerID, gomock.Any()).Return(slots, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(providerID, response.ProviderID)
		s.Equal("2030-06-15", response.Date)
		s.Len(response.Slots, 2)
		s.False(response.Slots[1].Available)
	})

	s.Run("error: 400 on malformed provider id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/providers/nope/slots?date=2030-06-15", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 422 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/providers/"+providerID.String()+"/slots?date=June-15", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 404 on unknown provider", func() {
		s.mockAvbl.EXPECT().OpenSlots(gomock.Any(), providerID, gomock.Any()).Return(nil, errs.ErrProviderNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
