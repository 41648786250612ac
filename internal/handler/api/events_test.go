//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"expert-booking/internal/domain/identity"
	"expert-booking/internal/fanout"
	"expert-booking/internal/handler/api"
	"expert-booking/internal/pkg/config"
	"expert-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// Only the pre-subscribe paths are exercised here: topic validation and
// authorization reject before the stream starts, so the requests terminate.
type EventsHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	handler *api.EventsHandler
	ident   *identity.Identity
}

func (s *EventsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.ident = nil

	hub := fanout.NewHub(config.FanoutConfig{SubscriberBuffer: 4})
	s.handler = api.NewEventsHandler(hub)

	s.router.GET("/events", func(c *gin.Context) {
		if s.ident != nil {
			c.Set("identity", *s.ident)
		}
		s.handler.Stream(c)
	})
}

func TestEventsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventsHandlerTestSuite))
}

func (s *EventsHandlerTestSuite) TestTopicAuthorization() {
	providerID := uuid.New()

	s.Run("no topics is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown topic is 403", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?topic=bogus", nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("admin topic without identity is 403", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?topic=admin", nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("provider topic for another provider is 403", func() {
		s.ident = &identity.Identity{ID: uuid.New(), Role: identity.RoleProvider}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?topic=provider:"+providerID.String(), nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("malformed provider topic is 403", func() {
		s.ident = &identity.Identity{ID: providerID, Role: identity.RoleProvider}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?topic=provider:not-a-uuid", nil, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
