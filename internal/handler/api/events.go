package api

import (
	"io"
	"net/http"
	"strings"

	"expert-booking/internal/domain/identity"
	"expert-booking/internal/fanout"
	"expert-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventsHandler struct {
	hub *fanout.Hub
}

func NewEventsHandler(hub *fanout.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// @Summary Subscribe to push events
// @Description Server-sent event stream for one or more topics; delivery is best-effort with no replay
// @Tags events
// @Produce text/event-stream
// @Param topic query []string true "Topics: admin, provider:<id>, availability:<id>:<date>"
// @Success 200
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	topics := c.QueryArray("topic")
	if len(topics) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "At least one topic query parameter required",
		})
		return
	}

	ident, _ := middleware.GetIdentity(c)
	for _, topic := range topics {
		if err := authorizeTopic(topic, ident); err != "" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": err,
			})
			return
		}
	}

	sub := h.hub.Subscribe(topics...)
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		}
	})
}

// authorizeTopic gates the privileged rooms: the admin room needs an admin
// identity, a provider room needs that provider or an admin, and availability
// topics are open to anonymous date watchers.
func authorizeTopic(topic string, ident identity.Identity) string {
	switch {
	case topic == fanout.TopicAdmin:
		if ident.Role != identity.RoleAdmin {
			return "Admin topic requires an admin identity"
		}
	case strings.HasPrefix(topic, "provider:"):
		providerID, err := uuid.Parse(strings.TrimPrefix(topic, "provider:"))
		if err != nil {
			return "Malformed provider topic"
		}
		if !ident.CanManageProvider(providerID) {
			return "Provider topic requires the owning provider"
		}
	case strings.HasPrefix(topic, "availability:"):
		// Open to anyone watching a date.
	default:
		return "Unknown topic"
	}
	return ""
}
