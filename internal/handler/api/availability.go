package api

import (
	"errors"
	"net/http"

	"expert-booking/internal/domain/schedule"
	resdto "expert-booking/internal/handler/dto/response"
	"expert-booking/internal/pkg/errs"
	"expert-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary Resolve open slots
// @Description Merge the provider's slot template for a date with active claims in the ledger
// @Tags availability
// @Produce json
// @Param id path string true "Provider ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /providers/{id}/slots [get]
func (h *AvailabilityHandler) GetOpenSlots(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid provider ID format",
		})
		return
	}

	date, err := schedule.NewDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availability.OpenSlots(c.Request.Context(), providerID, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProviderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Provider not found",
			})
		case errors.Is(err, errs.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCandidateSlots(providerID, date.String(), slots))
}
