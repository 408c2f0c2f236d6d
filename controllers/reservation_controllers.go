package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

type ReservationController struct {
	Availability *services.AvailabilityService
}

func NewReservationController(availability *services.AvailabilityService) *ReservationController {
	return &ReservationController{Availability: availability}
}

func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Availability.ListReservations(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// CreateReservation -> 404 meja tidak ada, 409 meja sudah dipesan
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req services.ReservationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reservation, err := rc.Availability.CreateReservation(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Reservation confirmed", reservation)
}

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := rc.Availability.CancelReservation(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", nil)
}
