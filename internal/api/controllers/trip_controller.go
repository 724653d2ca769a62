package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisy/internal/models/request_models"
	"cruisy/internal/models/response_models"
	"cruisy/internal/models/trip_models"
	"cruisy/internal/services"
	"cruisy/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GetTrip godoc
// @Summary Get the trip checklist
// @Description Fetch the itinerary, essentials and derived booking progress
// @Tags Trip
// @Produce json
// @Success 200 {object} response_models.TripResponse
// @Router /trip [get]
func (t *TripController) GetTrip(c *gin.Context) {
	state := t.tripService.Snapshot()
	utils.RespondSuccess(c, response_models.TripResponse{
		Itinerary:  state.Itinerary,
		Essentials: state.Essentials,
		Summary:    trip_models.Summarize(state),
	}, "Trip fetched successfully")
}

// AddToItinerary godoc
// @Summary Add an activity to the itinerary
// @Description Adding an activity that is already present is a no-op
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.AddActivityRequest true "Activity to add"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/itinerary [post]
func (t *TripController) AddToItinerary(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Activity.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity with an id is required")
		return
	}

	t.tripService.AddToItinerary(c.Request.Context(), req.Activity)
	t.respondTrip(c, "Activity added to itinerary")
}

func (t *TripController) RemoveFromItinerary(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Activity ID is required")
		return
	}

	t.tripService.RemoveFromItinerary(c.Request.Context(), id)
	t.respondTrip(c, "Activity removed from itinerary")
}

// ToggleBooked flips the booked checkbox on one itinerary or essentials
// entry. An unknown id is a silent no-op, mirroring the store contract.
func (t *TripController) ToggleBooked(c *gin.Context) {
	var req request_models.ToggleBookedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "ID and kind are required")
		return
	}

	kind := trip_models.ToggleKind(req.Kind)
	if kind != trip_models.ToggleActivity && kind != trip_models.ToggleEssential {
		utils.RespondError(c, http.StatusBadRequest, "Kind must be \"activity\" or \"essential\"")
		return
	}

	t.tripService.ToggleBooked(c.Request.Context(), req.ID, kind)
	t.respondTrip(c, "Checklist entry toggled")
}

func (t *TripController) ClearTrip(c *gin.Context) {
	t.tripService.Clear(c.Request.Context())
	t.respondTrip(c, "Trip cleared")
}

func (t *TripController) respondTrip(c *gin.Context, message string) {
	state := t.tripService.Snapshot()
	utils.RespondSuccess(c, response_models.TripResponse{
		Itinerary:  state.Itinerary,
		Essentials: state.Essentials,
		Summary:    trip_models.Summarize(state),
	}, message)
}
