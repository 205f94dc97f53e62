package handlers

import (
	"errors"
	"net/http"

	itineraryRepo "gridtrip/database/repository/itinerary"
	"gridtrip/models"
	"gridtrip/services/itinerary"
	"gridtrip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItineraryHandler exposes the planner over HTTP.
type ItineraryHandler struct {
	Service itinerary.ItineraryService
}

// NewItineraryHandler constructs an ItineraryHandler.
func NewItineraryHandler(svc itinerary.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{Service: svc}
}

// CreateItineraryHandler handles POST /api/events/:eventID/itineraries.
func (h *ItineraryHandler) CreateItineraryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	eventID := c.Param("eventID")

	var window models.TripWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid trip window", err.Error())
		return
	}

	plan, err := h.Service.CreateItinerary(c.Request.Context(), eventID, window)
	if err != nil {
		var rangeErr *itinerary.InvalidRangeError
		var catalogErr *itinerary.CatalogUnavailableError
		var storageErr *itinerary.StorageError
		switch {
		case errors.As(err, &rangeErr):
			utils.JSONError(c, http.StatusBadRequest, "Invalid trip window", rangeErr.Error())
		case errors.As(err, &catalogErr):
			logger.Error("catalog unavailable", zap.String("eventId", eventID), zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "Event catalog unavailable", "Please try again shortly.")
		case errors.As(err, &storageErr):
			logger.Error("itinerary storage failed", zap.String("eventId", eventID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to save itinerary", "Please try again shortly.")
		default:
			logger.Error("itinerary creation failed", zap.String("eventId", eventID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create itinerary", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"itineraryId": plan.ID,
		"itinerary":   plan,
	})
}

// GetItineraryHandler handles GET /api/itineraries/:id.
func (h *ItineraryHandler) GetItineraryHandler(c *gin.Context) {
	id := c.Param("id")

	plan, err := h.Service.GetItinerary(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, itineraryRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Itinerary not found", "The link may have expired.")
			return
		}
		utils.GetLogger().Error("itinerary read failed", zap.String("itineraryId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load itinerary", "Please try again shortly.")
		return
	}

	c.JSON(http.StatusOK, plan)
}
