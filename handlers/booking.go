package handlers

import (
	"fmt"
	"net/http"

	"github.com/ArafatSadi1/doctors-portal/middleware"
	"github.com/ArafatSadi1/doctors-portal/models"
	"github.com/ArafatSadi1/doctors-portal/services/booking"
	"github.com/ArafatSadi1/doctors-portal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves bookings, the service catalogue and availability.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(bs booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: bs}
}

// GetPatientBookingsHandler lists the bookings of ?email=. Callers may only read their own.
func (h *BookingHandler) GetPatientBookingsHandler(c *gin.Context) {
	patient := c.Query("email")
	if err := middleware.RequireSelf(c, patient); err != nil {
		utils.AbortWithError(c, err)
		return
	}

	bookings, err := h.BookingService.GetPatientBookings(c.Request.Context(), patient)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler answers {success:true, result} for a new booking and
// {success:false, bookingInfo} when the patient already holds that treatment on that date.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.AbortWithError(c, fmt.Errorf("%w: %v", utils.ErrBadRequest, err))
		return
	}

	result, err := h.BookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}

	if result.Duplicate != nil {
		c.JSON(http.StatusOK, models.BookingResponse{Success: false, BookingInfo: result.Duplicate})
		return
	}
	getLogger(c).Info("Booking created",
		zap.String("treatment", result.Created.Treatment),
		zap.String("date", result.Created.Date),
		zap.String("slot", result.Created.Slot))
	c.JSON(http.StatusOK, models.BookingResponse{Success: true, Result: result.Insert})
}

func (h *BookingHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.BookingService.GetServices(c.Request.Context())
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailableHandler returns each service with the slots still open on ?date=.
func (h *BookingHandler) GetAvailableHandler(c *gin.Context) {
	services, err := h.BookingService.GetAvailability(c.Request.Context(), c.Query("date"))
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}
