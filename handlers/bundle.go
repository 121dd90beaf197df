package handlers

import (
	"github.com/ArafatSadi1/doctors-portal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the auth gate for route registration.
type HandlerBundle struct {
	Gate *middleware.AuthGate

	// Liveness
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc

	// User endpoints
	GetAllUsersHandler gin.HandlerFunc
	IsAdminHandler     gin.HandlerFunc
	GrantAdminHandler  gin.HandlerFunc
	UpsertUserHandler  gin.HandlerFunc

	// Doctor endpoints (admin)
	ListDoctorsHandler  gin.HandlerFunc
	AddDoctorHandler    gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc

	// Booking endpoints
	GetPatientBookingsHandler gin.HandlerFunc
	CreateBookingHandler      gin.HandlerFunc
	GetServicesHandler        gin.HandlerFunc
	GetAvailableHandler       gin.HandlerFunc
}
