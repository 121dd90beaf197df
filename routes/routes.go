package routes

import (
	"time"

	"github.com/ArafatSadi1/doctors-portal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes registers the liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	if hb.HealthHandler != nil {
		r.GET("/health", hb.HealthHandler)
	}
}

// RegisterUserRoutes registers user and admin-role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := hb.Gate.JWTAuthMiddleware()
	admin := hb.Gate.AdminMiddleware()

	// Sign-in upsert is public; the token it returns unlocks everything else.
	r.PUT("/user/:email", hb.UpsertUserHandler)

	r.GET("/user", auth, hb.GetAllUsersHandler)
	r.GET("/admin/:email", auth, hb.IsAdminHandler)
	r.PUT("/user/admin/:email", auth, admin, hb.GrantAdminHandler)
}

// RegisterDoctorRoutes registers the admin-only doctor directory.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctor")
	{
		// Token first, role second: an invalid token never reaches the role lookup.
		doctors.Use(hb.Gate.JWTAuthMiddleware(), hb.Gate.AdminMiddleware())
		doctors.GET("", hb.ListDoctorsHandler)
		doctors.POST("", hb.AddDoctorHandler)
		doctors.DELETE("/:email", hb.DeleteDoctorHandler)
	}
}

// RegisterBookingRoutes registers bookings, the catalogue and availability.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/bookingInfo", hb.Gate.JWTAuthMiddleware(), hb.GetPatientBookingsHandler)
	r.POST("/bookingInfo", hb.CreateBookingHandler)
	r.GET("/services", hb.GetServicesHandler)
	r.GET("/available", hb.GetAvailableHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
