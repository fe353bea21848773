package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/middleware"
)

// RegisterRoutes mounts the full API surface on r. The core booking routes
// are tokenless; moods and chat sit behind the JWT middleware.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "mindease-api"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/signin", h.Signin)
	}

	appointments := r.Group("/api/appointments")
	{
		appointments.GET("/slots", h.GetSlots)
		appointments.GET("/student/:patientId", h.GetStudentAppointments)
		appointments.POST("/book", h.BookAppointment)
	}

	counsellors := r.Group("/api/counsellors")
	{
		counsellors.GET("", h.ListCounsellors)
		counsellors.GET("/appointments/:counsellorId", h.GetCounsellorAppointments)
		counsellors.PUT("/appointments/:appointmentId/status", h.UpdateAppointmentStatus)
	}

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/moods", h.CreateMood)
		protected.GET("/moods", h.ListMoods)
		protected.POST("/chat", h.Chat)
	}
}
