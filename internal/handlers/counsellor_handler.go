package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/slots"
	"github.com/mindease/mindease-api/internal/store"
)

// DirectoryEntry is the UI-shaped counsellor listing. Rating, availability,
// location, session types and next slot are placeholders until real data
// backs them.
type DirectoryEntry struct {
	ID             primitive.ObjectID `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Languages      []string           `json:"languages"`
	Availability   string             `json:"availability"`
	Location       string             `json:"location"`
	Rating         float64            `json:"rating"`
	Specialization string             `json:"specialization"`
	Experience     string             `json:"experience"`
	SessionTypes   []string           `json:"sessionTypes"`
	NextSlot       string             `json:"nextSlot"`
}

// ListCounsellors joins counsellor users with their credential records.
func (h *Handler) ListCounsellors(c *gin.Context) {
	users, err := h.Users.FindByRole(c.Request.Context(), models.RoleCounsellor)
	if err != nil {
		serverError(c, "Counsellor listing failed", err)
		return
	}

	entries := make([]DirectoryEntry, 0, len(users))
	for _, user := range users {
		entry := DirectoryEntry{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			Languages:      splitLanguages(user.Language),
			Availability:   "available",
			Location:       "Online",
			Rating:         4.8,
			Specialization: "General Counseling",
			Experience:     "0 years",
			SessionTypes:   []string{"video", "chat"},
			NextSlot:       slots.Slot2PM.Label() + " Today",
		}
		if counsellor, err := h.Counsellors.FindByID(c.Request.Context(), user.ID); err == nil {
			entry.Specialization = counsellor.Specialization
			entry.Experience = experienceLabel(counsellor.Experience)
		}
		entries = append(entries, entry)
	}
	c.JSON(http.StatusOK, entries)
}

// CounsellorAppointment is the formatted entry for the counsellor dashboard.
type CounsellorAppointment struct {
	ID              primitive.ObjectID       `json:"id"`
	Student         AppointmentStudent       `json:"student"`
	Date            string                   `json:"date"`
	Time            slots.Slot               `json:"time"`
	Type            models.SessionMode       `json:"type"`
	Status          models.AppointmentStatus `json:"status"`
	Reason          string                   `json:"reason"`
	Notes           string                   `json:"notes"`
	SessionDuration int                      `json:"sessionDuration"`
}

type AppointmentStudent struct {
	ID      primitive.ObjectID `json:"id"`
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	College string             `json:"college"`
}

// GetCounsellorAppointments lists a counsellor's appointments with patient
// contact details resolved.
func (h *Handler) GetCounsellorAppointments(c *gin.Context) {
	counsellorID, err := primitive.ObjectIDFromHex(c.Param("counsellorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid counsellor ID"})
		return
	}

	appointments, err := h.Appointments.FindByCounsellor(c.Request.Context(), counsellorID)
	if err != nil {
		serverError(c, "Counsellor appointment lookup failed", err)
		return
	}

	result := make([]CounsellorAppointment, 0, len(appointments))
	for _, appt := range appointments {
		entry := CounsellorAppointment{
			ID:              appt.ID,
			Date:            appt.Date.Format("2006-01-02"),
			Time:            appt.Time,
			Type:            appt.Mode,
			Status:          appt.Status,
			Reason:          appt.Reason,
			Notes:           "No notes yet",
			SessionDuration: 60,
		}
		entry.Student.ID = appt.PatientID
		if patient, err := h.Users.FindByID(c.Request.Context(), appt.PatientID); err == nil {
			entry.Student.Name = patient.Name
			entry.Student.Email = patient.Email
			entry.Student.College = patient.College
		}
		result = append(result, entry)
	}
	c.JSON(http.StatusOK, result)
}

// UpdateAppointmentStatus sets an appointment's status. Any of the four
// enum values may be set from any other; unknown values are rejected.
func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	appointmentID, err := primitive.ObjectIDFromHex(c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid appointment ID"})
		return
	}

	var req struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
		return
	}

	appt, err := h.Appointments.UpdateStatus(c.Request.Context(), appointmentID, req.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		return
	}
	if err != nil {
		serverError(c, "Status update failed", err)
		return
	}

	h.Notifier.AppointmentStatusChanged(appt)

	c.JSON(http.StatusOK, appt)
}

func splitLanguages(language string) []string {
	if language == "" {
		return []string{}
	}
	parts := strings.Split(language, ",")
	languages := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			languages = append(languages, trimmed)
		}
	}
	return languages
}

func experienceLabel(years int) string {
	return strconv.Itoa(years) + " years"
}
