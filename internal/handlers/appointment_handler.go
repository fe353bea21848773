package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/slots"
	"github.com/mindease/mindease-api/internal/store"
)

// SlotAvailability is one entry of the slots response.
type SlotAvailability struct {
	Time      slots.Slot `json:"time"`
	Available bool       `json:"available"`
}

// GetSlots returns the nine daily slots with their availability for the
// requested day. A slot is taken when any counsellor has an active booking
// at that time.
func (h *Handler) GetSlots(c *gin.Context) {
	date, ok := parseDate(c, c.Query("date"))
	if !ok {
		return
	}

	booked, err := h.Appointments.BookedSlots(c.Request.Context(), date)
	if err != nil {
		serverError(c, "Slot lookup failed", err)
		return
	}

	taken := make(map[slots.Slot]bool, len(booked))
	for _, s := range booked {
		taken[s] = true
	}

	availability := make([]SlotAvailability, 0, len(slots.All()))
	for _, s := range slots.All() {
		availability = append(availability, SlotAvailability{Time: s, Available: !taken[s]})
	}
	c.JSON(http.StatusOK, availability)
}

// StudentAppointment is an appointment joined with the counsellor's public
// details for the student dashboard.
type StudentAppointment struct {
	models.Appointment
	Counsellor struct {
		ID             primitive.ObjectID `json:"id"`
		Name           string             `json:"name"`
		Specialization string             `json:"specialization"`
	} `json:"counsellor"`
}

// GetStudentAppointments lists a patient's appointments with counsellor
// name and specialization resolved explicitly.
func (h *Handler) GetStudentAppointments(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid patient ID"})
		return
	}

	appointments, err := h.Appointments.FindByPatient(c.Request.Context(), patientID)
	if err != nil {
		serverError(c, "Student appointment lookup failed", err)
		return
	}

	result := make([]StudentAppointment, 0, len(appointments))
	for _, appt := range appointments {
		entry := StudentAppointment{Appointment: appt}
		entry.Counsellor.ID = appt.CounsellorID
		if counsellor, err := h.Counsellors.FindByID(c.Request.Context(), appt.CounsellorID); err == nil {
			entry.Counsellor.Specialization = counsellor.Specialization
		}
		if user, err := h.Users.FindByID(c.Request.Context(), appt.CounsellorID); err == nil {
			entry.Counsellor.Name = user.Name
		}
		result = append(result, entry)
	}
	c.JSON(http.StatusOK, result)
}

type BookRequest struct {
	PatientID    string `json:"patientId"`
	CounsellorID string `json:"counsellorId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Mode         string `json:"mode"`
	Language     string `json:"language"`
	Reason       string `json:"reason"`
	College      string `json:"college"`
}

// BookAppointment creates a pending appointment for a slot. The conflict
// pre-check gives the caller a clean 409; the unique index behind the
// store decides concurrent races the pre-check cannot see.
func (h *Handler) BookAppointment(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.PatientID == "" || req.CounsellorID == "" || req.Date == "" || req.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "patientId, counsellorId, date and time are required"})
		return
	}

	patientID, err := primitive.ObjectIDFromHex(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid patient ID"})
		return
	}
	counsellorID, err := primitive.ObjectIDFromHex(req.CounsellorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid counsellor ID"})
		return
	}
	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}
	slot, err := slots.Parse(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown time slot"})
		return
	}

	mode := models.SessionMode(req.Mode)
	if req.Mode == "" {
		mode = models.ModeVideo
	}
	if !models.ValidMode(mode) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session mode"})
		return
	}
	language := req.Language
	if language == "" {
		language = "en"
	}

	ctx := c.Request.Context()
	patient, err := h.Users.FindByID(ctx, patientID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	if err != nil {
		serverError(c, "Patient lookup failed", err)
		return
	}
	if _, err := h.Counsellors.FindByID(ctx, counsellorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Counsellor not found"})
			return
		}
		serverError(c, "Counsellor lookup failed", err)
		return
	}

	conflict, err := h.Appointments.HasActiveConflict(ctx, counsellorID, date, slot)
	if err != nil {
		serverError(c, "Conflict check failed", err)
		return
	}
	if conflict {
		c.JSON(http.StatusConflict, gin.H{"message": "This slot is already booked"})
		return
	}

	appt := models.Appointment{
		PatientID:    patientID,
		CounsellorID: counsellorID,
		College:      req.College,
		Status:       models.StatusPending,
		Date:         date,
		Time:         slot,
		Mode:         mode,
		Language:     language,
		Reason:       req.Reason,
	}
	err = h.Appointments.Create(ctx, &appt)
	if errors.Is(err, store.ErrSlotTaken) {
		c.JSON(http.StatusConflict, gin.H{"message": "This slot is already booked"})
		return
	}
	if err != nil {
		serverError(c, "Booking insert failed", err)
		return
	}

	h.Notifier.AppointmentBooked(patient, &appt)

	c.JSON(http.StatusCreated, gin.H{"message": "Appointment booked successfully!", "appointment": appt})
}

// parseDate reads a YYYY-MM-DD day and pins it to UTC midnight, writing the
// 400 response itself when the input is unusable.
func parseDate(c *gin.Context, value string) (time.Time, bool) {
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date query parameter is required"})
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
