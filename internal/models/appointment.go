package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/slots"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that hold a slot. Cancelled and completed
// appointments free it up again.
func ActiveStatuses() []AppointmentStatus {
	return []AppointmentStatus{StatusPending, StatusConfirmed}
}

type SessionMode string

const (
	ModeVideo    SessionMode = "video"
	ModeChat     SessionMode = "chat"
	ModeInPerson SessionMode = "in-person"
)

// ValidMode reports whether m is a known session mode.
func ValidMode(m SessionMode) bool {
	return m == ModeVideo || m == ModeChat || m == ModeInPerson
}

// Appointment links a patient and a counsellor to one slot on one calendar
// day. Date is always UTC midnight of that day.
type Appointment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID    primitive.ObjectID `bson:"patientId" json:"patientId"`
	CounsellorID primitive.ObjectID `bson:"counsellorId" json:"counsellorId"`
	College      string             `bson:"college,omitempty" json:"college,omitempty"`
	Status       AppointmentStatus  `bson:"status" json:"status"`
	Date         time.Time          `bson:"date" json:"date"`
	Time         slots.Slot         `bson:"time" json:"time"`
	Mode         SessionMode        `bson:"mode" json:"mode"`
	Language     string             `bson:"language" json:"language"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
