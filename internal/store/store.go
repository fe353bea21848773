// Package store defines the persistence interfaces the handlers depend on.
// The mongodb subpackage backs them in production; the memory subpackage
// backs them in tests.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/slots"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a unique index
	// (email or license).
	ErrDuplicate = errors.New("duplicate key")
	// ErrSlotTaken is returned when a booking loses the race for a slot.
	ErrSlotTaken = errors.New("slot already booked")
)

type UserStore interface {
	// Create inserts a user. ErrDuplicate on an existing email.
	Create(ctx context.Context, user *models.User) error
	// CreateWithCounsellor inserts a user and its counsellor record
	// atomically: if the second insert fails, neither survives.
	CreateWithCounsellor(ctx context.Context, user *models.User, counsellor *models.Counsellor) error
	// FindByEmail returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

type CounsellorStore interface {
	// FindByID looks up a counsellor record by its shared user id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Counsellor, error)
}

type AppointmentStore interface {
	// Create inserts an appointment inside a transaction. ErrSlotTaken when
	// the active-slot unique index rejects it.
	Create(ctx context.Context, appt *models.Appointment) error
	// HasActiveConflict reports whether a pending or confirmed appointment
	// already holds (counsellorID, date, slot).
	HasActiveConflict(ctx context.Context, counsellorID primitive.ObjectID, date time.Time, slot slots.Slot) (bool, error)
	// BookedSlots returns the slots held by pending or confirmed
	// appointments on the given day, across all counsellors.
	BookedSlots(ctx context.Context, date time.Time) ([]slots.Slot, error)
	FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error)
	FindByCounsellor(ctx context.Context, counsellorID primitive.ObjectID) ([]models.Appointment, error)
	// UpdateStatus sets the status and returns the updated appointment.
	// ErrNotFound when the id does not exist.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AppointmentStatus) (*models.Appointment, error)
}

type MoodStore interface {
	Create(ctx context.Context, entry *models.MoodEntry) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntry, error)
}
