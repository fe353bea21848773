package services

import (
	"log"

	"github.com/mindease/mindease-api/internal/models"
)

// Notifier receives booking events. The abstraction lets a real SMS or
// email provider slot in without touching the handlers.
type Notifier interface {
	AppointmentBooked(patient *models.User, appt *models.Appointment)
	AppointmentStatusChanged(appt *models.Appointment)
}

// ConsoleNotifier logs booking events. It stands in until a delivery
// provider is wired up.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (n *ConsoleNotifier) AppointmentBooked(patient *models.User, appt *models.Appointment) {
	// Fire-and-forget so the booking response is never held up.
	go func() {
		log.Printf("Appointment booked: %s with counsellor %s on %s at %s",
			patient.Name, appt.CounsellorID.Hex(), appt.Date.Format("2006-01-02"), appt.Time.Label())
	}()
}

func (n *ConsoleNotifier) AppointmentStatusChanged(appt *models.Appointment) {
	go func() {
		log.Printf("Appointment %s is now %s", appt.ID.Hex(), appt.Status)
	}()
}
