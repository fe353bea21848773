package handlers

import (
	"github.com/mindease/mindease-api/internal/services"
	"github.com/mindease/mindease-api/internal/store"
)

// Handler carries everything the route methods need: the stores, the
// booking notifier, and the Gemini key for the AI-support proxy.
type Handler struct {
	Users        store.UserStore
	Counsellors  store.CounsellorStore
	Appointments store.AppointmentStore
	Moods        store.MoodStore
	Notifier     services.Notifier
	GeminiAPIKey string
}

func NewHandler(users store.UserStore, counsellors store.CounsellorStore, appointments store.AppointmentStore, moods store.MoodStore, notifier services.Notifier, geminiAPIKey string) *Handler {
	return &Handler{
		Users:        users,
		Counsellors:  counsellors,
		Appointments: appointments,
		Moods:        moods,
		Notifier:     notifier,
		GeminiAPIKey: geminiAPIKey,
	}
}
