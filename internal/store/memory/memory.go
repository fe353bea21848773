// Package memory implements the store interfaces in process memory. It
// exists for tests: handlers run against it exactly as they run against
// the mongodb stores, unique-index semantics included.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/slots"
	"github.com/mindease/mindease-api/internal/store"
)

// DB is the shared backing state for the per-collection stores.
type DB struct {
	mu           sync.RWMutex
	users        map[primitive.ObjectID]models.User
	counsellors  map[primitive.ObjectID]models.Counsellor
	appointments map[primitive.ObjectID]models.Appointment
	moods        map[primitive.ObjectID]models.MoodEntry
}

func NewDB() *DB {
	return &DB{
		users:        make(map[primitive.ObjectID]models.User),
		counsellors:  make(map[primitive.ObjectID]models.Counsellor),
		appointments: make(map[primitive.ObjectID]models.Appointment),
		moods:        make(map[primitive.ObjectID]models.MoodEntry),
	}
}

type UserStore struct{ db *DB }

func NewUserStore(db *DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.db.insertUser(user)
}

func (s *UserStore) CreateWithCounsellor(_ context.Context, user *models.User, counsellor *models.Counsellor) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, c := range s.db.counsellors {
		if c.License == counsellor.License {
			return store.ErrDuplicate
		}
	}
	if err := s.db.insertUser(user); err != nil {
		return err
	}
	counsellor.ID = user.ID
	counsellor.CreatedAt = user.CreatedAt
	counsellor.UpdatedAt = user.UpdatedAt
	s.db.counsellors[counsellor.ID] = *counsellor
	return nil
}

// insertUser enforces the email unique index. Callers hold the lock.
func (db *DB) insertUser(user *models.User) error {
	for _, u := range db.users {
		if u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	db.users[user.ID] = *user
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for _, u := range s.db.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if u, ok := s.db.users[id]; ok {
		return &u, nil
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) FindByRole(_ context.Context, role models.Role) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var users []models.User
	for _, u := range s.db.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

type CounsellorStore struct{ db *DB }

func NewCounsellorStore(db *DB) *CounsellorStore { return &CounsellorStore{db: db} }

func (s *CounsellorStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Counsellor, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	if c, ok := s.db.counsellors[id]; ok {
		return &c, nil
	}
	return nil, store.ErrNotFound
}

type AppointmentStore struct{ db *DB }

func NewAppointmentStore(db *DB) *AppointmentStore { return &AppointmentStore{db: db} }

func (s *AppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	// Mirror the partial unique index on (counsellorId, date, time).
	for _, a := range s.db.appointments {
		if a.CounsellorID == appt.CounsellorID && a.Date.Equal(appt.Date) && a.Time == appt.Time && active(a.Status) {
			return store.ErrSlotTaken
		}
	}
	if appt.ID.IsZero() {
		appt.ID = primitive.NewObjectID()
	}
	appt.CreatedAt = time.Now().UTC()
	s.db.appointments[appt.ID] = *appt
	return nil
}

func (s *AppointmentStore) HasActiveConflict(_ context.Context, counsellorID primitive.ObjectID, date time.Time, slot slots.Slot) (bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	for _, a := range s.db.appointments {
		if a.CounsellorID == counsellorID && a.Date.Equal(date) && a.Time == slot && active(a.Status) {
			return true, nil
		}
	}
	return false, nil
}

func (s *AppointmentStore) BookedSlots(_ context.Context, date time.Time) ([]slots.Slot, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	booked := make([]slots.Slot, 0)
	for _, a := range s.db.appointments {
		if a.Date.Equal(date) && active(a.Status) {
			booked = append(booked, a.Time)
		}
	}
	return booked, nil
}

func (s *AppointmentStore) FindByPatient(_ context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	return s.filter(func(a models.Appointment) bool { return a.PatientID == patientID })
}

func (s *AppointmentStore) FindByCounsellor(_ context.Context, counsellorID primitive.ObjectID) ([]models.Appointment, error) {
	return s.filter(func(a models.Appointment) bool { return a.CounsellorID == counsellorID })
}

func (s *AppointmentStore) filter(keep func(models.Appointment) bool) ([]models.Appointment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var appointments []models.Appointment
	for _, a := range s.db.appointments {
		if keep(a) {
			appointments = append(appointments, a)
		}
	}
	// Day first, then slot order within the day.
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].Date.Equal(appointments[j].Date) {
			return appointments[i].Date.Before(appointments[j].Date)
		}
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (s *AppointmentStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.AppointmentStatus) (*models.Appointment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	a, ok := s.db.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	a.Status = status
	s.db.appointments[id] = a
	return &a, nil
}

type MoodStore struct{ db *DB }

func NewMoodStore(db *DB) *MoodStore { return &MoodStore{db: db} }

func (s *MoodStore) Create(_ context.Context, entry *models.MoodEntry) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	entry.CreatedAt = time.Now().UTC()
	s.db.moods[entry.ID] = *entry
	return nil
}

func (s *MoodStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.MoodEntry, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	var entries []models.MoodEntry
	for _, e := range s.db.moods {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	// Newest first, matching the mongodb store's createdAt sort.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func active(status models.AppointmentStatus) bool {
	return status == models.StatusPending || status == models.StatusConfirmed
}
